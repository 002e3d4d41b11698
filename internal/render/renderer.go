// Package render turns a GeneratedSite into project files.
package render

import (
	"fmt"
	"sort"
	"strings"

	"sitegen-workers/internal/models"
)

// Renderer names.
const (
	HTML = "html"
	JSON = "json"
)

// Files maps a slash-separated relative path to its content.
type Files map[string][]byte

// Paths returns the file paths in sorted order.
func (f Files) Paths() []string {
	out := make([]string, 0, len(f))
	for p := range f {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Renderer converts the structured site into files. Implementations must be deterministic.
type Renderer interface {
	Name() string
	RenderSite(site *models.GeneratedSite) (Files, error)
}

// New returns the renderer registered under name.
func New(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "", HTML:
		return NewHTMLRenderer(), nil
	case JSON:
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}

// orderedPages follows route order, then any page not routed, by name.
func orderedPages(site *models.GeneratedSite) []models.Page {
	seen := make(map[string]bool, len(site.Pages))
	out := make([]models.Page, 0, len(site.Pages))
	for _, r := range site.App.Routes {
		if p, ok := site.Pages[r.PageName]; ok && !seen[r.PageName] {
			out = append(out, p)
			seen[r.PageName] = true
		}
	}
	var rest []string
	for name := range site.Pages {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, site.Pages[name])
	}
	return out
}

// pageFile maps a route path to an output file: "/" -> "index.html", "/menu" -> "menu/index.html".
func pageFile(path, ext string) string {
	p := strings.Trim(path, "/")
	if p == "" {
		return "index." + ext
	}
	return p + "/index." + ext
}
