package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
)

// Manifest is the site.json written by the JSON renderer.
type Manifest struct {
	Name       string             `json:"name"`
	Layout     string             `json:"layout"`
	Colors     models.ColorTokens `json:"colors"`
	Navigation []models.NavLink   `json:"navigation"`
	Routes     []models.Route     `json:"routes"`
	Pages      []string           `json:"pages"`
}

// JSONRenderer emits the structured pages as-is for a client-side renderer.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Name() string { return JSON }

func (r *JSONRenderer) RenderSite(site *models.GeneratedSite) (Files, error) {
	if site == nil {
		return nil, errors.NewRenderError(JSON, fmt.Errorf("site is nil"))
	}
	pages := orderedPages(site)
	manifest := Manifest{
		Name:       site.App.Name,
		Layout:     site.Layout.ID,
		Colors:     site.Colors,
		Navigation: site.App.Navigation,
		Routes:     site.App.Routes,
		Pages:      make([]string, 0, len(pages)),
	}

	files := Files{"styles.css": []byte(site.CSS)}
	for _, p := range pages {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, errors.NewRenderError(JSON, fmt.Errorf("page %s: %w", p.Name, err))
		}
		name := "pages/" + strings.TrimSuffix(p.Name, "Page") + ".json"
		files[name] = append(data, '\n')
		manifest.Pages = append(manifest.Pages, name)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, errors.NewRenderError(JSON, err)
	}
	files["site.json"] = append(data, '\n')
	return files, nil
}
