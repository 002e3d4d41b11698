// Package templates holds the per-industry page template registries and composes
// a complete GeneratedSite from a business fixture.
package templates

import (
	"strings"
	"unicode"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/layout"
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/sections"
)

// GeneralIndustry is used for industries no registry claims.
const GeneralIndustry = "general"

// PageOptions is what every page generator receives besides the fixture.
type PageOptions struct {
	Colors    models.ColorTokens
	Layout    models.LayoutConfig
	HeroStyle string
	Business  sections.BusinessContext
}

// PageGenerator builds one page. It must not modify the fixture.
type PageGenerator func(f *models.BusinessFixture, opts PageOptions) models.Page

type PageTemplate struct {
	ID          string
	DisplayName string
	PageType    models.PageType
	Path        string
	Generate    PageGenerator
}

// PageName is the identifier a page is registered under in the site composition.
func (t PageTemplate) PageName() string {
	return PageName(t.DisplayName)
}

type IndustryRegistry struct {
	Industry      string
	Aliases       []string
	DefaultColors models.ColorTokens
	Pages         []PageTemplate
}

// Options tune a single GenerateSite call.
type Options struct {
	// Colors overrides the fixture theme when non-nil and non-zero.
	Colors    *models.ColorTokens
	LayoutID  string
	HeroStyle string
	// Pages restricts generation to these template ids. Empty means all.
	Pages []string
}

type Library struct {
	registries []IndustryRegistry
	index      map[string]int
}

// NewLibrary indexes registries by normalized industry name and aliases.
// Later registries do not override names claimed by earlier ones.
func NewLibrary(regs ...IndustryRegistry) *Library {
	l := &Library{index: make(map[string]int)}
	for _, r := range regs {
		l.Register(r)
	}
	return l
}

// Register adds an industry registry.
func (l *Library) Register(r IndustryRegistry) {
	i := len(l.registries)
	l.registries = append(l.registries, r)
	for _, name := range append([]string{r.Industry}, r.Aliases...) {
		key := layout.NormalizeIndustry(name)
		if _, taken := l.index[key]; !taken {
			l.index[key] = i
		}
	}
}

// Lookup returns the registry for industry or the general registry.
func (l *Library) Lookup(industry string) IndustryRegistry {
	if i, ok := l.index[layout.NormalizeIndustry(industry)]; ok {
		return l.registries[i]
	}
	if i, ok := l.index[GeneralIndustry]; ok {
		return l.registries[i]
	}
	return IndustryRegistry{Industry: GeneralIndustry}
}

// Industries lists primary industry names in registration order.
func (l *Library) Industries() []string {
	out := make([]string, len(l.registries))
	for i, r := range l.registries {
		out[i] = r.Industry
	}
	return out
}

// Default is the built-in library.
var Default = NewLibrary(builtinRegistries()...)

// GenerateSite runs the default library.
func GenerateSite(f *models.BusinessFixture, opts Options) (*models.GeneratedSite, error) {
	return Default.GenerateSite(f, opts)
}

// GenerateSite composes every page of the fixture's industry into a site.
func (l *Library) GenerateSite(f *models.BusinessFixture, opts Options) (*models.GeneratedSite, error) {
	if f == nil {
		return nil, errors.NewValidationError("fixture is required")
	}
	if strings.TrimSpace(f.Business.Name) == "" {
		return nil, errors.NewValidationError("business name is required")
	}

	reg := l.Lookup(f.Business.Industry)
	colors := resolveColors(opts.Colors, f.Theme.Colors, reg.DefaultColors)

	lay := layout.Recommended(f.Business.Industry)
	if opts.LayoutID != "" {
		lay = layout.Get(opts.LayoutID)
	}
	heroStyle := opts.HeroStyle
	if heroStyle == "" {
		heroStyle = lay.Style.HeroStyle
	}

	selected := filterPages(reg.Pages, opts.Pages)
	if len(selected) == 0 {
		return nil, errors.NewValidationError("no page templates matched for industry " + reg.Industry)
	}

	pageOpts := PageOptions{
		Colors:    colors,
		Layout:    lay,
		HeroStyle: heroStyle,
		Business:  sections.ContextFrom(f.Business),
	}

	site := &models.GeneratedSite{
		Layout: lay,
		Colors: colors,
		Pages:  make(map[string]models.Page, len(selected)),
		App:    models.AppComposition{Name: f.Business.Name},
		CSS:    layout.CSS(lay).String() + layout.ColorCSS(colors),
	}
	for _, t := range selected {
		page := t.Generate(f, pageOpts)
		page.ID = t.ID
		page.Name = t.PageName()
		page.PageType = t.PageType
		page.Path = t.Path
		page.Sections = sections.Reorder(page.Sections, lay.SectionOrder[t.PageType])

		site.Pages[page.Name] = page
		site.App.Navigation = append(site.App.Navigation, models.NavLink{
			Label:    t.DisplayName,
			Path:     t.Path,
			PageName: page.Name,
		})
		site.App.Routes = append(site.App.Routes, models.Route{Path: t.Path, PageName: page.Name})
	}
	return site, nil
}

// resolveColors picks the first non-empty source, then fills its gaps from defaults.
func resolveColors(override, theme *models.ColorTokens, defaults models.ColorTokens) models.ColorTokens {
	switch {
	case override != nil && !override.IsZero():
		return override.FillFrom(defaults)
	case theme != nil && !theme.IsZero():
		return theme.FillFrom(defaults)
	default:
		return defaults
	}
}

func filterPages(all []PageTemplate, ids []string) []PageTemplate {
	if len(ids) == 0 {
		return all
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[strings.ToLower(strings.TrimSpace(id))] = true
	}
	var out []PageTemplate
	for _, t := range all {
		if want[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

// PageName turns a display name into a component-style name: "Our Team" -> "OurTeamPage".
func PageName(display string) string {
	var b strings.Builder
	upper := true
	for _, r := range display {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	b.WriteString("Page")
	return b.String()
}
