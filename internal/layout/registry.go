// Package layout holds the named layout configurations and the industry defaults.
// Every function here is pure.
package layout

import (
	"strings"
	"unicode"

	"sitegen-workers/internal/models"
)

// DefaultID is returned for unknown layout ids and unmapped industries.
const DefaultID = "modern"

var (
	homeOrder = []models.SectionKind{
		models.SectionHero, models.SectionFeatures, models.SectionTestimonials, models.SectionCTA,
	}
	contactOrder = []models.SectionKind{models.SectionHero, models.SectionContact, models.SectionHours}
)

// layouts is kept in declaration order; Available returns it as is.
var layouts = []models.LayoutConfig{
	{
		ID:   "modern",
		Name: "Modern",
		Style: models.LayoutStyle{
			BorderRadius: "medium",
			Shadows:      "soft",
			Spacing:      "comfortable",
			HeroStyle:    "centered",
			CardStyle:    "elevated",
		},
		SectionOrder: map[models.PageType][]models.SectionKind{
			models.PageHome:    homeOrder,
			models.PageContact: contactOrder,
		},
		Emphasis: []string{"imagery", "whitespace"},
	},
	{
		ID:   "classic",
		Name: "Classic",
		Style: models.LayoutStyle{
			BorderRadius: "small",
			Shadows:      "none",
			Spacing:      "comfortable",
			HeroStyle:    "split",
			CardStyle:    "outlined",
		},
		SectionOrder: map[models.PageType][]models.SectionKind{
			models.PageHome: {
				models.SectionHero, models.SectionText, models.SectionFeatures, models.SectionTestimonials, models.SectionCTA,
			},
			models.PageAbout:   {models.SectionHero, models.SectionText, models.SectionTeam},
			models.PageContact: contactOrder,
		},
		Emphasis: []string{"trust", "typography"},
	},
	{
		ID:   "bold",
		Name: "Bold",
		Style: models.LayoutStyle{
			BorderRadius: "large",
			Shadows:      "strong",
			Spacing:      "spacious",
			HeroStyle:    "centered",
			CardStyle:    "elevated",
		},
		SectionOrder: map[models.PageType][]models.SectionKind{
			models.PageHome: {
				models.SectionHero, models.SectionCTA, models.SectionFeatures, models.SectionPricing, models.SectionTestimonials,
			},
			models.PagePricing: {models.SectionHero, models.SectionPricing, models.SectionCTA},
		},
		Emphasis: []string{"energy", "calls-to-action"},
	},
	{
		ID:   "minimal",
		Name: "Minimal",
		Style: models.LayoutStyle{
			BorderRadius: "none",
			Shadows:      "none",
			Spacing:      "spacious",
			HeroStyle:    "minimal",
			CardStyle:    "flat",
		},
		SectionOrder: map[models.PageType][]models.SectionKind{
			models.PageHome:    {models.SectionHero, models.SectionText, models.SectionCTA},
			models.PageContact: {models.SectionHero, models.SectionContact},
		},
		Emphasis: []string{"clarity"},
	},
	{
		ID:   "elegant",
		Name: "Elegant",
		Style: models.LayoutStyle{
			BorderRadius: "pill",
			Shadows:      "soft",
			Spacing:      "spacious",
			HeroStyle:    "split",
			CardStyle:    "glass",
		},
		SectionOrder: map[models.PageType][]models.SectionKind{
			models.PageHome: {
				models.SectionHero, models.SectionGallery, models.SectionFeatures, models.SectionTestimonials, models.SectionCTA,
			},
			models.PageServices: {models.SectionHero, models.SectionPricing, models.SectionCTA},
			models.PageBooking:  {models.SectionHero, models.SectionText, models.SectionContact, models.SectionHours},
		},
		Emphasis: []string{"imagery", "luxury"},
	},
	{
		ID:   "warm",
		Name: "Warm",
		Style: models.LayoutStyle{
			BorderRadius: "large",
			Shadows:      "medium",
			Spacing:      "comfortable",
			HeroStyle:    "split",
			CardStyle:    "elevated",
		},
		SectionOrder: map[models.PageType][]models.SectionKind{
			models.PageHome: {
				models.SectionHero, models.SectionMenu, models.SectionTestimonials, models.SectionHours, models.SectionCTA,
			},
			models.PageMenu:    {models.SectionHero, models.SectionMenu, models.SectionCTA},
			models.PageContact: {models.SectionHero, models.SectionHours, models.SectionContact},
		},
		Emphasis: []string{"food", "community"},
	},
}

// industryLayouts keys are normalized industry names.
var industryLayouts = map[string]string{
	"restaurant":   "warm",
	"cafe":         "warm",
	"bakery":       "warm",
	"coffeeshop":   "warm",
	"salon":        "elegant",
	"spa":          "elegant",
	"beauty":       "elegant",
	"barbershop":   "elegant",
	"fitness":      "bold",
	"gym":          "bold",
	"yoga":         "minimal",
	"lawfirm":      "classic",
	"law":          "classic",
	"legal":        "classic",
	"accounting":   "classic",
	"consulting":   "classic",
	"professional": "classic",
	"dental":       "minimal",
	"medical":      "minimal",
	"clinic":       "minimal",
	"plumbing":     "bold",
	"electrical":   "bold",
	"construction": "bold",
	"homeservices": "bold",
	"cleaning":     "modern",
	"photography":  "minimal",
	"retail":       "modern",
}

// Get returns the layout with id, or the default layout. It never fails.
func Get(id string) models.LayoutConfig {
	for _, l := range layouts {
		if l.ID == id {
			return clone(l)
		}
	}
	return Default()
}

// Default returns the documented default layout.
func Default() models.LayoutConfig {
	for _, l := range layouts {
		if l.ID == DefaultID {
			return clone(l)
		}
	}
	panic("layout: default layout missing")
}

// Exists reports whether id names a registered layout.
func Exists(id string) bool {
	for _, l := range layouts {
		if l.ID == id {
			return true
		}
	}
	return false
}

// Available returns every layout in a stable order.
func Available() []models.LayoutConfig {
	out := make([]models.LayoutConfig, len(layouts))
	for i, l := range layouts {
		out[i] = clone(l)
	}
	return out
}

// Recommended maps an industry to its layout, falling back to the default.
func Recommended(industry string) models.LayoutConfig {
	if id, ok := industryLayouts[NormalizeIndustry(industry)]; ok {
		return Get(id)
	}
	return Default()
}

// NormalizeIndustry lowercases s and drops every non-letter.
func NormalizeIndustry(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// clone keeps callers from mutating the registry through shared slices and maps.
func clone(l models.LayoutConfig) models.LayoutConfig {
	out := l
	out.SectionOrder = make(map[models.PageType][]models.SectionKind, len(l.SectionOrder))
	for k, v := range l.SectionOrder {
		out.SectionOrder[k] = append([]models.SectionKind(nil), v...)
	}
	out.Emphasis = append([]string(nil), l.Emphasis...)
	return out
}
