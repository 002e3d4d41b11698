// internal/models/site.go
package models

// PageType is the fixed set of page kinds a layout can order sections for.
type PageType string

const (
	PageHome     PageType = "home"
	PageAbout    PageType = "about"
	PageServices PageType = "services"
	PageMenu     PageType = "menu"
	PageGallery  PageType = "gallery"
	PageContact  PageType = "contact"
	PagePricing  PageType = "pricing"
	PageTeam     PageType = "team"
	PageBooking  PageType = "booking"
)

// PageTypes lists every valid PageType in a stable order.
var PageTypes = []PageType{
	PageHome, PageAbout, PageServices, PageMenu, PageGallery,
	PageContact, PagePricing, PageTeam, PageBooking,
}

// ValidPageType reports whether t is one of PageTypes.
func ValidPageType(t PageType) bool {
	for _, pt := range PageTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// SectionKind names a reusable section type.
type SectionKind string

const (
	SectionHero         SectionKind = "hero"
	SectionFeatures     SectionKind = "features"
	SectionMenu         SectionKind = "menu"
	SectionGallery      SectionKind = "gallery"
	SectionTestimonials SectionKind = "testimonials"
	SectionPricing      SectionKind = "pricing"
	SectionTeam         SectionKind = "team"
	SectionHours        SectionKind = "hours"
	SectionContact      SectionKind = "contact"
	SectionCTA          SectionKind = "cta"
	SectionText         SectionKind = "text"
)

// Section is one typed block of a page. Renderers decide how it looks.
type Section struct {
	Kind    SectionKind       `json:"kind"`
	Variant string            `json:"variant,omitempty"`
	Props   map[string]string `json:"props,omitempty"`
	Items   []ContentItem     `json:"items,omitempty"`
	Style   map[string]string `json:"style,omitempty"`
}

// Page is the structured representation a page generator produces.
type Page struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Path     string    `json:"path"`
	PageType PageType  `json:"pageType"`
	Sections []Section `json:"sections"`
}

// LayoutStyle holds the style enum values of a layout.
type LayoutStyle struct {
	BorderRadius string `json:"borderRadius" yaml:"borderRadius"`
	Shadows      string `json:"shadows" yaml:"shadows"`
	Spacing      string `json:"spacing" yaml:"spacing"`
	HeroStyle    string `json:"heroStyle" yaml:"heroStyle"`
	CardStyle    string `json:"cardStyle" yaml:"cardStyle"`
}

// LayoutConfig is a named bundle of style tokens and section ordering.
type LayoutConfig struct {
	ID           string                     `json:"id" yaml:"id"`
	Name         string                     `json:"name" yaml:"name"`
	Style        LayoutStyle                `json:"style" yaml:"style"`
	SectionOrder map[PageType][]SectionKind `json:"sectionOrder" yaml:"sectionOrder"`
	Emphasis     []string                   `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
}

type NavLink struct {
	Label    string `json:"label"`
	Path     string `json:"path"`
	PageName string `json:"pageName"`
}

type Route struct {
	Path     string `json:"path"`
	PageName string `json:"pageName"`
}

// AppComposition wires every generated page into navigation and routes.
type AppComposition struct {
	Name       string    `json:"name"`
	Navigation []NavLink `json:"navigation"`
	Routes     []Route   `json:"routes"`
}

// GeneratedSite is produced once per generation and discarded after being written.
type GeneratedSite struct {
	Layout LayoutConfig    `json:"layout"`
	Colors ColorTokens     `json:"colors"`
	Pages  map[string]Page `json:"pages"`
	App    AppComposition  `json:"app"`
	CSS    string          `json:"css"`
}

// PageNames returns page names in route order.
func (s *GeneratedSite) PageNames() []string {
	names := make([]string, 0, len(s.App.Routes))
	for _, r := range s.App.Routes {
		names = append(names, r.PageName)
	}
	return names
}
