// internal/models/fixture.go
package models

// BusinessFixture is the structured business input consumed by page generators.
// Generators must treat it as read-only.
type BusinessFixture struct {
	Business Business               `json:"business" yaml:"business"`
	Theme    Theme                  `json:"theme" yaml:"theme"`
	Pages    map[string]PageContent `json:"pages,omitempty" yaml:"pages,omitempty"`
}

type Business struct {
	Name     string       `json:"name" yaml:"name"`
	Industry string       `json:"industry" yaml:"industry"`
	Tagline  string       `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Phone    string       `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email    string       `json:"email,omitempty" yaml:"email,omitempty"`
	Address  string       `json:"address,omitempty" yaml:"address,omitempty"`
	Location string       `json:"location,omitempty" yaml:"location,omitempty"`
	Hours    []HoursEntry `json:"hours,omitempty" yaml:"hours,omitempty"`
}

type HoursEntry struct {
	Days  string `json:"days" yaml:"days"`
	Hours string `json:"hours" yaml:"hours"`
}

type Theme struct {
	Colors *ColorTokens `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// ColorTokens are the named colors every section generator consumes.
type ColorTokens struct {
	Primary    string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Accent     string `json:"accent,omitempty" yaml:"accent,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
}

// IsZero reports whether no token is set.
func (c ColorTokens) IsZero() bool {
	return c == ColorTokens{}
}

// FillFrom returns a copy of c where every empty token is taken from defaults.
func (c ColorTokens) FillFrom(defaults ColorTokens) ColorTokens {
	if c.Primary == "" {
		c.Primary = defaults.Primary
	}
	if c.Secondary == "" {
		c.Secondary = defaults.Secondary
	}
	if c.Accent == "" {
		c.Accent = defaults.Accent
	}
	if c.Background == "" {
		c.Background = defaults.Background
	}
	if c.Text == "" {
		c.Text = defaults.Text
	}
	return c
}

// PageContent is the editable copy for one page of the fixture.
type PageContent struct {
	Headline     string        `json:"headline,omitempty" yaml:"headline,omitempty"`
	Subheadline  string        `json:"subheadline,omitempty" yaml:"subheadline,omitempty"`
	Body         string        `json:"body,omitempty" yaml:"body,omitempty"`
	PrimaryCTA   *CTA          `json:"primaryCta,omitempty" yaml:"primaryCta,omitempty"`
	SecondaryCTA *CTA          `json:"secondaryCta,omitempty" yaml:"secondaryCta,omitempty"`
	Items        []ContentItem `json:"items,omitempty" yaml:"items,omitempty"`
	Image        string        `json:"image,omitempty" yaml:"image,omitempty"`
}

type CTA struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

type ContentItem struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Price       string `json:"price,omitempty" yaml:"price,omitempty"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Page returns the content for pageID, or an empty PageContent.
func (f *BusinessFixture) Page(pageID string) PageContent {
	if f == nil || f.Pages == nil {
		return PageContent{}
	}
	return f.Pages[pageID]
}
