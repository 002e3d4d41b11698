// Package sections builds the typed section descriptors that make up a page.
// Builders are pure: same input, same Section, with no clock, randomness or environment.
package sections

import (
	"sitegen-workers/internal/models"
)

// Hero style names.
const (
	HeroCentered = "centered"
	HeroSplit    = "split"
	HeroMinimal  = "minimal"
)

// DefaultHeroStyle is used for unknown style names.
const DefaultHeroStyle = HeroCentered

// Hero prop keys. Every variant sets all of them.
const (
	PropHeadline          = "headline"
	PropSubheadline       = "subheadline"
	PropPrimaryCTALabel   = "primaryCtaLabel"
	PropPrimaryCTAHref    = "primaryCtaHref"
	PropSecondaryCTALabel = "secondaryCtaLabel"
	PropSecondaryCTAHref  = "secondaryCtaHref"
	PropBusinessName      = "businessName"
	PropTagline           = "tagline"
	PropPhone             = "phone"
	PropLocation          = "location"
)

// RequiredHeroFields is the semantic field set shared by all hero variants.
var RequiredHeroFields = []string{
	PropHeadline,
	PropSubheadline,
	PropPrimaryCTALabel,
	PropPrimaryCTAHref,
	PropSecondaryCTALabel,
	PropSecondaryCTAHref,
	PropBusinessName,
	PropTagline,
	PropPhone,
	PropLocation,
}

// HeroData is the content of a hero independent of its visual style.
type HeroData struct {
	Headline     string
	Subheadline  string
	PrimaryCTA   models.CTA
	SecondaryCTA models.CTA
	Image        string
}

// BusinessContext is the business information a section may show.
type BusinessContext struct {
	Name     string
	Industry string
	Tagline  string
	Phone    string
	Email    string
	Address  string
	Location string
}

// ContextFrom extracts the business context of a fixture.
func ContextFrom(b models.Business) BusinessContext {
	return BusinessContext{
		Name:     b.Name,
		Industry: b.Industry,
		Tagline:  b.Tagline,
		Phone:    b.Phone,
		Email:    b.Email,
		Address:  b.Address,
		Location: b.Location,
	}
}

// HeroVariant renders hero content in one visual style.
type HeroVariant func(data HeroData, colors models.ColorTokens, biz BusinessContext) models.Section

var heroVariants = map[string]HeroVariant{
	HeroCentered: CenteredHero,
	HeroSplit:    SplitHero,
	HeroMinimal:  MinimalHero,
}

// GetHeroVariant resolves a style name. Unknown names get the centered variant.
func GetHeroVariant(style string) HeroVariant {
	if v, ok := heroVariants[style]; ok {
		return v
	}
	return heroVariants[DefaultHeroStyle]
}

// HeroStyles lists the registered style names.
func HeroStyles() []string {
	return []string{HeroCentered, HeroSplit, HeroMinimal}
}

// HeroFromContent fills hero data from page content, falling back to business details.
func HeroFromContent(c models.PageContent, biz BusinessContext) HeroData {
	d := HeroData{
		Headline:    c.Headline,
		Subheadline: c.Subheadline,
		Image:       c.Image,
	}
	if d.Headline == "" {
		d.Headline = biz.Name
	}
	if d.Subheadline == "" {
		d.Subheadline = biz.Tagline
	}
	d.PrimaryCTA = models.CTA{Label: "Contact Us", Href: "/contact"}
	if c.PrimaryCTA != nil {
		d.PrimaryCTA = *c.PrimaryCTA
	}
	d.SecondaryCTA = models.CTA{Label: "Learn More", Href: "/about"}
	if c.SecondaryCTA != nil {
		d.SecondaryCTA = *c.SecondaryCTA
	}
	return d
}

func heroProps(d HeroData, biz BusinessContext) map[string]string {
	return map[string]string{
		PropHeadline:          d.Headline,
		PropSubheadline:       d.Subheadline,
		PropPrimaryCTALabel:   d.PrimaryCTA.Label,
		PropPrimaryCTAHref:    d.PrimaryCTA.Href,
		PropSecondaryCTALabel: d.SecondaryCTA.Label,
		PropSecondaryCTAHref:  d.SecondaryCTA.Href,
		PropBusinessName:      biz.Name,
		PropTagline:           biz.Tagline,
		PropPhone:             biz.Phone,
		PropLocation:          biz.Location,
	}
}

// CenteredHero stacks everything on a full-bleed primary background.
func CenteredHero(d HeroData, colors models.ColorTokens, biz BusinessContext) models.Section {
	props := heroProps(d, biz)
	props["align"] = "center"
	if d.Image != "" {
		props["backgroundImage"] = d.Image
	}
	return models.Section{
		Kind:    models.SectionHero,
		Variant: HeroCentered,
		Props:   props,
		Style: map[string]string{
			"background":      colors.Primary,
			"color":           colors.Background,
			"buttonColor":     colors.Accent,
			"buttonTextColor": colors.Text,
		},
	}
}

// SplitHero puts copy on the left and the image on the right.
func SplitHero(d HeroData, colors models.ColorTokens, biz BusinessContext) models.Section {
	props := heroProps(d, biz)
	props["align"] = "left"
	props["imagePosition"] = "right"
	props["image"] = d.Image
	return models.Section{
		Kind:    models.SectionHero,
		Variant: HeroSplit,
		Props:   props,
		Style: map[string]string{
			"background":      colors.Background,
			"color":           colors.Text,
			"headlineColor":   colors.Primary,
			"buttonColor":     colors.Primary,
			"buttonTextColor": colors.Background,
		},
	}
}

// MinimalHero is text only on the page background.
func MinimalHero(d HeroData, colors models.ColorTokens, biz BusinessContext) models.Section {
	props := heroProps(d, biz)
	props["align"] = "left"
	return models.Section{
		Kind:    models.SectionHero,
		Variant: HeroMinimal,
		Props:   props,
		Style: map[string]string{
			"background":  colors.Background,
			"color":       colors.Text,
			"accentColor": colors.Accent,
			"buttonColor": colors.Text,
		},
	}
}
