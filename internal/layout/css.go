package layout

import (
	"fmt"
	"strings"

	"sitegen-workers/internal/models"
)

// CSS custom property names.
const (
	VarRadius         = "--radius"
	VarShadow         = "--shadow"
	VarSectionSpacing = "--section-spacing"
	VarCardRadius     = "--card-radius"
)

const unmapped = "none"

var (
	radiusValues = map[string]string{
		"none":   "0",
		"small":  "4px",
		"medium": "8px",
		"large":  "16px",
		"pill":   "9999px",
	}
	shadowValues = map[string]string{
		"none":   "none",
		"soft":   "0 2px 8px rgba(0, 0, 0, 0.08)",
		"medium": "0 4px 16px rgba(0, 0, 0, 0.12)",
		"strong": "0 8px 30px rgba(0, 0, 0, 0.2)",
	}
	spacingValues = map[string]string{
		"compact":     "3rem",
		"comfortable": "5rem",
		"spacious":    "7rem",
	}
	cardRadiusValues = map[string]string{
		"flat":     "0",
		"outlined": "8px",
		"elevated": "12px",
		"glass":    "20px",
	}
)

// CSSVars are the four custom properties derived from a layout style.
type CSSVars struct {
	Radius         string `json:"--radius"`
	Shadow         string `json:"--shadow"`
	SectionSpacing string `json:"--section-spacing"`
	CardRadius     string `json:"--card-radius"`
}

// CSS derives the custom properties for l. Unmapped enum values become "none".
func CSS(l models.LayoutConfig) CSSVars {
	return CSSVars{
		Radius:         lookup(radiusValues, l.Style.BorderRadius),
		Shadow:         lookup(shadowValues, l.Style.Shadows),
		SectionSpacing: lookup(spacingValues, l.Style.Spacing),
		CardRadius:     lookup(cardRadiusValues, l.Style.CardStyle),
	}
}

// CSSForID resolves id through Get first, so unknown ids get the default layout's vars.
func CSSForID(id string) CSSVars {
	return CSS(Get(id))
}

func lookup(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return unmapped
}

// Map returns the vars keyed by property name.
func (v CSSVars) Map() map[string]string {
	return map[string]string{
		VarRadius:         v.Radius,
		VarShadow:         v.Shadow,
		VarSectionSpacing: v.SectionSpacing,
		VarCardRadius:     v.CardRadius,
	}
}

// String renders a :root block with the properties in a fixed order.
func (v CSSVars) String() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  %s: %s;\n", VarRadius, v.Radius)
	fmt.Fprintf(&b, "  %s: %s;\n", VarShadow, v.Shadow)
	fmt.Fprintf(&b, "  %s: %s;\n", VarSectionSpacing, v.SectionSpacing)
	fmt.Fprintf(&b, "  %s: %s;\n", VarCardRadius, v.CardRadius)
	b.WriteString("}\n")
	return b.String()
}

// ColorCSS renders the color tokens as custom properties.
func ColorCSS(c models.ColorTokens) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --color-primary: %s;\n", c.Primary)
	fmt.Fprintf(&b, "  --color-secondary: %s;\n", c.Secondary)
	fmt.Fprintf(&b, "  --color-accent: %s;\n", c.Accent)
	fmt.Fprintf(&b, "  --color-background: %s;\n", c.Background)
	fmt.Fprintf(&b, "  --color-text: %s;\n", c.Text)
	b.WriteString("}\n")
	return b.String()
}

// Validate checks that every SectionOrder key is a known page type.
func Validate(l models.LayoutConfig) error {
	for pt := range l.SectionOrder {
		if !models.ValidPageType(pt) {
			return fmt.Errorf("layout %s: unknown page type %q in section order", l.ID, pt)
		}
	}
	return nil
}
