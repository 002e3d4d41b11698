package router

import (
	"strings"

	"sitegen-workers/internal/models"
)

// ShortPrompt is "Create a website for {name}[, a {industry} business][ in {location}][. {tagline}]".
func ShortPrompt(p models.GenerationPreset) string {
	d := p.Data
	industry := p.EffectiveIndustry()
	var b strings.Builder
	b.WriteString("Create a website for ")
	b.WriteString(d.BusinessName)
	if industry != "" {
		b.WriteString(", a ")
		b.WriteString(industry)
		b.WriteString(" business")
	}
	if d.Location != "" {
		b.WriteString(" in ")
		b.WriteString(d.Location)
	}
	if d.Tagline != "" {
		b.WriteString(". ")
		b.WriteString(d.Tagline)
	}
	return b.String()
}

// DetailedPrompt appends description, visual style and instructions blocks, in that order,
// one per line. Empty blocks are left out.
func DetailedPrompt(p models.GenerationPreset) string {
	d := p.Data
	blocks := []string{ShortPrompt(p)}
	if d.Description != "" {
		blocks = append(blocks, d.Description)
	}
	if d.VisualStyle != "" {
		blocks = append(blocks, "Visual style: "+d.VisualStyle)
	}
	if d.AIInstructions != "" {
		blocks = append(blocks, "Additional instructions: "+d.AIInstructions)
	}
	return strings.Join(blocks, "\n")
}

// InspiredPrompt names the inspiration site after the short prompt.
func InspiredPrompt(p models.GenerationPreset) string {
	prompt := ShortPrompt(p)
	if p.Data.InspirationURL != "" {
		prompt += "\nUse " + p.Data.InspirationURL + " as design inspiration."
	}
	return prompt
}
