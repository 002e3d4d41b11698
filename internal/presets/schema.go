package presets

import (
	"fmt"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/common/validation"
	"sitegen-workers/internal/models"
)

var modes = []string{
	models.ModeAIDetection,
	models.ModeQuickstart,
	models.ModeInstant,
	models.ModeOrchestrator,
	models.ModeCustom,
	models.ModeFullControl,
	models.ModeInspired,
	models.ModeReference,
	models.ModeRebuild,
}

var presetValidator = validation.MustCompile(validation.JSONSchema{
	Type:     "object",
	Required: []string{"id", "mode", "data"},
	Properties: map[string]validation.Property{
		"id": {
			Type:    "string",
			Pattern: `^[a-z0-9][a-z0-9-]*$`,
		},
		"name": {Type: "string"},
		"mode": {
			Type: "string",
			Enum: modes,
		},
		"tier": {
			Type:    "string",
			Pattern: `^[lL][1-4]$`,
		},
		"industry": {Type: "string"},
		"data": {
			Type:     "object",
			Required: []string{"businessName"},
			Properties: map[string]validation.Property{
				"businessName":   {Type: "string", MinLength: validation.Int(1)},
				"pages":          {Type: "array", Items: &validation.Property{Type: "string", MinLength: validation.Int(1)}},
				"adminModules":   {Type: "array", Items: &validation.Property{Type: "string"}},
				"inspirationUrl": {Type: "string", Pattern: `^https?://`},
				"existingUrl":    {Type: "string", Pattern: `^https?://`},
			},
		},
	},
})

// Validate checks p against the preset schema and mode-specific requirements.
func Validate(p models.GenerationPreset) error {
	res, err := presetValidator.Validate(p)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if !res.Valid {
		return errors.NewValidationError(fmt.Sprintf("preset %q: %v", p.ID, res.Err()))
	}
	switch p.Mode {
	case models.ModeInspired, models.ModeReference:
		if p.Data.InspirationURL == "" {
			return errors.NewValidationError(fmt.Sprintf("preset %q: mode %s needs data.inspirationUrl", p.ID, p.Mode))
		}
	case models.ModeRebuild:
		if p.Data.ExistingURL == "" {
			return errors.NewValidationError(fmt.Sprintf("preset %q: mode rebuild needs data.existingUrl", p.ID))
		}
	}
	return nil
}
