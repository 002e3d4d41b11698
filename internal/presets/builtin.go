package presets

import "sitegen-workers/internal/models"

// Builtin returns the built-in catalog: one preset per generation mode, spread across industries.
func Builtin() []models.GenerationPreset {
	return []models.GenerationPreset{
		{
			ID:   "restaurant-l2",
			Name: "Restaurant, tier L2",
			Mode: models.ModeQuickstart,
			Tier: "L2",
			Data: models.PresetData{
				BusinessName: "Bella Cucina",
				Industry:     "restaurant",
				Pages:        []string{"home", "menu", "about", "contact"},
				Tagline:      "Handmade pasta since 1987",
				Location:     "Portland, OR",
				AdminTier:    "basic",
				AdminModules: []string{"menu-editor", "reservations"},
			},
		},
		{
			ID:   "salon-quickstart",
			Name: "Salon quickstart",
			Mode: models.ModeQuickstart,
			Data: models.PresetData{
				BusinessName: "Glow Studio",
				Industry:     "salon",
				Tagline:      "Color, cuts and care",
				Theme:        &models.ColorTokens{Primary: "#b76e79", Accent: "#f4c2c2"},
			},
		},
		{
			ID:       "fitness-instant",
			Name:     "Fitness instant",
			Mode:     models.ModeInstant,
			Industry: "fitness",
			Data: models.PresetData{
				BusinessName: "Iron Peak Gym",
				Location:     "Denver, CO",
				Tagline:      "Train with purpose",
			},
		},
		{
			ID:   "law-custom",
			Name: "Law firm, full control",
			Mode: models.ModeCustom,
			Data: models.PresetData{
				BusinessName:   "Hart & Cole LLP",
				Industry:       "professional",
				Location:       "Boston, MA",
				Description:    "A two-partner firm focused on small business and estate law.",
				VisualStyle:    "Conservative navy and cream, serif headings",
				AIInstructions: "Keep copy formal and avoid stock photography.",
			},
		},
		{
			ID:   "plumber-inspired",
			Name: "Plumber, inspired by reference",
			Mode: models.ModeInspired,
			Data: models.PresetData{
				BusinessName:   "Joe's Plumbing",
				Industry:       "homeservices",
				Location:       "Austin, TX",
				InspirationURL: "https://example.com/plumbing-inspiration",
			},
		},
		{
			ID:   "cafe-rebuild",
			Name: "Cafe rebuild",
			Mode: models.ModeRebuild,
			Data: models.PresetData{
				BusinessName: "Morning Ritual Cafe",
				Industry:     "restaurant",
				ExistingURL:  "https://example.com/old-cafe",
				Tagline:      "Coffee worth waking up for",
			},
		},
		{
			ID:   "bakery-detect",
			Name: "Industry detection",
			Mode: models.ModeAIDetection,
			Data: models.PresetData{
				BusinessName: "Sweet Crumbs Bakery",
				Location:     "Madison, WI",
			},
		},
		{
			ID:   "studio-l1",
			Name: "Yoga studio, tier L1",
			Mode: models.ModeOrchestrator,
			Tier: "L1",
			Data: models.PresetData{
				BusinessName: "Still Water Yoga",
				Industry:     "fitness",
				Pages:        []string{"home", "contact"},
				Layout:       "minimal",
			},
		},
	}
}
