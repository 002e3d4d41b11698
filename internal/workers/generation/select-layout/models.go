package selectlayout

import "sitegen-workers/internal/models"

// Input picks a layout by id, or by industry when no id is given.
type Input struct {
	Industry string `json:"industry,omitempty"`
	LayoutID string `json:"layoutId,omitempty"`
}

type Output struct {
	LayoutID     string                                   `json:"layoutId"`
	LayoutName   string                                   `json:"layoutName"`
	HeroStyle    string                                   `json:"heroStyle"`
	CSS          string                                   `json:"css"`
	CSSVars      map[string]string                        `json:"cssVars"`
	SectionOrder map[models.PageType][]models.SectionKind `json:"sectionOrder"`
	Fallback     bool                                     `json:"fallback"`
}
