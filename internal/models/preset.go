// internal/models/preset.go
package models

// Generation modes accepted in a preset.
const (
	ModeAIDetection  = "ai-detection"
	ModeQuickstart   = "quickstart"
	ModeInstant      = "instant"
	ModeOrchestrator = "orchestrator"
	ModeCustom       = "custom"
	ModeFullControl  = "full-control"
	ModeInspired     = "inspired"
	ModeReference    = "reference"
	ModeRebuild      = "rebuild"
)

// GenerationPreset is a named, pre-configured generation request.
type GenerationPreset struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	Mode     string     `json:"mode" yaml:"mode"`
	Tier     string     `json:"tier,omitempty" yaml:"tier,omitempty"`
	Industry string     `json:"industry,omitempty" yaml:"industry,omitempty"`
	Data     PresetData `json:"data" yaml:"data"`
}

type PresetData struct {
	BusinessName   string       `json:"businessName" yaml:"businessName"`
	Industry       string       `json:"industry,omitempty" yaml:"industry,omitempty"`
	Pages          []string     `json:"pages,omitempty" yaml:"pages,omitempty"`
	AdminTier      string       `json:"adminTier,omitempty" yaml:"adminTier,omitempty"`
	AdminModules   []string     `json:"adminModules,omitempty" yaml:"adminModules,omitempty"`
	VisualStyle    string       `json:"visualStyle,omitempty" yaml:"visualStyle,omitempty"`
	AIInstructions string       `json:"aiInstructions,omitempty" yaml:"aiInstructions,omitempty"`
	Tagline        string       `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Location       string       `json:"location,omitempty" yaml:"location,omitempty"`
	Description    string       `json:"description,omitempty" yaml:"description,omitempty"`
	Theme          *ColorTokens `json:"theme,omitempty" yaml:"theme,omitempty"`
	InspirationURL string       `json:"inspirationUrl,omitempty" yaml:"inspirationUrl,omitempty"`
	ExistingURL    string       `json:"existingUrl,omitempty" yaml:"existingUrl,omitempty"`
	AutoDeploy     bool         `json:"autoDeploy,omitempty" yaml:"autoDeploy,omitempty"`
	Layout         string       `json:"layout,omitempty" yaml:"layout,omitempty"`
	HeroStyle      string       `json:"heroStyle,omitempty" yaml:"heroStyle,omitempty"`
}

// EffectiveIndustry prefers the data-level industry over the preset-level one.
func (p *GenerationPreset) EffectiveIndustry() string {
	if p.Data.Industry != "" {
		return p.Data.Industry
	}
	return p.Industry
}

// Clone returns a copy that shares no slices or pointers with p.
func (p GenerationPreset) Clone() GenerationPreset {
	out := p
	if p.Data.Pages != nil {
		out.Data.Pages = append([]string(nil), p.Data.Pages...)
	}
	if p.Data.AdminModules != nil {
		out.Data.AdminModules = append([]string(nil), p.Data.AdminModules...)
	}
	if p.Data.Theme != nil {
		theme := *p.Data.Theme
		out.Data.Theme = &theme
	}
	return out
}
