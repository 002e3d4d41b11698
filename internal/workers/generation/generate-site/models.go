package generatesite

import "sitegen-workers/internal/models"

// Input carries either a catalog preset id or an inline preset. Preset wins when both are set.
type Input struct {
	PresetID  string                   `json:"presetId,omitempty"`
	Preset    *models.GenerationPreset `json:"preset,omitempty"`
	Deploy    bool                     `json:"deploy"`
	Cleanup   bool                     `json:"cleanup"`
	LocalOnly bool                     `json:"localOnly"`
}

type Output struct {
	Success      bool                 `json:"success"`
	RunID        string               `json:"runId"`
	ArtifactName string               `json:"artifactName"`
	Run          models.GenerationRun `json:"run"`
}
