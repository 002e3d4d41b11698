// internal/models/backend.go
package models

// AssemblyDescription is the structured description sent on the deterministic path.
type AssemblyDescription struct {
	Pages          []string `json:"pages"`
	VisualStyle    string   `json:"visualStyle,omitempty"`
	AIInstructions string   `json:"aiInstructions,omitempty"`
	Tagline        string   `json:"tagline,omitempty"`
	Location       string   `json:"location,omitempty"`
	Text           string   `json:"text,omitempty"`
	Layout         string   `json:"layout,omitempty"`
	HeroStyle      string   `json:"heroStyle,omitempty"`
}

type AssemblyRequest struct {
	Name         string              `json:"name"`
	BusinessName string              `json:"businessName,omitempty"`
	Industry     string              `json:"industry"`
	Tier         string              `json:"tier,omitempty"`
	Description  AssemblyDescription `json:"description"`
	Theme        *ColorTokens        `json:"theme,omitempty"`
	AdminTier    string              `json:"adminTier,omitempty"`
	AdminModules []string            `json:"adminModules"`
	TestMode     bool                `json:"testMode"`
	RunID        string              `json:"runId,omitempty"`
	PresetID     string              `json:"presetId,omitempty"`
}

type OrchestrationRequest struct {
	Input      string `json:"input"`
	AutoDeploy bool   `json:"autoDeploy"`
	RunID      string `json:"runId,omitempty"`
	PresetID   string `json:"presetId,omitempty"`
}

type RebuildRequest struct {
	ExistingURL  string       `json:"existingUrl"`
	BusinessName string       `json:"businessName"`
	Industry     string       `json:"industry,omitempty"`
	Location     string       `json:"location,omitempty"`
	Tagline      string       `json:"tagline,omitempty"`
	Theme        *ColorTokens `json:"theme,omitempty"`
	RunID        string       `json:"runId,omitempty"`
	PresetID     string       `json:"presetId,omitempty"`
}

// BackendResult is the response shape shared by every generation backend.
type BackendResult struct {
	ProjectPath string     `json:"projectPath"`
	Pages       []string   `json:"pages"`
	Modules     []string   `json:"modules"`
	Cost        float64    `json:"cost"`
	Tokens      TokenUsage `json:"tokens"`
}

type DeployResult struct {
	URL       string `json:"url,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
	Status    string `json:"status,omitempty"`
}

// CleanupOptions controls how much of a generated project is removed.
type CleanupOptions struct {
	LocalOnly bool `json:"localOnly"`
}
