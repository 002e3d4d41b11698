// internal/models/run.go
package models

import "time"

// GenerationRun is the completed record of one tracked generation attempt.
// Result is only set when Success is true.
type GenerationRun struct {
	ID           string        `json:"id"`
	PresetID     string        `json:"presetId"`
	Mode         string        `json:"mode"`
	Tier         string        `json:"tier"`
	Industry     string        `json:"industry"`
	Path         string        `json:"path,omitempty"`
	ArtifactName string        `json:"artifactName"`
	StartTime    time.Time     `json:"startTime"`
	EndTime      time.Time     `json:"endTime"`
	Duration     int64         `json:"duration"` // milliseconds
	Success      bool          `json:"success"`
	Result       *RunResult    `json:"result,omitempty"`
	Error        string        `json:"error,omitempty"`
	ErrorStack   string        `json:"errorStack,omitempty"`
	Deployed     bool          `json:"deployed"`
	DeployResult *DeployResult `json:"deployResult,omitempty"`
	DeployError  string        `json:"deployError,omitempty"`
	CleanedUp    bool          `json:"cleanedUp"`
	CleanupError string        `json:"cleanupError,omitempty"`
}

type RunResult struct {
	ProjectPath string     `json:"projectPath"`
	Pages       []string   `json:"pages"`
	PageCount   int        `json:"pageCount"`
	ModuleCount int        `json:"moduleCount"`
	Cost        float64    `json:"cost"`
	Tokens      TokenUsage `json:"tokens"`
}

type TokenUsage struct {
	Input  int `json:"input"`
	Output int `json:"output"`
}

// DurationValue returns Duration as a time.Duration.
func (r *GenerationRun) DurationValue() time.Duration {
	return time.Duration(r.Duration) * time.Millisecond
}

// Cost returns the run cost, zero for failed runs.
func (r *GenerationRun) Cost() float64 {
	if !r.Success || r.Result == nil {
		return 0
	}
	return r.Result.Cost
}

// Clone returns a deep copy so stored history cannot be mutated through the original.
func (r GenerationRun) Clone() GenerationRun {
	out := r
	if r.Result != nil {
		res := *r.Result
		res.Pages = append([]string(nil), r.Result.Pages...)
		out.Result = &res
	}
	if r.DeployResult != nil {
		dr := *r.DeployResult
		out.DeployResult = &dr
	}
	return out
}
