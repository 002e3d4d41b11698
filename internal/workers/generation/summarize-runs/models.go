package summarizeruns

import "sitegen-workers/internal/tracker"

type Input struct {
	// Clear drops the history after it has been summarized.
	Clear bool `json:"clear"`
}

type Output struct {
	Summary tracker.Summary `json:"summary"`
	Cleared bool            `json:"cleared"`
}
