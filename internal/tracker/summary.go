package tracker

import (
	"fmt"

	"sitegen-workers/internal/models"
)

// Summary aggregates a run history. Every field is defined for an empty history.
type Summary struct {
	Total           int    `json:"total"`
	Passed          int    `json:"passed"`
	Failed          int    `json:"failed"`
	PassRate        string `json:"passRate"`
	TotalDuration   string `json:"totalDuration"`
	AverageDuration string `json:"averageDuration"`
	TotalCost       string `json:"totalCost"`
}

// Summarize computes the summary of runs. Cost only counts successful runs.
func Summarize(runs []models.GenerationRun) Summary {
	s := Summary{Total: len(runs)}
	var totalMs int64
	var cost float64
	for i := range runs {
		r := &runs[i]
		if r.Success {
			s.Passed++
			cost += r.Cost()
		} else {
			s.Failed++
		}
		if r.Duration > 0 {
			totalMs += r.Duration
		}
	}

	totalSec := float64(totalMs) / 1000
	s.TotalDuration = fmt.Sprintf("%.1fs", totalSec)
	s.TotalCost = fmt.Sprintf("$%.4f", cost)
	if s.Total == 0 {
		s.PassRate = "0%"
		s.AverageDuration = "0s"
		return s
	}
	s.PassRate = fmt.Sprintf("%.1f%%", float64(s.Passed)/float64(s.Total)*100)
	s.AverageDuration = fmt.Sprintf("%.1fs", totalSec/float64(s.Total))
	return s
}
