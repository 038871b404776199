// Package grading folds runner results into point totals.
package grading

import "github.com/signalnine/autograde-notify/internal/result"

// Report is the earned versus possible points across all graded runners.
type Report struct {
	EarnedPoints float64
	MaxPoints    float64
}

// Complete reports whether every possible point was earned.
func (r Report) Complete() bool {
	return r.EarnedPoints >= r.MaxPoints
}

// Aggregate sums max_score over graded runners and test scores over the
// tests of those same runners. Ungraded runners are skipped entirely.
// The bool is false when no runner contributed a maximum, meaning there is
// nothing to report.
func Aggregate(results []result.RunnerResult) (Report, bool) {
	var r Report
	for _, rr := range results {
		if !rr.Results.Graded() {
			continue
		}
		r.MaxPoints += *rr.Results.MaxScore
		for _, t := range rr.Results.Tests {
			r.EarnedPoints += t.Score
		}
	}
	if r.MaxPoints == 0 {
		return r, false
	}
	return r, true
}

type RunnerTotal struct {
	Runner       string  `json:"runner"`
	Graded       bool    `json:"graded"`
	EarnedPoints float64 `json:"earned_points"`
	MaxPoints    float64 `json:"max_points"`
}

// Breakdown returns per-runner subtotals in input order. Ungraded runners
// are listed with zero totals.
func Breakdown(results []result.RunnerResult) []RunnerTotal {
	totals := make([]RunnerTotal, 0, len(results))
	for _, rr := range results {
		t := RunnerTotal{Runner: rr.Runner, Graded: rr.Results.Graded()}
		if t.Graded {
			t.EarnedPoints = rr.Results.Score()
			t.MaxPoints = rr.Results.Max()
		}
		totals = append(totals, t)
	}
	return totals
}
