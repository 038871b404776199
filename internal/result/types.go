package result

import "math"

// RunnerResult pairs a runner name with the results document it published.
type RunnerResult struct {
	Runner  string  `json:"runner"`
	Results Results `json:"results"`
}

// Results is the document a test runner writes after a grading run.
type Results struct {
	Version  int      `json:"version,omitempty"`
	Status   string   `json:"status,omitempty"`
	MaxScore *float64 `json:"max_score,omitempty"`
	Tests    []Test   `json:"tests"`
}

type Test struct {
	Name          string  `json:"name"`
	Status        string  `json:"status,omitempty"`
	Message       string  `json:"message,omitempty"`
	LineNo        int     `json:"line_no,omitempty"`
	ExecutionTime string  `json:"execution_time,omitempty"`
	Score         float64 `json:"score"`
}

// Graded reports whether the runner contributes to the point totals.
// A missing, zero or NaN max_score means it does not.
func (r Results) Graded() bool {
	if r.MaxScore == nil {
		return false
	}
	m := *r.MaxScore
	return m != 0 && !math.IsNaN(m)
}

// Max returns max_score, or 0 for an ungraded runner.
func (r Results) Max() float64 {
	if !r.Graded() {
		return 0
	}
	return *r.MaxScore
}

// Score returns the sum of all test scores, graded or not.
func (r Results) Score() float64 {
	var total float64
	for _, t := range r.Tests {
		total += t.Score
	}
	return total
}

// MaxScore is a convenience for building Results literals.
func MaxScore(v float64) *float64 {
	return &v
}
