// Package notify turns aggregated grading results into the two notices
// GitHub Classroom reads back from an autograding job.
package notify

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/signalnine/autograde-notify/internal/grading"
	"github.com/signalnine/autograde-notify/internal/result"
)

const (
	TitleComplete = "Autograding complete"
	TitleReport   = "Autograding report"
)

// Emitter records an informational annotation with a title.
type Emitter interface {
	Notice(message, title string) error
}

type payload struct {
	TotalPoints float64 `json:"totalPoints"`
	MaxPoints   float64 `json:"maxPoints"`
}

// SummaryLine renders "Points <earned>/<max>".
func SummaryLine(r grading.Report) string {
	return fmt.Sprintf("Points %s/%s", formatPoints(r.EarnedPoints), formatPoints(r.MaxPoints))
}

// Payload renders {"totalPoints":<earned>,"maxPoints":<max>}.
func Payload(r grading.Report) (string, error) {
	data, err := json.Marshal(payload{TotalPoints: r.EarnedPoints, MaxPoints: r.MaxPoints})
	if err != nil {
		return "", fmt.Errorf("encoding report payload: %w", err)
	}
	return string(data), nil
}

// Notify aggregates results and, when there is something to report, emits
// the summary line followed by the JSON payload. The returned bool is false
// when no runner reported a maximum and nothing was emitted.
func Notify(e Emitter, results []result.RunnerResult) (grading.Report, bool, error) {
	report, ok := grading.Aggregate(results)
	if !ok {
		return report, false, nil
	}
	summary := SummaryLine(report)
	// A NaN or infinite total has no JSON form; emit neither notice rather
	// than a summary without its report.
	body, err := Payload(report)
	if err != nil {
		return report, true, err
	}
	if err := e.Notice(summary, TitleComplete); err != nil {
		return report, true, fmt.Errorf("emitting %q: %w", TitleComplete, err)
	}
	if err := e.Notice(body, TitleReport); err != nil {
		return report, true, fmt.Errorf("emitting %q: %w", TitleReport, err)
	}
	return report, true, nil
}

// formatPoints prints a number the way JSON does, so the summary line and
// payload always agree.
func formatPoints(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	data, _ := json.Marshal(v)
	return string(data)
}
