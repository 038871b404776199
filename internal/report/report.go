package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/signalnine/autograde-notify/internal/grading"
	"github.com/signalnine/autograde-notify/internal/result"
)

const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatNone     = "none"
)

// Formats lists the accepted values for Write.
var Formats = []string{FormatTable, FormatMarkdown, FormatJSON, FormatNone}

type Summary struct {
	Runners      []grading.RunnerTotal `json:"runners"`
	Tests        []TestRow             `json:"tests"`
	EarnedPoints float64               `json:"total_points"`
	MaxPoints    float64               `json:"max_points"`
}

type TestRow struct {
	Runner string  `json:"runner"`
	Name   string  `json:"name"`
	Status string  `json:"status"`
	Score  float64 `json:"score"`
	Graded bool    `json:"graded"`
}

// Build collects the per-test and per-runner view of results.
func Build(results []result.RunnerResult) Summary {
	report, _ := grading.Aggregate(results)
	s := Summary{
		Runners:      grading.Breakdown(results),
		Tests:        []TestRow{},
		EarnedPoints: report.EarnedPoints,
		MaxPoints:    report.MaxPoints,
	}
	for _, rr := range results {
		graded := rr.Results.Graded()
		for _, t := range rr.Results.Tests {
			s.Tests = append(s.Tests, TestRow{
				Runner: rr.Runner,
				Name:   t.Name,
				Status: t.Status,
				Score:  t.Score,
				Graded: graded,
			})
		}
	}
	return s
}

// Write renders a breakdown of results to w in the given format.
func Write(w io.Writer, format string, results []result.RunnerResult) error {
	s := Build(results)
	switch format {
	case FormatNone:
		return nil
	case FormatMarkdown:
		return writeMarkdown(s, w)
	case FormatJSON:
		return writeJSON(s, w)
	case FormatTable, "":
		return writeTable(s, w)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Markdown renders the breakdown for a job summary.
func Markdown(results []result.RunnerResult) string {
	var b strings.Builder
	writeMarkdown(Build(results), &b)
	return b.String()
}

func writeTable(s Summary, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUNNER\tTEST\tSTATUS\tSCORE")
	fmt.Fprintln(tw, strings.Repeat("-", 60))
	for _, t := range s.Tests {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", cell(t.Runner), cell(t.Name), cell(statusIcon(t.Status)), score(t))
	}
	fmt.Fprintln(tw, strings.Repeat("-", 60))
	for _, r := range s.Runners {
		fmt.Fprintf(tw, "%s\t\t\t%s\n", cell(r.Runner), subtotal(r))
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t%s/%s\n", points(s.EarnedPoints), points(s.MaxPoints))
	return tw.Flush()
}

func writeMarkdown(s Summary, w io.Writer) error {
	fmt.Fprintln(w, "| Runner | Test | Status | Score |")
	fmt.Fprintln(w, "|---|---|---|---|")
	for _, t := range s.Tests {
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n", mdCell(t.Runner), mdCell(t.Name), mdCell(statusIcon(t.Status)), score(t))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Runner | Points |")
	fmt.Fprintln(w, "|---|---|")
	for _, r := range s.Runners {
		fmt.Fprintf(w, "| %s | %s |\n", mdCell(r.Runner), subtotal(r))
	}
	_, err := fmt.Fprintf(w, "| **Total** | **%s/%s** |\n", points(s.EarnedPoints), points(s.MaxPoints))
	return err
}

func writeJSON(s Summary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Output shares stdout with workflow commands, so a name must never start
// a line of its own.
var cellEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", " ")

func cell(s string) string {
	return cellEscaper.Replace(s)
}

func mdCell(s string) string {
	return strings.ReplaceAll(cell(s), "|", `\|`)
}

func statusIcon(status string) string {
	switch status {
	case "pass":
		return "✅ pass"
	case "fail":
		return "❌ fail"
	case "error":
		return "⚠️ error"
	case "":
		return "-"
	default:
		return status
	}
}

func score(t TestRow) string {
	if !t.Graded {
		return points(t.Score) + " (ungraded)"
	}
	return points(t.Score)
}

func subtotal(r grading.RunnerTotal) string {
	if !r.Graded {
		return "ungraded"
	}
	return points(r.EarnedPoints) + "/" + points(r.MaxPoints)
}

func points(v float64) string {
	return fmt.Sprintf("%g", v)
}
