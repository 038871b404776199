package annotate

import (
	"fmt"
	"os"
	"strings"
)

const stepSummaryEnv = "GITHUB_STEP_SUMMARY"

// StepSummaryPath returns the job summary file, or "" outside of Actions.
func StepSummaryPath(getenv func(string) string) string {
	if getenv == nil {
		getenv = os.Getenv
	}
	return strings.TrimSpace(getenv(stepSummaryEnv))
}

// WriteStepSummary appends markdown to the job summary file at path.
func WriteStepSummary(path, markdown string) error {
	if path == "" {
		return fmt.Errorf("%s not set", stepSummaryEnv)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening step summary: %w", err)
	}
	defer f.Close()
	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}
	if _, err := f.WriteString(markdown); err != nil {
		return fmt.Errorf("writing step summary: %w", err)
	}
	return nil
}
