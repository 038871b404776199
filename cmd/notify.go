package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/signalnine/autograde-notify/internal/annotate"
	"github.com/signalnine/autograde-notify/internal/notify"
	"github.com/signalnine/autograde-notify/internal/report"
	"github.com/spf13/cobra"
)

var ErrIncomplete = errors.New("not all points earned")

var (
	flagFormat           string
	flagStepSummary      bool
	flagFailOnIncomplete bool
)

func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Emit autograding notices for runner results",
		Long: "Aggregate runner results and emit the \"Autograding complete\" and \"Autograding report\" " +
			"notices. Nothing is emitted when no runner reports a max score.",
		Args: cobra.NoArgs,
		RunE: runNotify,
	}
	addResultFlags(cmd)
	cmd.Flags().StringVar(&flagFormat, "format", "table", "console breakdown format (table, markdown, json, none)")
	cmd.Flags().BoolVar(&flagStepSummary, "step-summary", false, "append a breakdown to $GITHUB_STEP_SUMMARY")
	cmd.Flags().BoolVar(&flagFailOnIncomplete, "fail-on-incomplete", false, "exit non-zero when earned points are below max")
	return cmd
}

func runNotify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flagFormat
	}
	if cmd.Flags().Changed("step-summary") {
		cfg.Output.StepSummary = flagStepSummary
	}
	if cmd.Flags().Changed("fail-on-incomplete") {
		cfg.FailOnIncomplete = flagFailOnIncomplete
	}

	results, err := loadResults(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.Write(out, cfg.Output.Format, results); err != nil {
		return err
	}

	gh := annotate.NewGitHub(out, os.Getenv)
	rep, ok, err := notify.Notify(gh, results)
	if err != nil {
		return err
	}
	if !ok {
		slog.Info("no runner reported a max score, nothing to report", "runners", len(results))
		return nil
	}
	slog.Info("autograding complete", "earned", rep.EarnedPoints, "max", rep.MaxPoints)

	if cfg.Output.StepSummary {
		if path := annotate.StepSummaryPath(os.Getenv); path == "" {
			slog.Warn("step summary requested but GITHUB_STEP_SUMMARY is not set")
		} else if err := annotate.WriteStepSummary(path, report.Markdown(results)); err != nil {
			return err
		}
	}

	if cfg.FailOnIncomplete && !rep.Complete() {
		msg := notify.SummaryLine(rep)
		if err := gh.Warning(msg, "Autograding incomplete"); err != nil {
			return err
		}
		return fmt.Errorf("%s: %w", msg, ErrIncomplete)
	}
	return nil
}
