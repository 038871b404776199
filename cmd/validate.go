package cmd

import (
	"fmt"
	"strings"

	"github.com/signalnine/autograde-notify/internal/grading"
	"github.com/signalnine/autograde-notify/internal/result"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check configuration and runner results without emitting notices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Runners:")
			for _, r := range cfg.Runners {
				fmt.Fprintf(out, "  - %s (env: %s)\n", r, strings.Join(result.EnvKeys(r), " or "))
			}
			if len(cfg.ResultsFiles) > 0 {
				fmt.Fprintln(out, "\nResult files:")
				for _, f := range cfg.ResultsFiles {
					fmt.Fprintf(out, "  - %s\n", f)
				}
			}

			results, err := loadResults(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nTotals:")
			for _, t := range grading.Breakdown(results) {
				if !t.Graded {
					fmt.Fprintf(out, "  - %s: ungraded\n", t.Runner)
					continue
				}
				fmt.Fprintf(out, "  - %s: %g/%g\n", t.Runner, t.EarnedPoints, t.MaxPoints)
			}
			if rep, ok := grading.Aggregate(results); ok {
				fmt.Fprintf(out, "\nWould report %g/%g\n", rep.EarnedPoints, rep.MaxPoints)
			} else {
				fmt.Fprintln(out, "\nNothing to report")
			}
			return nil
		},
	}
	addResultFlags(cmd)
	return cmd
}
