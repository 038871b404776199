package cmd

import (
	"github.com/signalnine/autograde-notify/internal/report"
	"github.com/spf13/cobra"
)

var flagReportFormat string

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a per-test breakdown of runner results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			results, err := loadResults(cfg)
			if err != nil {
				return err
			}
			format := cfg.Output.Format
			if cmd.Flags().Changed("format") {
				format = flagReportFormat
			}
			return report.Write(cmd.OutOrStdout(), format, results)
		},
	}
	addResultFlags(cmd)
	cmd.Flags().StringVar(&flagReportFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}
