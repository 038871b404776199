package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/signalnine/autograde-notify/internal/config"
	"github.com/signalnine/autograde-notify/internal/result"
	"github.com/spf13/cobra"
)

var (
	flagRunners []string
	flagResults []string
)

func addResultFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&flagRunners, "runners", nil, "runner names whose <RUNNER>_RESULTS variables to read")
	cmd.Flags().StringArrayVar(&flagResults, "results", nil, "results JSON file (repeatable)")
}

// loadConfig resolves configuration: flags over action inputs over the
// config file over defaults. A missing config file is only an error when
// --config was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("config") {
			return nil, err
		}
		slog.Debug("no config file, using defaults", "path", cfgFile)
		cfg = config.Default()
	}
	if err := cfg.ApplyInputs(os.Getenv); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("runners") {
		cfg.Runners = config.ParseRunners(strings.Join(flagRunners, ","))
	}
	if cmd.Flags().Changed("results") {
		cfg.ResultsFiles = append(cfg.ResultsFiles, flagResults...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadResults reads env-published runners first, then result files.
func loadResults(cfg *config.Config) ([]result.RunnerResult, error) {
	fromEnv, err := result.FromEnv(cfg.Runners, os.Getenv)
	if err != nil {
		return nil, err
	}
	fromFiles, err := result.ReadFiles(cfg.ResultsFiles)
	if err != nil {
		return nil, err
	}
	results := append(fromEnv, fromFiles...)
	if len(results) == 0 {
		slog.Warn("no runners configured")
	}
	for _, rr := range results {
		slog.Debug("loaded runner results",
			"runner", rr.Runner,
			"graded", rr.Results.Graded(),
			"tests", len(rr.Results.Tests))
	}
	return results, nil
}
