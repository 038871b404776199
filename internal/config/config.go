package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-githubactions"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Runners          []string `yaml:"runners" validate:"unique,dive,required"`
	ResultsFiles     []string `yaml:"results_files" validate:"dive,required"`
	Output           Output   `yaml:"output"`
	FailOnIncomplete bool     `yaml:"fail_on_incomplete"`
}

type Output struct {
	Format      string `yaml:"format" validate:"oneof=table markdown json none"`
	StepSummary bool   `yaml:"step_summary"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: Output{Format: "table"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "table"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// ApplyInputs overlays GitHub Action inputs (INPUT_* variables) that are set.
func (c *Config) ApplyInputs(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	action := githubactions.New(githubactions.WithGetenv(getenv))

	if v := action.GetInput("runners"); v != "" {
		c.Runners = ParseRunners(v)
	}
	if v := action.GetInput("format"); v != "" {
		c.Output.Format = v
	}
	if v := action.GetInput("step-summary"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("input step-summary: %w", err)
		}
		c.Output.StepSummary = b
	}
	if v := action.GetInput("fail-on-incomplete"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("input fail-on-incomplete: %w", err)
		}
		c.FailOnIncomplete = b
	}
	return nil
}

// ParseRunners splits a comma or whitespace separated runner list.
func ParseRunners(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	runners := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			runners = append(runners, f)
		}
	}
	return runners
}
