package result

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrMissingResults   = errors.New("missing runner results")
	ErrMalformedResults = errors.New("malformed runner results")
)

// EnvKey returns the environment variable a runner publishes its results
// in: the runner name upper-cased, as generated autograding workflows set it.
func EnvKey(runner string) string {
	return strings.ToUpper(strings.TrimSpace(runner)) + "_RESULTS"
}

// EnvKeys returns the variables tried for a runner, in lookup order. Names
// with dashes or spaces fall back to the shell-safe underscore form.
func EnvKeys(runner string) []string {
	primary := EnvKey(runner)
	fallback := strings.NewReplacer("-", "_", " ", "_").Replace(primary)
	if fallback == primary {
		return []string{primary}
	}
	return []string{primary, fallback}
}

// FromEnv loads one RunnerResult per runner name, in order.
func FromEnv(runners []string, getenv func(string) string) ([]RunnerResult, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	out := make([]RunnerResult, 0, len(runners))
	for _, name := range runners {
		keys := EnvKeys(name)
		var raw string
		for _, key := range keys {
			if raw = strings.TrimSpace(getenv(key)); raw != "" {
				break
			}
		}
		if raw == "" {
			return nil, fmt.Errorf("runner %q: %s not set: %w", name, strings.Join(keys, " or "), ErrMissingResults)
		}
		rr, err := Decode(name, []byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, nil
}

// Decode parses a results document that is either base64 encoded JSON or
// plain JSON.
func Decode(runner string, raw []byte) (RunnerResult, error) {
	data := raw
	if decoded, err := base64.StdEncoding.DecodeString(string(raw)); err == nil {
		data = decoded
	}
	var res Results
	if err := json.Unmarshal(data, &res); err != nil {
		return RunnerResult{}, fmt.Errorf("runner %q: parsing results: %v: %w", runner, err, ErrMalformedResults)
	}
	if res.Graded() && res.Tests == nil {
		return RunnerResult{}, fmt.Errorf("runner %q: results have max_score but no tests: %w", runner, ErrMalformedResults)
	}
	return RunnerResult{Runner: runner, Results: res}, nil
}

// ReadFile loads a results document from disk. The runner is named after
// the file without its extension.
func ReadFile(path string) (RunnerResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerResult{}, fmt.Errorf("reading results: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Decode(name, data)
}

// ReadFiles loads each path in order.
func ReadFiles(paths []string) ([]RunnerResult, error) {
	out := make([]RunnerResult, 0, len(paths))
	for _, p := range paths {
		rr, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, nil
}
