// Package resulttest writes runner results documents for tests.
package resulttest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/signalnine/autograde-notify/internal/result"
)

// WriteFile stores r as <dir>/<runner>.json and returns the path.
func WriteFile(t testing.TB, dir string, r result.RunnerResult) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating results dir: %v", err)
	}
	data, err := json.MarshalIndent(r.Results, "", "  ")
	if err != nil {
		t.Fatalf("marshaling results: %v", err)
	}
	path := filepath.Join(dir, r.Runner+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing results: %v", err)
	}
	return path
}
