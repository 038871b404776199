// Package annotate writes GitHub Actions workflow commands.
package annotate

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sethvargo/go-githubactions"
)

// GitHub emits notices as ::notice workflow commands.
type GitHub struct {
	action *githubactions.Action
	out    *errWriter
}

// NewGitHub returns an emitter writing to w. A nil getenv uses os.Getenv.
func NewGitHub(w io.Writer, getenv func(string) string) *GitHub {
	if getenv == nil {
		getenv = os.Getenv
	}
	out := &errWriter{w: w}
	return &GitHub{
		action: githubactions.New(
			githubactions.WithWriter(out),
			githubactions.WithGetenv(getenv),
		),
		out: out,
	}
}

func (g *GitHub) Notice(message, title string) error {
	g.action.WithFieldsMap(map[string]string{"title": title}).Noticef("%s", message)
	if err := g.out.take(); err != nil {
		return fmt.Errorf("writing notice: %w", err)
	}
	return nil
}

// Warning emits a ::warning workflow command.
func (g *GitHub) Warning(message, title string) error {
	g.action.WithFieldsMap(map[string]string{"title": title}).Warningf("%s", message)
	if err := g.out.take(); err != nil {
		return fmt.Errorf("writing warning: %w", err)
	}
	return nil
}

// errWriter remembers the first write error, since workflow command
// helpers discard them.
type errWriter struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err != nil {
		e.mu.Lock()
		if e.err == nil {
			e.err = err
		}
		e.mu.Unlock()
	}
	return n, err
}

func (e *errWriter) take() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.err
	e.err = nil
	return err
}
