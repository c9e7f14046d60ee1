package clip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"go.klb.dev/clipspeak/internal/proc"
)

// DefaultTool is the selection reader used by ExecSource.
const DefaultTool = "xclip"

// ErrReadFailed is returned when the reader exits with an unexpected status.
var ErrReadFailed = errors.New("clipboard read failed")

// noTarget matches xclip's complaint about a selection with no text in it.
// xclip exits 1 for that and for fatal errors such as a missing display, so
// the exit status alone cannot tell them apart.
var noTarget = regexp.MustCompile(`target \S+ not available`)

// ExecSource runs `<Tool> -o -selection <Selection>` for every Read.
type ExecSource struct {
	Tool      string
	Selection Selection
	// Timeout bounds a single read; zero means no limit.
	Timeout time.Duration
	Runner  proc.Runner
}

// NewExecSource returns an ExecSource using the os/exec runner.
func NewExecSource(tool string, sel Selection, timeout time.Duration) *ExecSource {
	if tool == "" {
		tool = DefaultTool
	}
	return &ExecSource{
		Tool:      tool,
		Selection: sel,
		Timeout:   timeout,
		Runner:    proc.ExecRunner{},
	}
}

func (s *ExecSource) Name() string {
	return fmt.Sprintf("%s (%s)", s.Tool, s.Selection)
}

func (s *ExecSource) Read(ctx context.Context) (string, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	res, err := s.Runner.Run(ctx, s.Tool, "-o", "-selection", s.Selection.String())
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Selection, err)
	}

	switch {
	case res.ExitCode == 0:
		return decodeText(res.Stdout), nil
	case res.ExitCode == 1 && len(res.Stdout) == 0 && noTarget.Match(res.Stderr):
		slog.Debug("selection empty", "tool", s.Tool, "selection", s.Selection.String(),
			"stderr", strings.TrimSpace(string(res.Stderr)))
		return "", nil
	default:
		return "", fmt.Errorf("%w: %s exited with status %d: %s", ErrReadFailed,
			s.Tool, res.ExitCode, strings.TrimSpace(string(res.Stderr)))
	}
}
