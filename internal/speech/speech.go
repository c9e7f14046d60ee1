// Package speech starts the external text-to-speech process and tracks it
// so a newer utterance can cut off an older one.
package speech

import (
	"fmt"
	"log/slog"

	"go.klb.dev/clipspeak/internal/proc"
)

// DefaultTool is the synthesizer used when none is configured.
const DefaultTool = "espeak"

// Handle is a running (or finished) utterance.
type Handle interface {
	// Alive reports whether the utterance is still playing.
	Alive() bool
	// Terminate stops the utterance. It returns once the process is gone;
	// terminating a finished utterance is a no-op.
	Terminate() error
}

// Speaker starts utterances.
type Speaker interface {
	Speak(text string) (Handle, error)
}

// ExecSpeaker runs `<Tool> <Args...> <text>`, with the text as a single
// argument. Output is not captured.
type ExecSpeaker struct {
	Tool string
	Args []string
}

// NewExecSpeaker returns an ExecSpeaker, defaulting the tool to espeak.
func NewExecSpeaker(tool string, args ...string) *ExecSpeaker {
	if tool == "" {
		tool = DefaultTool
	}
	return &ExecSpeaker{Tool: tool, Args: args}
}

func (s *ExecSpeaker) Speak(text string) (Handle, error) {
	args := make([]string, 0, len(s.Args)+1)
	args = append(args, s.Args...)
	args = append(args, text)

	p, err := proc.Start(s.Tool, args...)
	if err != nil {
		return nil, fmt.Errorf("speak: %w", err)
	}
	slog.Debug("utterance started", "tool", s.Tool, "pid", p.Pid(), "chars", len(text))
	return &processHandle{p: p}, nil
}

type processHandle struct {
	p *proc.Process
}

func (h *processHandle) Alive() bool { return h.p.Alive() }

func (h *processHandle) Terminate() error {
	if err := h.p.Kill(); err != nil {
		return fmt.Errorf("stop utterance: %w", err)
	}
	return nil
}
