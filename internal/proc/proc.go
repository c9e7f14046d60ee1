// Package proc runs the external helpers clipspeak delegates to: one-shot
// commands whose output is captured, and background commands that are
// tracked until they exit or are killed.
package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

var (
	// ErrLaunch is returned when an executable cannot be started
	// (missing, not executable, permission denied).
	ErrLaunch = errors.New("launch failed")

	// ErrTerminate is returned when a live process cannot be killed.
	ErrTerminate = errors.New("terminate failed")
)

// Error records which command failed and how.
type Error struct {
	Kind error
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Name, e.Kind, e.Err)
}

// Is matches the failure kind so callers can use errors.Is(err, ErrLaunch).
func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

// Result is the outcome of a command that ran to completion.
// A non-zero ExitCode is not an error at this layer.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner runs a command synchronously and captures its output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner is the os/exec Runner.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case ctx.Err() != nil:
		return res, fmt.Errorf("%s: %w", name, ctx.Err())
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	default:
		return res, &Error{Kind: ErrLaunch, Name: name, Err: err}
	}
}

// Process is a background command. Its exit is observed by a waiter
// goroutine, which closes done once the process has been reaped, so Alive
// never blocks.
type Process struct {
	name string
	cmd  *exec.Cmd
	done chan struct{}
}

// Start launches name in the background with stdin/stdout detached and
// stderr inherited.
func Start(name string, args ...string) (*Process, error) {
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, &Error{Kind: ErrLaunch, Name: name, Err: err}
	}

	p := &Process{name: name, cmd: cmd, done: make(chan struct{})}
	go p.wait()
	return p, nil
}

func (p *Process) wait() {
	err := p.cmd.Wait()
	slog.Debug("process exited", "name", p.name, "pid", p.cmd.Process.Pid, "err", err)
	close(p.done)
}

// Pid returns the OS process id.
func (p *Process) Pid() int { return p.cmd.Process.Pid }

// Alive reports whether the process has not exited yet.
func (p *Process) Alive() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// Kill stops the process and waits until it has been reaped. Killing a
// process that already exited is not an error.
func (p *Process) Kill() error {
	if !p.Alive() {
		return nil
	}
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return &Error{Kind: ErrTerminate, Name: p.name, Err: err}
	}
	<-p.done
	return nil
}
