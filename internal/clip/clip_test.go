package clip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/clipspeak/internal/proc"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	res      proc.Result
	err      error
	calls    []call
	deadline bool
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (proc.Result, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	_, f.deadline = ctx.Deadline()
	return f.res, f.err
}

func TestParseSelection(t *testing.T) {
	cases := map[string]Selection{
		"primary":    Primary,
		"secondary":  Secondary,
		"clipboard":  Clipboard,
		"buffer-cut": BufferCut,
		" PRIMARY ":  Primary,
	}
	for in, want := range cases {
		got, err := ParseSelection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSelection("cut-buffer")
	assert.ErrorContains(t, err, Selections)
}

func TestSelection_StringRoundTrip(t *testing.T) {
	for _, sel := range []Selection{Primary, Secondary, Clipboard, BufferCut} {
		got, err := ParseSelection(sel.String())
		require.NoError(t, err)
		assert.Equal(t, sel, got)
	}
	assert.Equal(t, "Selection(42)", Selection(42).String())
}

func TestExecSource_InvokesTool(t *testing.T) {
	r := &fakeRunner{res: proc.Result{Stdout: []byte("  hello\n")}}
	s := &ExecSource{Tool: "xclip", Selection: Primary, Runner: r}

	got, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "  hello\n", got, "trimming is the caller's job")

	require.Len(t, r.calls, 1)
	assert.Equal(t, "xclip", r.calls[0].name)
	assert.Equal(t, []string{"-o", "-selection", "primary"}, r.calls[0].args)
	assert.False(t, r.deadline)
}

func TestExecSource_Timeout(t *testing.T) {
	r := &fakeRunner{}
	s := &ExecSource{Tool: "xclip", Selection: Clipboard, Timeout: time.Second, Runner: r}

	_, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.True(t, r.deadline)
}

func TestExecSource_EmptySelection(t *testing.T) {
	r := &fakeRunner{res: proc.Result{
		ExitCode: 1,
		Stderr:   []byte("Error: target STRING not available\n"),
	}}
	s := &ExecSource{Tool: "xclip", Selection: Clipboard, Runner: r}

	got, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExecSource_UnexpectedExit(t *testing.T) {
	cases := map[string]proc.Result{
		"no display":    {ExitCode: 1, Stderr: []byte("Error: Can't open display: (null)\n")},
		"silent exit 1": {ExitCode: 1},
		"other status":  {ExitCode: 2, Stderr: []byte("xclip: bad option\n")},
	}
	for name, res := range cases {
		t.Run(name, func(t *testing.T) {
			s := &ExecSource{Tool: "xclip", Selection: Clipboard, Runner: &fakeRunner{res: res}}

			got, err := s.Read(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrReadFailed)
			assert.Empty(t, got)
		})
	}
}

func TestExecSource_DisplayErrorInMessage(t *testing.T) {
	r := &fakeRunner{res: proc.Result{ExitCode: 1, Stderr: []byte("Error: Can't open display: (null)\n")}}
	s := &ExecSource{Tool: "xclip", Selection: Clipboard, Runner: r}

	_, err := s.Read(context.Background())
	assert.ErrorContains(t, err, "Can't open display")
	assert.ErrorContains(t, err, "status 1")
}

func TestExecSource_LaunchFailure(t *testing.T) {
	launch := &proc.Error{Kind: proc.ErrLaunch, Name: "xclip", Err: errors.New("not found")}
	s := &ExecSource{Tool: "xclip", Selection: Clipboard, Runner: &fakeRunner{err: launch}}

	_, err := s.Read(context.Background())
	assert.ErrorIs(t, err, proc.ErrLaunch)
}

func TestExecSource_InvalidUTF8(t *testing.T) {
	r := &fakeRunner{res: proc.Result{Stdout: []byte("a\xffb")}}
	s := &ExecSource{Tool: "xclip", Selection: Clipboard, Runner: r}

	got, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFDb", got)
}

func TestNewExecSource_Defaults(t *testing.T) {
	s := NewExecSource("", BufferCut, 0)
	assert.Equal(t, DefaultTool, s.Tool)
	assert.Equal(t, "xclip (buffer-cut)", s.Name())
	assert.IsType(t, proc.ExecRunner{}, s.Runner)
}

func TestNewNative_RejectsOtherSelections(t *testing.T) {
	_, err := NewNative(Primary)
	assert.ErrorContains(t, err, "only the clipboard selection")
}

func TestNativeSource_Read(t *testing.T) {
	s := &NativeSource{read: func() []byte { return []byte("native\xfe") }}

	got, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "native\uFFFD", got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
