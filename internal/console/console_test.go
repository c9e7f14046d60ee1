package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedConsole(buf *bytes.Buffer) *Console {
	c := New(buf)
	c.Now = func() time.Time { return time.Date(2024, 3, 9, 7, 5, 3, 0, time.Local) }
	return c
}

func TestConsole_Lines(t *testing.T) {
	var buf bytes.Buffer
	c := fixedConsole(&buf)

	c.Startup()
	c.Speaking("hello world")
	c.Interrupted()

	assert.Equal(t,
		"07:05:03 Start listening to the clipboard, press Ctrl+C to exit.\n"+
			"07:05:03 Speaking: hello world\n"+
			"07:05:03 Interrupted.\n",
		buf.String())
}

func TestConsole_SpeakingKeepsTextVerbatim(t *testing.T) {
	var buf bytes.Buffer
	c := fixedConsole(&buf)

	c.Speaking("multi\nline  text")

	assert.Equal(t, "07:05:03 Speaking: multi\nline  text\n", buf.String())
}

func TestNew_DefaultsToWallClock(t *testing.T) {
	c := New(&bytes.Buffer{})
	assert.WithinDuration(t, time.Now(), c.Now(), time.Minute)
}
