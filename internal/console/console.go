// Package console prints the user-facing status lines: a local HH:MM:SS
// timestamp followed by the event. Colour is applied only when the writer is
// a terminal.
package console

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// TimeFormat is the timestamp layout at the start of every line.
const TimeFormat = "15:04:05"

// Console writes status lines to w.
type Console struct {
	// Now supplies the timestamp; defaults to time.Now.
	Now func() time.Time

	mu sync.Mutex
	w  io.Writer

	stamp    lipgloss.Style
	speaking lipgloss.Style
	interr   lipgloss.Style
	key      lipgloss.Style
}

// New returns a Console writing to w. The colour profile is detected from w,
// so buffers and pipes get plain text.
func New(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		Now:      time.Now,
		w:        w,
		stamp:    r.NewStyle().Foreground(lipgloss.Color("2")),
		speaking: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		interr:   r.NewStyle().Foreground(lipgloss.Color("4")),
		key:      r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Startup prints the banner shown before the first poll.
func (c *Console) Startup() {
	c.line(fmt.Sprintf("Start listening to the clipboard, press %s to exit.", c.key.Render("Ctrl+C")))
}

// Speaking announces the text handed to the synthesizer.
func (c *Console) Speaking(text string) {
	c.line(c.speaking.Render("Speaking:") + " " + text)
}

// Interrupted reports that a running utterance was cut off.
func (c *Console) Interrupted() {
	c.line(c.interr.Render("Interrupted."))
}

func (c *Console) line(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.w, "%s %s\n", c.stamp.Render(c.Now().Format(TimeFormat)), msg)
}
