// Package clip reads text from the host's selection buffers. Two sources
// are provided:
//
//	ExecSource:   shells out to xclip (or a compatible tool) once per read
//	NativeSource: reads in-process via golang.design/x/clipboard
package clip

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Selection names one of the X11 selection buffers.
type Selection int

const (
	Clipboard Selection = iota
	Primary
	Secondary
	BufferCut
)

var selectionNames = map[Selection]string{
	Primary:   "primary",
	Secondary: "secondary",
	Clipboard: "clipboard",
	BufferCut: "buffer-cut",
}

// Selections lists the accepted names, for help text.
const Selections = "primary|secondary|clipboard|buffer-cut"

// String returns the name xclip expects after -selection.
func (s Selection) String() string {
	if n, ok := selectionNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Selection(%d)", int(s))
}

// ParseSelection converts a selection name, case-insensitively.
func ParseSelection(s string) (Selection, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for sel, n := range selectionNames {
		if n == name {
			return sel, nil
		}
	}
	return Clipboard, fmt.Errorf("unknown selection %q (want %s)", s, Selections)
}

// Source is anything that can sample the current selection text.
type Source interface {
	// Name returns a human-readable name for the source.
	Name() string

	// Read returns the current text, untrimmed. The result is always valid
	// UTF-8; an empty selection reads as "".
	Read(ctx context.Context) (string, error)
}

// decodeText converts raw selection bytes to a string, replacing invalid
// UTF-8 sequences with U+FFFD.
func decodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, _ := unicode.UTF8.NewDecoder().Bytes(b)
	slog.Debug("selection is not valid UTF-8, replaced invalid bytes", "size_bytes", len(b))
	return string(out)
}
