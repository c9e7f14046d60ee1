package clip

import (
	"context"
	"fmt"

	"golang.design/x/clipboard"
)

// NativeSource reads the system clipboard in-process. It only supports the
// clipboard selection; golang.design/x/clipboard does not expose the others.
type NativeSource struct {
	read func() []byte
}

// NewNative initialises the platform clipboard. It fails on headless hosts
// (no X11/Wayland display) and for any selection other than Clipboard.
func NewNative(sel Selection) (*NativeSource, error) {
	if sel != Clipboard {
		return nil, fmt.Errorf("native backend supports only the %s selection, not %s", Clipboard, sel)
	}
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard init: %w", err)
	}
	return &NativeSource{
		read: func() []byte { return clipboard.Read(clipboard.FmtText) },
	}, nil
}

func (s *NativeSource) Name() string { return "native clipboard" }

func (s *NativeSource) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return decodeText(s.read()), nil
}
