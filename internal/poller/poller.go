// Package poller samples a selection at a fixed interval and speaks the text
// whenever it changes. A change that arrives while the previous utterance is
// still playing cuts that utterance off first, so at most one is ever live.
package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.klb.dev/clipspeak/internal/clip"
	"go.klb.dev/clipspeak/internal/console"
	"go.klb.dev/clipspeak/internal/speech"
)

// DefaultInterval is the delay between samples.
const DefaultInterval = 300 * time.Millisecond

// Config controls the poll loop.
type Config struct {
	// Interval between samples. Zero means DefaultInterval.
	Interval time.Duration
	// SpeakOnStartup speaks text already present at the first sample instead
	// of taking it as the baseline.
	SpeakOnStartup bool
	// MaxPreview truncates the echoed text (in runes); zero echoes it all.
	// The synthesizer always receives the full text.
	MaxPreview int
}

// Poller owns the last seen text and the live utterance. Neither is safe
// for concurrent use; only the goroutine calling Run or Step touches them.
type Poller struct {
	cfg     Config
	src     clip.Source
	speaker speech.Speaker
	out     *console.Console

	last    string
	current speech.Handle
	samples int
}

// New validates cfg and returns a Poller.
func New(cfg Config, src clip.Source, spk speech.Speaker, out *console.Console) (*Poller, error) {
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", cfg.Interval)
	}
	if cfg.MaxPreview < 0 {
		return nil, fmt.Errorf("max preview must not be negative, got %d", cfg.MaxPreview)
	}
	if src == nil || spk == nil || out == nil {
		return nil, errors.New("poller: source, speaker and console are required")
	}
	return &Poller{cfg: cfg, src: src, speaker: spk, out: out}, nil
}

// Run prints the startup banner and polls until ctx is cancelled or a step
// fails. Cancellation is the normal way out: the live utterance is stopped
// and Run returns nil.
func (p *Poller) Run(ctx context.Context) error {
	p.out.Startup()
	slog.Info("polling", "source", p.src.Name(), "interval", p.cfg.Interval,
		"speak_on_startup", p.cfg.SpeakOnStartup)

	t := time.NewTimer(0)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return p.shutdown()
		case <-t.C:
		}

		if err := p.Step(ctx); err != nil {
			if ctx.Err() != nil {
				return p.shutdown()
			}
			return errors.Join(err, p.stopCurrent())
		}
		t.Reset(p.cfg.Interval)
	}
}

// Step takes one sample and reacts to it. It never sleeps.
func (p *Poller) Step(ctx context.Context) error {
	raw, err := p.src.Read(ctx)
	if err != nil {
		return fmt.Errorf("sample %s: %w", p.src.Name(), err)
	}
	text := strings.TrimSpace(raw)
	first := p.samples == 0
	p.samples++

	if first && !p.cfg.SpeakOnStartup && text != "" && p.last == "" {
		p.last = text
		slog.Debug("baseline recorded", "chars", len(text))
		return nil
	}
	if text == p.last {
		return nil
	}

	p.last = text
	if p.current != nil && p.current.Alive() {
		if err := p.current.Terminate(); err != nil {
			return err
		}
		p.out.Interrupted()
	}
	p.current = nil

	if text == "" {
		slog.Debug("selection cleared")
		return nil
	}

	h, err := p.speaker.Speak(text)
	if err != nil {
		return err
	}
	p.current = h
	p.out.Speaking(p.preview(text))
	return nil
}

func (p *Poller) preview(text string) string {
	if p.cfg.MaxPreview == 0 {
		return text
	}
	r := []rune(text)
	if len(r) <= p.cfg.MaxPreview {
		return text
	}
	return string(r[:p.cfg.MaxPreview]) + "…"
}

func (p *Poller) stopCurrent() error {
	if p.current == nil {
		return nil
	}
	h := p.current
	p.current = nil
	return h.Terminate()
}

func (p *Poller) shutdown() error {
	slog.Debug("stopping", "samples", p.samples)
	if err := p.stopCurrent(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
