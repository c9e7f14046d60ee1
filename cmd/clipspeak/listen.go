package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipspeak/internal/clip"
	"go.klb.dev/clipspeak/internal/console"
	"go.klb.dev/clipspeak/internal/poller"
	"go.klb.dev/clipspeak/internal/speech"
)

const (
	backendExec   = "exec"
	backendNative = "native"
)

func runListen(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(v)

	cfg, err := pollerConfig(v)
	if err != nil {
		return err
	}
	src, err := newSource(v)
	if err != nil {
		return err
	}
	spk := speech.NewExecSpeaker(v.GetString("speaker"), v.GetStringSlice("speaker-arg")...)

	p, err := poller.New(cfg, src, spk, console.New(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Debug("clipspeak starting", "version", Version, "speaker", spk.Tool, "speaker_args", spk.Args)
	return p.Run(ctx)
}

func pollerConfig(v *viper.Viper) (poller.Config, error) {
	ms := v.GetInt64("time")
	if ms <= 0 {
		return poller.Config{}, fmt.Errorf("--time must be a positive number of milliseconds, got %d", ms)
	}
	return poller.Config{
		Interval:       time.Duration(ms) * time.Millisecond,
		SpeakOnStartup: v.GetBool("initial"),
		MaxPreview:     v.GetInt("max-preview"),
	}, nil
}

func newSource(v *viper.Viper) (clip.Source, error) {
	sel, err := clip.ParseSelection(v.GetString("selection"))
	if err != nil {
		return nil, err
	}

	switch backend := v.GetString("backend"); backend {
	case backendExec, "":
		return clip.NewExecSource(v.GetString("reader"), sel, v.GetDuration("read-timeout")), nil
	case backendNative:
		return clip.NewNative(sel)
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s|%s)", backend, backendExec, backendNative)
	}
}
