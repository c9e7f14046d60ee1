package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipspeak/internal/logging"
)

// bindViper wires a command's flags into a viper instance with the
// CLIPSPEAK_* env var prefix. There is no config file.
//
// Precedence (lowest → highest): defaults → CLIPSPEAK_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix("CLIPSPEAK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addLoggingFlags adds the diagnostics flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-background", false, "run interactively: tinter diagnostics + debug level")
	cmd.Flags().String("log-format", "auto", "diagnostics format on stderr: auto|text|json")
	cmd.Flags().String("log-level", "", "diagnostics level: debug|info|warn|error (default: warn, debug with --no-background)")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	format, level := logging.Resolve(v.GetBool("no-background"), v.GetString("log-format"), v.GetString("log-level"))
	logging.Setup(format, level)
}
