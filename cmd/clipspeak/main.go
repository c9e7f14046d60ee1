// clipspeak: read the clipboard aloud.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := newRootCmd()
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "clipspeak",
		Short: "Speak the clipboard aloud whenever it changes",
		Long: `clipspeak polls an X11 selection (via xclip by default) and reads every new
piece of text aloud with espeak. Copying something new while the previous
text is still being read cuts the old utterance off.

Text already on the clipboard at startup is ignored unless --initial is set.

All flags can be set via CLIPSPEAK_<FLAG> env vars (dashes become underscores).
Precedence (lowest → highest): defaults → CLIPSPEAK_* env vars → flags`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(cmd *cobra.Command, _ []string) error { return runListen(cmd, v) },
	}

	f := cmd.Flags()
	f.Int64P("time", "t", 300, "poll interval in milliseconds")
	f.StringP("selection", "s", "clipboard", "selection to read: primary|secondary|clipboard|buffer-cut")
	f.BoolP("initial", "i", false, "speak text already on the clipboard at startup")
	f.String("backend", backendExec, "clipboard backend: exec (external reader) | native (in-process, clipboard selection only)")
	f.String("reader", "xclip", "selection reader for the exec backend, invoked as <reader> -o -selection <name>")
	f.String("speaker", "espeak", "speech synthesizer, invoked as <speaker> [speaker-args...] <text>")
	f.StringSlice("speaker-arg", nil, "extra argument for the synthesizer, placed before the text (repeatable)")
	f.Duration("read-timeout", 0, "give up on a single clipboard read after this long (0 = wait forever)")
	f.Int("max-preview", 0, "truncate the echoed text to this many characters (0 = no limit)")
	addLoggingFlags(cmd)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clipspeak %s\n", Version)
		},
	}
}
