// Package cmd wires the command tree for the synthesis, training, and
// play pipelines.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pazaak-learn",
		Short: "Synthesize Pazaak self-play data and train card models",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
			flags.Record()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		SynthCommand(),
		TrainCommand(),
		PlayCommand(),
	)

	return cmd
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flags.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
}
