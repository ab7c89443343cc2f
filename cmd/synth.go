package cmd

import (
	"context"
	"os"
	"os/signal"
	"path"

	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"

	"github.com/zeu5/pazaak-learn/policies"
	"github.com/zeu5/pazaak-learn/selfplay"
	"github.com/zeu5/pazaak-learn/util"
)

func SynthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize a training dataset from self-play rounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt) // channel for interrupts from os

			doneCh := make(chan struct{}) // channel for done signal from application

			ctx, cancel := context.WithCancel(context.Background())
			go func() { // start a go-routine
				select { // can wait on multiple channels
				case <-sigCh:
				case <-doneCh:
				}
				cancel()
			}()

			policy, err := policies.FromKind(policies.Kind(flags.Policy), flags.Seed)
			if err != nil {
				return err
			}

			progress := uilive.New()
			progress.Start()
			s := selfplay.NewSynthesizer(selfplay.Config{
				Rounds:      flags.Rounds,
				DatasetPath: flags.DatasetPath,
				Policy:      policy,
				Seed:        flags.Seed,
				Progress:    progress,
				Logger:      newLogger(),
			})
			stats, err := s.Run(ctx)
			progress.Stop()
			close(doneCh)
			if err != nil {
				return err
			}
			return util.SaveJson(path.Join(flags.SavePath, "stats.json"), stats)
		},
	}

	return cmd
}
