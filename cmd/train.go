package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeu5/pazaak-learn/train"
)

func TrainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit a model on a synthesized dataset",
	}

	cmd.AddCommand(
		trainTreeCommand(),
		trainForestCommand(),
	)

	return cmd
}

func trainTreeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Fit a depth-bounded decision tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraining(train.TreeConfig())
		},
	}

	return cmd
}

func trainForestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forest",
		Short: "Fit a bootstrap forest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraining(train.ForestConfig())
		},
	}

	return cmd
}

// runTraining applies explicit flag overrides on top of the preset.
func runTraining(cfg train.Config) error {
	if flagChanged("dataset") {
		cfg.DatasetPath = flags.DatasetPath
	}
	if flagChanged("model") {
		cfg.ModelPath = flags.ModelPath
	}
	if flagChanged("dot") {
		cfg.DotPath = flags.DotPath
	}
	cfg.Seed = flags.Seed
	cfg.Logger = newLogger()

	rep, err := train.Run(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("R^2 on held-out rows: %.4f\n", rep.Score)
	return nil
}
