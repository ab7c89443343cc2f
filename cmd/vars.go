package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zeu5/pazaak-learn/common"
)

var (
	flags *common.Flags = common.DefaultFlags()

	savePath string
	verbose  bool

	rounds     int
	policyKind string
	seed       uint64

	datasetPath string
	modelPath   string
	dotPath     string

	persistent *pflag.FlagSet
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save run records")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", flags.Verbose, "Enable debug logging")

	cmd.PersistentFlags().IntVar(&rounds, "rounds", flags.Rounds, "Number of rounds to synthesize")
	cmd.PersistentFlags().StringVar(&policyKind, "policy", flags.Policy, "Trainee policy: mixed, standing or random")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Seed for shuffles and sampling, 0 seeds from the clock")

	cmd.PersistentFlags().StringVar(&datasetPath, "dataset", flags.DatasetPath, "Path of the dataset CSV")
	cmd.PersistentFlags().StringVar(&modelPath, "model", flags.ModelPath, "Path of the model artifact")
	cmd.PersistentFlags().StringVar(&dotPath, "dot", flags.DotPath, "Path of the graphviz rendering of a fitted tree")

	persistent = cmd.PersistentFlags()
}

func UpdateFlags() {
	flags.SavePath = savePath
	flags.Verbose = verbose

	flags.Rounds = rounds
	flags.Policy = policyKind
	flags.Seed = seed

	flags.DatasetPath = datasetPath
	flags.ModelPath = modelPath
	flags.DotPath = dotPath
}

// flagChanged reports whether the flag was set on the command line, so
// presets yield only to explicit overrides.
func flagChanged(name string) bool {
	return persistent != nil && persistent.Changed(name)
}
