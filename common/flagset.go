// Package common holds the flag configuration shared across the
// command tree.
package common

import (
	"path"

	"github.com/zeu5/pazaak-learn/policies"
	"github.com/zeu5/pazaak-learn/train"
	"github.com/zeu5/pazaak-learn/util"
)

type Flags struct {
	SynthFlags
	TrainFlags
	SavePath string
	Verbose  bool
}

type SynthFlags struct {
	Rounds int
	Policy string
	Seed   uint64
}

type TrainFlags struct {
	DatasetPath string
	ModelPath   string
	DotPath     string
}

func DefaultFlags() *Flags {
	return &Flags{
		SynthFlags: SynthFlags{
			Rounds: 1000,
			Policy: string(policies.KindMixed),
			Seed:   0,
		},
		TrainFlags: TrainFlags{
			DatasetPath: train.DefaultDatasetPath,
			ModelPath:   train.DefaultModelPath,
			DotPath:     train.DefaultDotPath,
		},
		SavePath: "resources",
		Verbose:  false,
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
