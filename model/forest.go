package model

import (
	"fmt"

	erand "golang.org/x/exp/rand"
)

// ForestOptions bound forest growth.
type ForestOptions struct {
	// Trees is the ensemble size. Values below 1 are treated as 100.
	Trees    int
	MaxDepth int
	MinLeaf  int
	// Seed fixes the bootstrap sampling.
	Seed uint64
}

// Forest averages trees grown on bootstrap samples of the same rows.
type Forest struct {
	Trees       []*Tree `json:"trees"`
	NumFeatures int     `json:"num_features"`
}

var _ Model = &Forest{}

// FitForest grows opts.Trees regression trees, each on a sample of
// len(xs) rows drawn with replacement.
func FitForest(xs [][]float64, ys []float64, opts ForestOptions) (*Forest, error) {
	if len(xs) == 0 {
		return nil, ErrNoRows
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("model: %d feature rows for %d labels", len(xs), len(ys))
	}
	if opts.Trees < 1 {
		opts.Trees = 100
	}
	rng := erand.New(erand.NewSource(opts.Seed))
	forest := &Forest{
		Trees:       make([]*Tree, 0, opts.Trees),
		NumFeatures: len(xs[0]),
	}
	sampleXs := make([][]float64, len(xs))
	sampleYs := make([]float64, len(ys))
	for t := 0; t < opts.Trees; t++ {
		for i := range sampleXs {
			j := rng.Intn(len(xs))
			sampleXs[i] = xs[j]
			sampleYs[i] = ys[j]
		}
		tree, err := Fit(sampleXs, sampleYs, Options{MaxDepth: opts.MaxDepth, MinLeaf: opts.MinLeaf})
		if err != nil {
			return nil, err
		}
		forest.Trees = append(forest.Trees, tree)
	}
	return forest, nil
}

func (f *Forest) Evaluate(x []float64) float64 {
	if len(f.Trees) == 0 {
		return 0
	}
	var sum float64
	for _, t := range f.Trees {
		sum += t.Evaluate(x)
	}
	return sum / float64(len(f.Trees))
}

func (f *Forest) Features() int {
	return f.NumFeatures
}
