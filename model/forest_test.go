package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clusterRows() ([][]float64, []float64) {
	xs := make([][]float64, 0, 20)
	ys := make([]float64, 0, 20)
	for i := 0; i < 10; i++ {
		xs = append(xs, []float64{0, float64(i)})
		ys = append(ys, -1)
	}
	for i := 0; i < 10; i++ {
		xs = append(xs, []float64{10, float64(i)})
		ys = append(ys, 1)
	}
	return xs, ys
}

func TestFitForestSameSeedSameForest(t *testing.T) {
	xs, ys := clusterRows()
	opts := ForestOptions{Trees: 5, MaxDepth: 2, MinLeaf: 1, Seed: 7}

	f1, err := FitForest(xs, ys, opts)
	require.NoError(t, err)
	f2, err := FitForest(xs, ys, opts)
	require.NoError(t, err)

	assert.Equal(t, f1, f2)
}

func TestFitForestSeparatesClusters(t *testing.T) {
	xs, ys := clusterRows()

	f, err := FitForest(xs, ys, ForestOptions{Trees: 25, MaxDepth: 2, MinLeaf: 1, Seed: 3})
	require.NoError(t, err)

	assert.Less(t, f.Evaluate([]float64{0, 4}), -0.8)
	assert.Greater(t, f.Evaluate([]float64{10, 4}), 0.8)
}

func TestForestEvaluateStaysInLabelRange(t *testing.T) {
	xs, ys := clusterRows()

	f, err := FitForest(xs, ys, ForestOptions{Trees: 10, MaxDepth: 3, MinLeaf: 1, Seed: 9})
	require.NoError(t, err)

	for x := 0.0; x <= 10; x++ {
		v := f.Evaluate([]float64{x, 5})
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestFitForestDefaultsTreeCount(t *testing.T) {
	xs := [][]float64{{0}, {1}, {2}, {3}}
	ys := []float64{1, 1, 1, 1}

	f, err := FitForest(xs, ys, ForestOptions{MaxDepth: 1, MinLeaf: 1, Seed: 1})
	require.NoError(t, err)

	assert.Len(t, f.Trees, 100)
	assert.InDelta(t, 1, f.Evaluate([]float64{2}), 1e-9)
}

func TestFitForestRejectsBadInput(t *testing.T) {
	_, err := FitForest(nil, nil, ForestOptions{Trees: 1})
	assert.ErrorIs(t, err, ErrNoRows)

	_, err = FitForest([][]float64{{1}}, []float64{1, 2}, ForestOptions{Trees: 1})
	assert.Error(t, err)
}

func TestForestEvaluateEmpty(t *testing.T) {
	f := &Forest{NumFeatures: 2}
	assert.Equal(t, 0.0, f.Evaluate([]float64{1, 2}))
	assert.Equal(t, 2, f.Features())
}
