package train

import (
	erand "golang.org/x/exp/rand"
)

const (
	splitSeed    = 42
	testFraction = 0.25
)

// Split shuffles row indices 0..n-1 with a fixed seed and cuts them
// into train and held-out sets, so repeated runs on the same dataset
// score against the same rows.
func Split(n int) (trainIdx, testIdx []int) {
	rng := erand.New(erand.NewSource(splitSeed))
	perm := rng.Perm(n)
	cut := n - int(float64(n)*testFraction)
	return perm[:cut], perm[cut:]
}

func gather(xs [][]float64, ys []float64, idx []int) ([][]float64, []float64) {
	gx := make([][]float64, len(idx))
	gy := make([]float64, len(idx))
	for i, j := range idx {
		gx[i] = xs[j]
		gy[i] = ys[j]
	}
	return gx, gy
}
