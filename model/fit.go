package model

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var ErrNoRows = errors.New("model: no rows to fit")

// Options bound tree growth.
type Options struct {
	// MaxDepth is the number of split levels. 0 fits a single leaf.
	MaxDepth int
	// MinLeaf is the smallest row count a leaf may hold. Values below
	// 1 are treated as 1.
	MinLeaf int
}

// Fit grows a regression tree on the feature rows xs and labels ys by
// recursive variance reduction.
func Fit(xs [][]float64, ys []float64, opts Options) (*Tree, error) {
	if len(xs) == 0 {
		return nil, ErrNoRows
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("model: %d feature rows for %d labels", len(xs), len(ys))
	}
	if opts.MinLeaf < 1 {
		opts.MinLeaf = 1
	}
	b := &builder{
		xs:   xs,
		ys:   ys,
		opts: opts,
		tree: &Tree{NumFeatures: len(xs[0]), Depth: opts.MaxDepth},
	}
	rows := make([]int, len(xs))
	for i := range rows {
		rows[i] = i
	}
	b.grow(rows, 0)
	return b.tree, nil
}

type builder struct {
	xs   [][]float64
	ys   []float64
	opts Options
	tree *Tree
}

// grow emits the subtree covering rows and reports where it landed: a
// node index when it split, an output index when it is a leaf. The
// root lands at Nodes[0] or, for a split-free fit, at Outputs[0].
func (b *builder) grow(rows []int, depth int) (int, bool) {
	if depth < b.opts.MaxDepth && len(rows) >= 2*b.opts.MinLeaf {
		if feature, threshold, left, right, ok := b.bestSplit(rows); ok {
			idx := len(b.tree.Nodes)
			b.tree.Nodes = append(b.tree.Nodes, Node{Feature: feature, Threshold: threshold})
			li, ll := b.grow(left, depth+1)
			ri, rl := b.grow(right, depth+1)
			b.tree.Nodes[idx].Left = li
			b.tree.Nodes[idx].LeftLeaf = ll
			b.tree.Nodes[idx].Right = ri
			b.tree.Nodes[idx].RightLeaf = rl
			return idx, false
		}
	}
	idx := len(b.tree.Outputs)
	b.tree.Outputs = append(b.tree.Outputs, stat.Mean(b.gatherLabels(rows), nil))
	return idx, true
}

func (b *builder) gatherLabels(rows []int) []float64 {
	vals := make([]float64, len(rows))
	for i, r := range rows {
		vals[i] = b.ys[r]
	}
	return vals
}

// Splits with a squared-error reduction at or below minGain are noise.
const minGain = 1e-12

// bestSplit sweeps every feature for the threshold with the largest
// squared-error reduction, honoring MinLeaf on both sides. Thresholds
// sit midway between distinct neighboring values.
func (b *builder) bestSplit(rows []int) (feature int, threshold float64, left, right []int, ok bool) {
	var total, totalSq float64
	for _, r := range rows {
		y := b.ys[r]
		total += y
		totalSq += y * y
	}
	n := float64(len(rows))
	parentErr := totalSq - total*total/n

	order := make([]int, len(rows))
	bestGain := minGain
	var bestCut int
	var bestOrder []int
	for f := 0; f < b.tree.NumFeatures; f++ {
		copy(order, rows)
		sort.Slice(order, func(i, j int) bool {
			return b.xs[order[i]][f] < b.xs[order[j]][f]
		})
		var sum, sumSq float64
		for i := 0; i < len(order)-1; i++ {
			y := b.ys[order[i]]
			sum += y
			sumSq += y * y
			if b.xs[order[i]][f] == b.xs[order[i+1]][f] {
				continue
			}
			if i+1 < b.opts.MinLeaf || len(order)-i-1 < b.opts.MinLeaf {
				continue
			}
			nl := float64(i + 1)
			nr := n - nl
			leftErr := sumSq - sum*sum/nl
			rightErr := (totalSq - sumSq) - (total-sum)*(total-sum)/nr
			gain := parentErr - leftErr - rightErr
			if gain > bestGain {
				bestGain = gain
				feature = f
				threshold = (b.xs[order[i]][f] + b.xs[order[i+1]][f]) / 2
				bestCut = i + 1
				bestOrder = append(bestOrder[:0], order...)
			}
		}
	}
	if bestOrder == nil {
		return 0, 0, nil, nil, false
	}
	left = append([]int(nil), bestOrder[:bestCut]...)
	right = append([]int(nil), bestOrder[bestCut:]...)
	return feature, threshold, left, right, true
}
