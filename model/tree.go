// Package model implements bounded-depth regression trees and bootstrap
// forests over engineered feature vectors, with a tagged JSON artifact
// format.
package model

// Model scores an engineered feature vector.
type Model interface {
	Evaluate(x []float64) float64
	// Features is the expected feature vector length.
	Features() int
}

// Node is one internal split. Left and Right index into Nodes, or into
// Outputs when the matching leaf flag is set.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	LeftLeaf  bool    `json:"left_leaf"`
	Right     int     `json:"right"`
	RightLeaf bool    `json:"right_leaf"`
}

// Tree is a regression tree in flat form: internal nodes in Nodes, leaf
// values in Outputs. A tree with no nodes is a single leaf.
type Tree struct {
	Nodes       []Node    `json:"nodes"`
	Outputs     []float64 `json:"outputs"`
	NumFeatures int       `json:"num_features"`
	Depth       int       `json:"depth"`
}

var _ Model = &Tree{}

// Evaluate routes x through the splits to a leaf value.
func (t *Tree) Evaluate(x []float64) float64 {
	if len(t.Nodes) == 0 {
		if len(t.Outputs) == 0 {
			return 0
		}
		return t.Outputs[0]
	}
	n := t.Nodes[0]
	for {
		if x[n.Feature] <= n.Threshold {
			if n.LeftLeaf {
				return t.Outputs[n.Left]
			}
			n = t.Nodes[n.Left]
		} else {
			if n.RightLeaf {
				return t.Outputs[n.Right]
			}
			n = t.Nodes[n.Right]
		}
	}
}

func (t *Tree) Features() int {
	return t.NumFeatures
}
