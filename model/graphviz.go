package model

import (
	"bufio"
	"fmt"
	"io"
)

// WriteGraphviz renders the tree in dot form, one box per split and
// one per leaf. Features past the end of featureNames are labeled by
// index.
func (t *Tree) WriteGraphviz(w io.Writer, featureNames []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph Tree {")
	fmt.Fprintln(bw, "  node [shape=box];")
	for i, n := range t.Nodes {
		name := fmt.Sprintf("f%d", n.Feature)
		if n.Feature < len(featureNames) {
			name = featureNames[n.Feature]
		}
		fmt.Fprintf(bw, "  n%d [label=\"%s <= %.3f\"];\n", i, name, n.Threshold)
	}
	for i, v := range t.Outputs {
		fmt.Fprintf(bw, "  l%d [label=\"value = %.4f\"];\n", i, v)
	}
	for i, n := range t.Nodes {
		fmt.Fprintf(bw, "  n%d -> %s;\n", i, childRef(n.Left, n.LeftLeaf))
		fmt.Fprintf(bw, "  n%d -> %s;\n", i, childRef(n.Right, n.RightLeaf))
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func childRef(idx int, leaf bool) string {
	if leaf {
		return fmt.Sprintf("l%d", idx)
	}
	return fmt.Sprintf("n%d", idx)
}
