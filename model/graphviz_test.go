package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGraphvizTree(t *testing.T) {
	tr := fittedTree(t)

	var buf bytes.Buffer
	require.NoError(t, tr.WriteGraphviz(&buf, []string{"score"}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph Tree {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "node [shape=box];")
	assert.Contains(t, out, `n0 [label="score <= 1.500"];`)
	assert.Equal(t, len(tr.Outputs), strings.Count(out, "value ="))
	assert.Equal(t, 2*len(tr.Nodes), strings.Count(out, "->"))
}

func TestWriteGraphvizLeafOnly(t *testing.T) {
	tr, err := Fit([][]float64{{1}, {2}}, []float64{0.5, 0.5}, Options{MaxDepth: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tr.WriteGraphviz(&buf, nil))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "value ="))
	assert.Contains(t, out, "0.5000")
	assert.NotContains(t, out, "->")
}

func TestWriteGraphvizFallbackFeatureName(t *testing.T) {
	tr := &Tree{
		Nodes:       []Node{{Feature: 3, Threshold: 2, Left: 0, LeftLeaf: true, Right: 1, RightLeaf: true}},
		Outputs:     []float64{0, 1},
		NumFeatures: 4,
	}

	var buf bytes.Buffer
	require.NoError(t, tr.WriteGraphviz(&buf, nil))
	assert.Contains(t, buf.String(), `"f3 <= 2.000"`)
}
