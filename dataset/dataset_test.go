package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRow(selfScore int) Row {
	return Row{SelfScore: selfScore, OppScore: 5}
}

func labels(t *testing.T, d *Dataset) []float64 {
	t.Helper()
	out := make([]float64, 0, d.Len())
	for _, r := range d.Rows() {
		v, ok := r.Label.Value()
		require.True(t, ok, "label still pending")
		out = append(out, v)
	}
	return out
}

func TestResolveFillsAndMarksFinal(t *testing.T) {
	d := New()
	d.Append(pendingRow(4))
	d.Append(pendingRow(9))
	d.Append(pendingRow(15))

	n := d.Resolve(0.3, 1)

	assert.Equal(t, 3, n)
	assert.Equal(t, 0, d.Unresolved())
	assert.Equal(t, []float64{0.3, 0.3, 1}, labels(t, d))
}

func TestResolveSingleRowGetsFinalOnly(t *testing.T) {
	d := New()
	d.Append(pendingRow(7))

	d.Resolve(-0.3, -1)

	assert.Equal(t, []float64{-1}, labels(t, d))
}

func TestResolveDraw(t *testing.T) {
	d := New()
	d.Append(pendingRow(3))
	d.Append(pendingRow(8))

	d.Resolve(0, 0)

	assert.Equal(t, []float64{0, 0}, labels(t, d))
}

func TestResolveScopesToPendingRows(t *testing.T) {
	d := New()
	d.Append(pendingRow(4))
	d.Append(pendingRow(9))
	d.Resolve(0.3, 1)

	d.Append(pendingRow(2))
	d.Append(pendingRow(6))
	d.Append(pendingRow(11))
	n := d.Resolve(-0.3, -1)

	assert.Equal(t, 3, n)
	assert.Equal(t, []float64{0.3, 1, -0.3, -0.3, -1}, labels(t, d))
}

func TestResolveNothingPending(t *testing.T) {
	d := New()
	d.Append(pendingRow(4))
	d.Resolve(0.3, 1)

	n := d.Resolve(-0.3, -1)

	assert.Equal(t, 0, n)
	assert.Equal(t, []float64{1}, labels(t, d), "earlier final label must survive an empty round")
}

func TestUnresolvedCount(t *testing.T) {
	d := New()
	assert.Equal(t, 0, d.Unresolved())

	d.Append(pendingRow(1))
	d.Append(Row{SelfScore: 2, Label: Resolved(0.5)})
	d.Append(pendingRow(3))

	assert.Equal(t, 2, d.Unresolved())
}

func TestRowsReturnsCopy(t *testing.T) {
	d := New()
	d.Append(pendingRow(4))

	rows := d.Rows()
	rows[0].SelfScore = 99

	assert.Equal(t, 4, d.Row(0).SelfScore)
}
