package train

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeu5/pazaak-learn/dataset"
)

func TestDecisionFeatures(t *testing.T) {
	x := DecisionFeatures(12, 9, true, 5, false)
	assert.Equal(t, []float64{12, 1, 0, 3, 17}, x)

	x = DecisionFeatures(18, 20, false, 0, true)
	assert.Equal(t, []float64{18, 0, 1, -2, 18}, x)
}

func TestFeatureNamesMatchVector(t *testing.T) {
	assert.Len(t, DecisionFeatures(0, 0, false, 0, false), len(FeatureNames))
}

func TestRowFeatures(t *testing.T) {
	r := dataset.Row{
		SelfScore:       14,
		OppScore:        16,
		OppStands:       true,
		PlayedCardValue: -2,
		Stood:           true,
		Label:           dataset.Resolved(0.3),
	}

	x, y, ok := RowFeatures(r)
	require.True(t, ok)
	assert.Equal(t, []float64{14, 1, 1, -2, 12}, x)
	assert.InDelta(t, 0.3, y, 1e-9)
}

func TestRowFeaturesPendingLabel(t *testing.T) {
	_, _, ok := RowFeatures(dataset.Row{SelfScore: 5})
	assert.False(t, ok)
}

func TestMatrixSkipsPendingRows(t *testing.T) {
	ds := dataset.New()
	ds.Append(dataset.Row{SelfScore: 10, Label: dataset.Resolved(1)})
	ds.Append(dataset.Row{SelfScore: 11})
	ds.Append(dataset.Row{SelfScore: 12, Label: dataset.Resolved(-1)})

	xs, ys := Matrix(ds)
	require.Len(t, xs, 2)
	assert.Equal(t, []float64{1, -1}, ys)
	assert.Equal(t, 10.0, xs[0][0])
	assert.Equal(t, 12.0, xs[1][0])
}
