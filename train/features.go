// Package train turns recorded match decisions into fitted models: it
// engineers feature vectors from dataset rows, splits train from test
// deterministically, and drives tree or forest fitting.
package train

import "github.com/zeu5/pazaak-learn/dataset"

// FeatureNames label the columns of DecisionFeatures, in order.
var FeatureNames = []string{
	"self_score",
	"opp_stands",
	"result_stand",
	"score_difference",
	"score_if_card_played",
}

// DecisionFeatures builds the feature vector for one candidate
// decision: the board scores, whether the opponent stands, the value
// of the side card the decision would play (0 for none), and whether
// it stands.
func DecisionFeatures(selfScore, oppScore int, oppStands bool, playedValue int, stood bool) []float64 {
	return []float64{
		float64(selfScore),
		boolFeature(oppStands),
		boolFeature(stood),
		float64(selfScore - oppScore),
		float64(selfScore + playedValue),
	}
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// RowFeatures builds the feature vector and label for a recorded row.
// The last return reports false when the label is still pending.
func RowFeatures(r dataset.Row) ([]float64, float64, bool) {
	x := DecisionFeatures(r.SelfScore, r.OppScore, r.OppStands, r.PlayedCardValue, r.Stood)
	y, ok := r.Label.Value()
	return x, y, ok
}

// Matrix builds the design matrix and label vector for d, skipping
// rows whose label is still pending.
func Matrix(d *dataset.Dataset) ([][]float64, []float64) {
	xs := make([][]float64, 0, d.Len())
	ys := make([]float64, 0, d.Len())
	for _, r := range d.Rows() {
		x, y, ok := RowFeatures(r)
		if !ok {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}
