package selfplay

import (
	"github.com/zeu5/pazaak-learn/core"
	"github.com/zeu5/pazaak-learn/dataset"
)

// Decisions in a decided round earn a small step reward toward the
// outcome, and the round's final decision earns the full one.
const (
	rewardStep  = 0.3
	rewardFinal = 1.0
)

// ShapeRewards labels every pending row in ds with the trainee's round
// result and reports how many rows it resolved.
func ShapeRewards(ds *dataset.Dataset, result core.Result) int {
	switch result {
	case core.ResultWin:
		return ds.Resolve(rewardStep, rewardFinal)
	case core.ResultLoss:
		return ds.Resolve(-rewardStep, -rewardFinal)
	default:
		return ds.Resolve(0, 0)
	}
}
