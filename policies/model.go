package policies

import (
	"fmt"
	"math"

	"github.com/zeu5/pazaak-learn/core"
	"github.com/zeu5/pazaak-learn/model"
	"github.com/zeu5/pazaak-learn/train"
)

// ModelPolicy plays the decision whose engineered features a trained model
// scores highest, enumerating stand against every playable side card.
type ModelPolicy struct {
	model model.Model
}

var _ core.Policy = &ModelPolicy{}

func NewModelPolicy(m model.Model) *ModelPolicy {
	return &ModelPolicy{model: m}
}

// LoadModelPolicy reads a serialized model artifact.
func LoadModelPolicy(path string) (*ModelPolicy, error) {
	m, _, err := model.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if n := m.Features(); n != len(train.FeatureNames) {
		return nil, fmt.Errorf("model expects %d features, decisions have %d", n, len(train.FeatureNames))
	}
	return NewModelPolicy(m), nil
}

func (p *ModelPolicy) Decide(hand []int, selfScore, oppScore int, oppStands bool) core.Decision {
	var best core.Decision
	bestScore := math.Inf(-1)
	consider := func(d core.Decision, played int) {
		x := train.DecisionFeatures(selfScore, oppScore, oppStands, played, d.Stand)
		if s := p.model.Evaluate(x); s > bestScore {
			best, bestScore = d, s
		}
	}
	for _, stand := range []bool{false, true} {
		consider(core.Decision{Stand: stand}, 0)
		for i, v := range hand {
			consider(core.Decision{PlayCard: true, CardIndex: i, Stand: stand}, v)
		}
	}
	return best
}
