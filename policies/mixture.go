package policies

import (
	"fmt"
	"time"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/zeu5/pazaak-learn/core"
)

// MixRate is the probability the mixture plays the primary policy; the rest
// of the decisions explore.
const MixRate = 0.9

// Mixture picks between a primary and an exploration policy per decision.
// The default trainee policy mixes the standing heuristic with random
// exploration at MixRate.
type Mixture struct {
	primary core.Policy
	explore core.Policy
	weights []float64
	rand    erand.Source
}

var _ core.Policy = &Mixture{}

func NewMixture() *Mixture {
	return NewMixtureSeeded(uint64(time.Now().UnixMilli()))
}

func NewMixtureSeeded(seed uint64) *Mixture {
	return newMixture(NewStanding(), NewRandomSeeded(seed+1), seed)
}

func newMixture(primary, explore core.Policy, seed uint64) *Mixture {
	return &Mixture{
		primary: primary,
		explore: explore,
		weights: []float64{MixRate, 1 - MixRate},
		rand:    erand.NewSource(seed),
	}
}

func (m *Mixture) Decide(hand []int, selfScore, oppScore int, oppStands bool) core.Decision {
	i, ok := sampleuv.NewWeighted(m.weights, m.rand).Take()
	if !ok || i == 0 {
		return m.primary.Decide(hand, selfScore, oppScore, oppStands)
	}
	return m.explore.Decide(hand, selfScore, oppScore, oppStands)
}

// Kind names a selectable policy variant.
type Kind string

const (
	KindMixed    Kind = "mixed"
	KindStanding Kind = "standing"
	KindRandom   Kind = "random"
)

// FromKind builds the named variant. Seed 0 draws from the clock for the
// variants that explore.
func FromKind(kind Kind, seed uint64) (core.Policy, error) {
	switch kind {
	case KindMixed, "":
		if seed == 0 {
			return NewMixture(), nil
		}
		return NewMixtureSeeded(seed), nil
	case KindStanding:
		return NewStanding(), nil
	case KindRandom:
		if seed == 0 {
			return NewRandom(), nil
		}
		return NewRandomSeeded(seed), nil
	}
	return nil, fmt.Errorf("unknown policy %q", kind)
}
