package policies

import (
	"time"

	erand "golang.org/x/exp/rand"

	"github.com/zeu5/pazaak-learn/core"
)

// Random explores: a uniformly random stand bit, and half the time a
// uniformly random side card. Decisions are always valid for the hand.
type Random struct {
	rand *erand.Rand
}

var _ core.Policy = &Random{}

func NewRandom() *Random {
	return NewRandomSeeded(uint64(time.Now().UnixNano()))
}

func NewRandomSeeded(seed uint64) *Random {
	return &Random{
		rand: erand.New(erand.NewSource(seed)),
	}
}

func (r *Random) Decide(hand []int, selfScore, oppScore int, oppStands bool) core.Decision {
	d := core.Decision{Stand: r.rand.Intn(2) == 0}
	if len(hand) > 0 && r.rand.Intn(2) == 0 {
		d.PlayCard = true
		d.CardIndex = r.rand.Intn(len(hand))
	}
	return d
}
