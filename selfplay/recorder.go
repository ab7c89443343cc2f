// Package selfplay runs trainee-vs-house rounds, records every trainee
// decision, and persists the labeled rows as the training dataset.
package selfplay

import (
	"github.com/zeu5/pazaak-learn/core"
	"github.com/zeu5/pazaak-learn/dataset"
)

// Recorder wraps a policy and appends one pending-label row per
// decision it relays. The decision itself passes through unchanged.
type Recorder struct {
	policy core.Policy
	ds     *dataset.Dataset
}

var _ core.Policy = &Recorder{}

func NewRecorder(policy core.Policy, ds *dataset.Dataset) *Recorder {
	return &Recorder{policy: policy, ds: ds}
}

func (r *Recorder) Decide(hand []int, selfScore, oppScore int, oppStands bool) core.Decision {
	d := r.policy.Decide(hand, selfScore, oppScore, oppStands)
	played := 0
	if d.PlayCard && d.CardIndex >= 0 && d.CardIndex < len(hand) {
		played = hand[d.CardIndex]
	}
	r.ds.Append(dataset.Row{
		SelfScore:       selfScore,
		OppScore:        oppScore,
		OppStands:       oppStands,
		PlayedCardValue: played,
		Stood:           d.Stand,
	})
	return d
}
