package core

// Decision is a policy's answer for one turn: optionally play a single side
// card from the hand, then either stand or keep drawing.
type Decision struct {
	PlayCard  bool
	CardIndex int
	Stand     bool
}

// Policy picks a turn decision from one seat's view of the table. hand holds
// the values of the side cards still held.
type Policy interface {
	Decide(hand []int, selfScore, oppScore int, oppStands bool) Decision
}

// PolicyFunc adapts a plain function to a Policy.
type PolicyFunc func(hand []int, selfScore, oppScore int, oppStands bool) Decision

var _ Policy = PolicyFunc(nil)

func (f PolicyFunc) Decide(hand []int, selfScore, oppScore int, oppStands bool) Decision {
	return f(hand, selfScore, oppScore, oppStands)
}
