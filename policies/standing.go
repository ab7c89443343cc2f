// Package policies holds the named decision policies the trainee and house
// can play: the standing heuristic, random exploration, the 90/10 mixture
// and a model-backed variant.
package policies

import (
	"github.com/zeu5/pazaak-learn/core"
	"github.com/zeu5/pazaak-learn/game"
)

// Standing plays the house strategy: draw to the stand threshold and stand
// above it, spending side cards only when one reaches the goal exactly,
// recovers a bust, or beats a standing opponent.
type Standing struct{}

var _ core.Policy = Standing{}

func NewStanding() Standing {
	return Standing{}
}

func (Standing) Decide(hand []int, selfScore, oppScore int, oppStands bool) core.Decision {
	// A bust is recovered with the side card landing closest to the goal.
	if selfScore > game.ScoreGoal {
		if i, ok := bestRecovery(hand, selfScore); ok {
			rescued := selfScore + hand[i]
			return core.Decision{PlayCard: true, CardIndex: i, Stand: shouldStand(rescued, oppScore, oppStands)}
		}
		return core.Decision{}
	}
	// Reach the goal exactly when a side card can.
	if i, ok := exactGoal(hand, selfScore); ok {
		return core.Decision{PlayCard: true, CardIndex: i, Stand: true}
	}
	// Against a standing opponent a side card that passes their score takes
	// the set on the spot.
	if oppStands && oppScore <= game.ScoreGoal && selfScore <= oppScore {
		if i, ok := bestBeat(hand, selfScore, oppScore); ok {
			return core.Decision{PlayCard: true, CardIndex: i, Stand: true}
		}
	}
	return core.Decision{Stand: shouldStand(selfScore, oppScore, oppStands)}
}

// shouldStand: against a standing opponent, stand only on a winning score
// or a dead tie at the goal; otherwise draw to the threshold.
func shouldStand(score, oppScore int, oppStands bool) bool {
	if oppStands {
		if oppScore > game.ScoreGoal {
			return true
		}
		if score > oppScore {
			return true
		}
		return score == oppScore && score == game.ScoreGoal
	}
	return score > game.StandThreshold
}

// bestRecovery picks the side card whose rescued score lands highest at or
// under the goal.
func bestRecovery(hand []int, score int) (int, bool) {
	best, bestScore := -1, -1
	for i, v := range hand {
		if s := score + v; s <= game.ScoreGoal && s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, best >= 0
}

// exactGoal finds a side card reaching the goal exactly.
func exactGoal(hand []int, score int) (int, bool) {
	for i, v := range hand {
		if score+v == game.ScoreGoal {
			return i, true
		}
	}
	return -1, false
}

// bestBeat finds the side card that beats a standing opponent by the
// smallest margin while staying at or under the goal.
func bestBeat(hand []int, score, oppScore int) (int, bool) {
	best, bestScore := -1, game.ScoreGoal+1
	for i, v := range hand {
		if s := score + v; s > oppScore && s <= game.ScoreGoal && s < bestScore {
			best, bestScore = i, s
		}
	}
	return best, best >= 0
}
