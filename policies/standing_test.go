package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeu5/pazaak-learn/core"
	"github.com/zeu5/pazaak-learn/game"
)

func TestStandingDrawsBelowThreshold(t *testing.T) {
	d := NewStanding().Decide(nil, game.StandThreshold, 5, false)
	assert.Equal(t, core.Decision{}, d)
}

func TestStandingStandsAboveThreshold(t *testing.T) {
	d := NewStanding().Decide(nil, game.StandThreshold+1, 5, false)
	assert.True(t, d.Stand)
	assert.False(t, d.PlayCard)
}

func TestStandingPlaysExactGoal(t *testing.T) {
	d := NewStanding().Decide([]int{-2, 3}, 17, 5, false)
	assert.Equal(t, core.Decision{PlayCard: true, CardIndex: 1, Stand: true}, d)
}

func TestStandingRecoversBust(t *testing.T) {
	d := NewStanding().Decide([]int{-4, 2}, 23, 5, false)
	assert.True(t, d.PlayCard)
	assert.Equal(t, 0, d.CardIndex)
	assert.True(t, d.Stand, "rescued score 19 is above the threshold")
}

func TestStandingRecoveryPrefersClosestToGoal(t *testing.T) {
	d := NewStanding().Decide([]int{-6, -3}, 23, 5, false)
	assert.True(t, d.PlayCard)
	assert.Equal(t, 1, d.CardIndex, "23-3=20 beats 23-6=17")
}

func TestStandingUnrecoverableBust(t *testing.T) {
	d := NewStanding().Decide([]int{2}, 23, 5, false)
	assert.Equal(t, core.Decision{}, d)
}

func TestStandingBeatsStandingOpponent(t *testing.T) {
	d := NewStanding().Decide([]int{6, 4}, 15, 18, true)
	assert.True(t, d.PlayCard)
	assert.Equal(t, 1, d.CardIndex, "15+4=19 beats 18, 15+6=21 busts")
	assert.True(t, d.Stand)
}

func TestStandingAheadOfStandingOpponent(t *testing.T) {
	d := NewStanding().Decide([]int{2}, 19, 18, true)
	assert.False(t, d.PlayCard, "already winning, no card needed")
	assert.True(t, d.Stand)
}

func TestStandingDrawsOnTieBelowGoal(t *testing.T) {
	d := NewStanding().Decide(nil, 18, 18, true)
	assert.False(t, d.Stand, "a tie can still be beaten by drawing")
}

func TestStandingStandsOnTieAtGoal(t *testing.T) {
	d := NewStanding().Decide(nil, game.ScoreGoal, game.ScoreGoal, true)
	assert.True(t, d.Stand)
}

func TestStandingStandsWhenOpponentBusted(t *testing.T) {
	d := NewStanding().Decide(nil, 5, 22, true)
	assert.True(t, d.Stand)
}
