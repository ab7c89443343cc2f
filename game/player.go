package game

import (
	"errors"
	"fmt"

	erand "golang.org/x/exp/rand"

	"github.com/zeu5/pazaak-learn/core"
)

var (
	ErrNoSideCards  = errors.New("no side cards left to play")
	ErrBadCardIndex = errors.New("side card index out of range")
)

// Player is one seat at the table: the policy that makes its decisions,
// per-round table state, and the sets it has taken this match.
type Player struct {
	Name   string
	Policy core.Policy

	hand  []Card
	table []Card
	score int
	stood bool

	setsWon int
}

func NewPlayer(name string, policy core.Policy) *Player {
	return &Player{Name: name, Policy: policy}
}

// Score is the current table score.
func (p *Player) Score() int { return p.score }

// Standing reports whether the player has stood this round.
func (p *Player) Standing() bool { return p.stood }

// SetsWon is the number of sets the player has taken this match.
func (p *Player) SetsWon() int { return p.setsWon }

// TableSize is the number of cards on the player's table.
func (p *Player) TableSize() int { return len(p.table) }

// Hand returns the side-card values still in hand.
func (p *Player) Hand() []int {
	vals := make([]int, len(p.hand))
	for i, c := range p.hand {
		vals[i] = int(c)
	}
	return vals
}

func (p *Player) resetRound(rng *erand.Rand) {
	p.hand = dealSideHand(rng)
	p.table = p.table[:0]
	p.score = 0
	p.stood = false
}

func (p *Player) placeCard(c Card) {
	p.table = append(p.table, c)
	p.score += int(c)
}

// playFromHand moves hand card i onto the table.
func (p *Player) playFromHand(i int) (Card, error) {
	if len(p.hand) == 0 {
		return 0, ErrNoSideCards
	}
	if i < 0 || i >= len(p.hand) {
		return 0, fmt.Errorf("%w: %d of %d", ErrBadCardIndex, i, len(p.hand))
	}
	c := p.hand[i]
	p.hand = append(p.hand[:i], p.hand[i+1:]...)
	p.placeCard(c)
	return c, nil
}
