// Package game implements the Pazaak table: a shared main deck, per-player
// side cards, and set-by-set match play driven by pluggable decision
// policies.
package game

import (
	erand "golang.org/x/exp/rand"
)

const (
	// ScoreGoal is the round target. A table score above it busts.
	ScoreGoal = 20
	// StandThreshold is the house rule: draw to 16, stand on 17.
	StandThreshold = 16
	// WinningSets is the number of set wins that takes the match.
	WinningSets = 3
	// HandSize is the number of side cards dealt to each player per round.
	HandSize = 4
	// TableLimit caps a player's table. Filling it without busting wins the
	// set outright.
	TableLimit = 9

	maxMainCard = 10
	deckCopies  = 4
	maxSideCard = 6
)

// Card is a single card value. Main deck cards are 1..10; side cards are
// signed, -6..+6 excluding zero.
type Card int8

// Deck is the shared main deck, drawn from the top.
type Deck struct {
	cards []Card
	rand  *erand.Rand
}

// NewDeck builds and shuffles a full main deck: four copies of each value
// 1..10.
func NewDeck(rng *erand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, maxMainCard*deckCopies),
		rand:  rng,
	}
	d.refill()
	return d
}

func (d *Deck) refill() {
	d.cards = d.cards[:0]
	for v := 1; v <= maxMainCard; v++ {
		for c := 0; c < deckCopies; c++ {
			d.cards = append(d.cards, Card(v))
		}
	}
	d.rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card, reshuffling a fresh deck when
// empty.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.refill()
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Len is the number of cards left before the next reshuffle.
func (d *Deck) Len() int { return len(d.cards) }

// dealSideHand draws HandSize side cards, each uniform over the signed
// side-card values.
func dealSideHand(rng *erand.Rand) []Card {
	hand := make([]Card, HandSize)
	for i := range hand {
		v := Card(rng.Intn(maxSideCard) + 1)
		if rng.Intn(2) == 0 {
			v = -v
		}
		hand[i] = v
	}
	return hand
}
