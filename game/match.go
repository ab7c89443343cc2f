package game

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	erand "golang.org/x/exp/rand"
)

var (
	ErrUnknownPlayer = errors.New("player does not belong to this match")
	ErrRoundStalled  = errors.New("round did not terminate")
)

// maxRoundTurns bounds a single set. Scores only climb once the side hands
// run out, so a set that lasts this long means a broken policy or deck.
const maxRoundTurns = 1000

// Match holds two players, the shared deck, and the narration channel for
// interactive play.
type Match struct {
	players   [2]*Player
	deck      *Deck
	rand      *erand.Rand
	out       io.Writer
	turnDelay time.Duration
}

type MatchOption func(*Match)

// WithOutput redirects the turn-by-turn narration. Bulk self-play passes
// io.Discard.
func WithOutput(w io.Writer) MatchOption {
	return func(m *Match) { m.out = w }
}

// WithTurnDelay paces turns for human play.
func WithTurnDelay(d time.Duration) MatchOption {
	return func(m *Match) { m.turnDelay = d }
}

// WithRand fixes the match RNG for reproducible runs.
func WithRand(rng *erand.Rand) MatchOption {
	return func(m *Match) { m.rand = rng }
}

// NewMatch seats two players, zeroes their set counters and deals the first
// round.
func NewMatch(first, second *Player, opts ...MatchOption) *Match {
	m := &Match{
		players: [2]*Player{first, second},
		out:     os.Stdout,
		rand:    erand.New(erand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, p := range m.players {
		p.setsWon = 0
	}
	m.PrepareNextRound()
	return m
}

// Players returns the two seats in the order they were passed to NewMatch.
func (m *Match) Players() (*Player, *Player) {
	return m.players[0], m.players[1]
}

// PrepareNextRound resets per-round state: fresh side hands, cleared tables
// and scores, a reshuffled deck. Set counters carry over.
func (m *Match) PrepareNextRound() {
	for _, p := range m.players {
		p.resetRound(m.rand)
	}
	m.deck = NewDeck(m.rand)
}

// Winner reports the player who has taken WinningSets sets, if any.
func (m *Match) Winner() (*Player, bool) {
	for _, p := range m.players {
		if p.setsWon >= WinningSets {
			return p, true
		}
	}
	return nil, false
}

// PlayRound plays one set with first acting first. Both players must belong
// to the match; callers randomize the seating order between rounds.
//
// Each turn the active player is dealt a main-deck card, then its policy
// decides whether to play a side card and whether to stand. Busting over
// ScoreGoal loses the set on the spot, filling the table wins it, and once
// both players stand the higher score takes it. Equal standing scores void
// the set.
func (m *Match) PlayRound(first, second *Player) (Outcome, error) {
	if !m.hasSeat(first) || !m.hasSeat(second) || first == second {
		return OutcomeDraw, ErrUnknownPlayer
	}
	seats := [2]*Player{first, second}
	for turn := 0; turn < maxRoundTurns; turn++ {
		active, other := seats[turn%2], seats[1-turn%2]
		if active.stood {
			if other.stood {
				return m.standoff(first, second), nil
			}
			continue
		}

		dealt := m.deck.Draw()
		active.placeCard(dealt)
		m.narratef("%s draws %d, table %d\n", active.Name, dealt, active.score)

		dec := active.Policy.Decide(active.Hand(), active.score, other.score, other.stood)
		if dec.PlayCard {
			played, err := active.playFromHand(dec.CardIndex)
			if err != nil {
				return OutcomeDraw, fmt.Errorf("%s: %w", active.Name, err)
			}
			m.narratef("%s plays %+d from hand, table %d\n", active.Name, played, active.score)
		}
		if dec.Stand {
			active.stood = true
			m.narratef("%s stands at %d\n", active.Name, active.score)
		}

		if active.score > ScoreGoal {
			m.narratef("%s busts at %d\n", active.Name, active.score)
			return m.wonBy(other, first), nil
		}
		if len(active.table) >= TableLimit {
			m.narratef("%s fills the table\n", active.Name)
			return m.wonBy(active, first), nil
		}
		if active.stood && other.stood {
			return m.standoff(first, second), nil
		}
		m.wait()
	}
	return OutcomeDraw, ErrRoundStalled
}

// standoff scores a set where both players stood.
func (m *Match) standoff(first, second *Player) Outcome {
	switch {
	case first.score == second.score:
		m.narratef("standoff at %d, the set is void\n", first.score)
		return OutcomeDraw
	case first.score > second.score:
		return m.wonBy(first, first)
	default:
		return m.wonBy(second, first)
	}
}

func (m *Match) wonBy(winner, first *Player) Outcome {
	winner.setsWon++
	m.narratef("%s takes the set, %d-%d\n", winner.Name, m.players[0].setsWon, m.players[1].setsWon)
	if winner == first {
		return OutcomeFirstWins
	}
	return OutcomeSecondWins
}

func (m *Match) hasSeat(p *Player) bool {
	return p == m.players[0] || p == m.players[1]
}

func (m *Match) narratef(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Match) wait() {
	if m.turnDelay > 0 {
		time.Sleep(m.turnDelay)
	}
}
