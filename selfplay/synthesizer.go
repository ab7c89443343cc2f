package selfplay

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	erand "golang.org/x/exp/rand"

	"github.com/zeu5/pazaak-learn/core"
	"github.com/zeu5/pazaak-learn/dataset"
	"github.com/zeu5/pazaak-learn/game"
	"github.com/zeu5/pazaak-learn/policies"
)

// Config drives one synthesis run.
type Config struct {
	// Rounds is the number of rounds to record.
	Rounds int
	// DatasetPath receives the labeled rows as CSV.
	DatasetPath string
	// Policy makes the trainee's decisions. Nil selects the default
	// heuristic-with-exploration mixture.
	Policy core.Policy
	// Seed fixes deck shuffles, seating, and the default policy.
	// 0 seeds from the clock.
	Seed uint64
	// Progress receives the running counter line.
	Progress io.Writer
	Logger   zerolog.Logger
}

// Stats summarizes a synthesis run from the trainee's side.
type Stats struct {
	RunID           string        `json:"run_id"`
	Rounds          int           `json:"rounds"`
	Wins            int           `json:"wins"`
	Draws           int           `json:"draws"`
	Losses          int           `json:"losses"`
	Decisions       int           `json:"decisions"`
	Elapsed         time.Duration `json:"elapsed_ns"`
	RoundsPerSecond float64       `json:"rounds_per_second"`
}

// Synthesizer plays trainee-vs-house rounds and writes the labeled
// dataset.
type Synthesizer struct {
	config Config
	rand   *erand.Rand
}

func NewSynthesizer(config Config) *Synthesizer {
	if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixMilli())
	}
	if config.Progress == nil {
		config.Progress = io.Discard
	}
	return &Synthesizer{
		config: config,
		rand:   erand.New(erand.NewSource(config.Seed)),
	}
}

// Run plays the configured number of rounds and persists the dataset.
// Nothing is written when ctx is cancelled or a round fails.
func (s *Synthesizer) Run(ctx context.Context) (Stats, error) {
	policy := s.config.Policy
	if policy == nil {
		policy = policies.NewMixtureSeeded(s.rand.Uint64())
	}

	ds := dataset.New()
	trainee := game.NewPlayer("trainee", NewRecorder(policy, ds))
	house := game.NewPlayer("house", policies.NewStanding())
	match := game.NewMatch(trainee, house,
		game.WithOutput(io.Discard),
		game.WithRand(erand.New(erand.NewSource(s.rand.Uint64()))),
	)

	stats := Stats{RunID: uuid.New().String(), Rounds: s.config.Rounds}
	start := time.Now()
	for r := 0; r < s.config.Rounds; r++ {
		fmt.Fprintf(s.config.Progress, "Round: %d/%d, Won: %d, Draws: %d, Lost: %d\n",
			r+1, s.config.Rounds, stats.Wins, stats.Draws, stats.Losses)
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		// alternate seats at random so the trainee sees both
		first, second := trainee, house
		if s.rand.Intn(2) == 0 {
			first, second = second, first
		}
		outcome, err := match.PlayRound(first, second)
		if err != nil {
			return stats, err
		}

		result := traineeResult(outcome, first == trainee)
		ShapeRewards(ds, result)
		switch result {
		case core.ResultWin:
			stats.Wins++
		case core.ResultLoss:
			stats.Losses++
		default:
			stats.Draws++
		}
		match.PrepareNextRound()
	}
	stats.Decisions = ds.Len()
	stats.Elapsed = time.Since(start)
	if stats.Elapsed > 0 {
		stats.RoundsPerSecond = float64(stats.Rounds) / stats.Elapsed.Seconds()
	}

	if n := ds.Unresolved(); n > 0 {
		return stats, fmt.Errorf("%w: %d rows after %d rounds", dataset.ErrUnresolved, n, stats.Rounds)
	}
	if err := ds.WriteFile(s.config.DatasetPath); err != nil {
		return stats, err
	}

	ev := s.config.Logger.Info().
		Str("run_id", stats.RunID).
		Int("rounds", stats.Rounds).
		Int("wins", stats.Wins).
		Int("draws", stats.Draws).
		Int("losses", stats.Losses).
		Int("decisions", stats.Decisions).
		Str("dataset", s.config.DatasetPath)
	if stats.Elapsed > 0 {
		ev = ev.Float64("rounds_per_second", stats.RoundsPerSecond)
	}
	ev.Msg("synthesis complete")
	return stats, nil
}

// traineeResult maps a seat outcome to the trainee's result.
func traineeResult(outcome game.Outcome, traineeFirst bool) core.Result {
	switch outcome {
	case game.OutcomeFirstWins:
		if traineeFirst {
			return core.ResultWin
		}
		return core.ResultLoss
	case game.OutcomeSecondWins:
		if traineeFirst {
			return core.ResultLoss
		}
		return core.ResultWin
	default:
		return core.ResultDraw
	}
}
