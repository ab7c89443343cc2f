package game

// Outcome is the structured result of one set, relative to seating order.
type Outcome uint8

const (
	OutcomeDraw Outcome = iota
	OutcomeFirstWins
	OutcomeSecondWins
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFirstWins:
		return "first wins"
	case OutcomeSecondWins:
		return "second wins"
	}
	return "draw"
}
