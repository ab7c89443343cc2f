package core

// Result is a round outcome seen from the trainee's seat.
type Result int8

const (
	ResultLoss Result = -1
	ResultDraw Result = 0
	ResultWin  Result = 1
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	}
	return "draw"
}
