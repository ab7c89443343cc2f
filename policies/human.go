package policies

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zeu5/pazaak-learn/core"
)

// Human prompts for decisions on the terminal.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ core.Policy = &Human{}

// NewHuman reads decisions from in. Callers that also read in elsewhere
// should share one scanner.
func NewHuman(in *bufio.Scanner, out io.Writer) *Human {
	return &Human{in: in, out: out}
}

func (h *Human) Decide(hand []int, selfScore, oppScore int, oppStands bool) core.Decision {
	fmt.Fprintf(h.out, "  your table %d, opponent %d", selfScore, oppScore)
	if oppStands {
		fmt.Fprint(h.out, " (standing)")
	}
	fmt.Fprintln(h.out)

	var d core.Decision
	if len(hand) > 0 {
		fmt.Fprint(h.out, "  hand:")
		for i, v := range hand {
			fmt.Fprintf(h.out, " [%d] %+d", i+1, v)
		}
		fmt.Fprintln(h.out)
		if n := h.promptInt("  play a side card? (0 for none): ", 0, len(hand)); n > 0 {
			d.PlayCard = true
			d.CardIndex = n - 1
		}
	}
	d.Stand = h.promptYesNo("  stand? (y/n): ")
	return d
}

// promptInt rereads until it gets a number in [min, max]. EOF answers min.
func (h *Human) promptInt(prompt string, min, max int) int {
	for {
		fmt.Fprint(h.out, prompt)
		if !h.in.Scan() {
			return min
		}
		n, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err == nil && n >= min && n <= max {
			return n
		}
		fmt.Fprintf(h.out, "  enter a number between %d and %d\n", min, max)
	}
}

// promptYesNo rereads until it gets an answer. EOF stands, so an aborted
// session still ends the round.
func (h *Human) promptYesNo(prompt string) bool {
	for {
		fmt.Fprint(h.out, prompt)
		if !h.in.Scan() {
			return true
		}
		switch strings.ToLower(strings.TrimSpace(h.in.Text())) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}
