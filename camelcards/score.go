package camelcards

import (
	"bufio"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Play is a hand and the bid placed on it.
type Play struct {
	Hand Hand
	Bid  int
}

// LineError reports the input line a parse error occurred on.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParsePlay parses a "<hand> <bid>" line.
func ParsePlay(v Variant, line string) (Play, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return Play{}, fmt.Errorf("%w: got %d fields, want 2", ErrMalformedLine, len(f))
	}
	h, err := ParseHand(v, f[0])
	if err != nil {
		return Play{}, err
	}
	bid, err := strconv.Atoi(f[1])
	if err != nil || bid < 0 {
		return Play{}, fmt.Errorf("%w: bad bid %q", ErrMalformedLine, f[1])
	}
	return Play{Hand: h, Bid: bid}, nil
}

// ParsePlays parses one play per line of input. It stops at the first
// bad line.
func ParsePlays(v Variant, input string) ([]Play, error) {
	var plays []Play
	s := bufio.NewScanner(strings.NewReader(input))
	for n := 1; s.Scan(); n++ {
		p, err := ParsePlay(v, s.Text())
		if err != nil {
			return nil, &LineError{Line: n, Text: s.Text(), Err: err}
		}
		plays = append(plays, p)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return plays, nil
}

// Standing is a play and its 1-based rank among the plays of a round,
// rank 1 being the weakest hand.
type Standing struct {
	Play
	Rank int
}

// Winnings returns the play's rank times its bid.
func (s Standing) Winnings() int {
	return s.Rank * s.Bid
}

// Standings ranks plays from weakest to strongest. Equal hands keep
// their input order. plays is not modified.
func Standings(plays []Play) []Standing {
	sorted := slices.Clone(plays)
	slices.SortStableFunc(sorted, func(a, b Play) int {
		return Compare(a.Hand, b.Hand)
	})
	out := make([]Standing, len(sorted))
	for i, p := range sorted {
		out[i] = Standing{Play: p, Rank: i + 1}
	}
	return out
}

// Winnings returns the total winnings of a round.
func Winnings(plays []Play) int {
	total := 0
	for _, s := range Standings(plays) {
		total += s.Winnings()
	}
	return total
}

// Score parses input under v and returns its total winnings.
func Score(v Variant, input string) (int, error) {
	plays, err := ParsePlays(v, input)
	if err != nil {
		return 0, err
	}
	return Winnings(plays), nil
}
