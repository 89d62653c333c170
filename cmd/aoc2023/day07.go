package main

import (
	"aoc/camelcards"
)

func (s solver) winnings(v camelcards.Variant) (any, error) {
	plays, err := camelcards.ParsePlays(v, s.InputString())
	if err != nil {
		return nil, err
	}
	total := 0
	for _, st := range camelcards.Standings(plays) {
		s.Debugf("%d: %v (%v) bid %d", st.Rank, st.Hand, st.Hand.Type(), st.Bid)
		total += st.Winnings()
	}
	return total, nil
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() (any, error) {
	return s.winnings(camelcards.Standard)
}

// want=5905
func (s solver) D7p2() (any, error) {
	return s.winnings(camelcards.Wildcard)
}
