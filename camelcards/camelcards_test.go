package camelcards

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"
)

const sampleRound = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestParseCard(t *testing.T) {
	a := assert.New(t)
	for _, v := range []Variant{Standard, Wildcard} {
		for _, r := range "23456789TJQKA" {
			c, err := ParseCard(v, r)
			if a.NoError(err, "%v %q", v, r) {
				a.Equal(string(r), c.String())
			}
		}
		for _, r := range "01BXjqka *é" {
			_, err := ParseCard(v, r)
			a.ErrorIs(err, ErrInvalidCard, "%v %q", v, r)
		}
	}

	jack, _ := ParseCard(Standard, 'J')
	a.Equal(Jack, jack)
	a.True(Ten < jack && jack < Queen)

	joker, _ := ParseCard(Wildcard, 'J')
	a.Equal(Joker, joker)
	two, _ := ParseCard(Wildcard, '2')
	a.True(joker < two)
}

func TestParseHand_InvalidHand(t *testing.T) {
	for _, s := range []string{"", "A", "AAAA", "AAAAAA", "32T3K 765"} {
		_, err := ParseHand(Standard, s)
		assert.ErrorIs(t, err, ErrInvalidHand, "%q", s)
		assert.NotErrorIs(t, err, ErrInvalidCard, "%q", s)
	}
}

func TestParseHand_InvalidCard(t *testing.T) {
	for _, s := range []string{"AAAAX", "1AAAA", "kkkkk", "AA AA"} {
		_, err := ParseHand(Wildcard, s)
		assert.ErrorIs(t, err, ErrInvalidCard, "%q", s)
	}
}

func TestParseHand_Counts(t *testing.T) {
	h, err := ParseHand(Standard, "KTJJT")
	require.NoError(t, err)
	assert.Equal(t, 1, h.Count(King))
	assert.Equal(t, 2, h.Count(Ten))
	assert.Equal(t, 2, h.Count(Jack))
	assert.Equal(t, 0, h.Count(Joker))
	assert.Equal(t, [HandSize]Card{King, Ten, Jack, Jack, Ten}, h.Cards())
	assert.Equal(t, "KTJJT", h.String())

	total := 0
	for c := Joker; c <= Ace; c++ {
		total += h.Count(c)
	}
	assert.Equal(t, HandSize, total)

	w, err := ParseHand(Wildcard, "KTJJT")
	require.NoError(t, err)
	assert.Equal(t, 2, w.Count(Joker))
	assert.Equal(t, 0, w.Count(Jack))
	assert.Equal(t, Wildcard, w.Variant())
}

func TestHandType(t *testing.T) {
	tests := []struct {
		hand     string
		standard HandType
		wildcard HandType
	}{
		{"32T3K", OnePair, OnePair},
		{"T55J5", ThreeOfAKind, FourOfAKind},
		{"KK677", TwoPairs, TwoPairs},
		{"KTJJT", TwoPairs, FourOfAKind},
		{"QQQJA", ThreeOfAKind, FourOfAKind},
		{"AAAAA", FiveOfAKind, FiveOfAKind},
		{"JJJJJ", FiveOfAKind, FiveOfAKind},
		{"AA8AA", FourOfAKind, FourOfAKind},
		{"23332", FullHouse, FullHouse},
		{"TTT98", ThreeOfAKind, ThreeOfAKind},
		{"23432", TwoPairs, TwoPairs},
		{"A23A4", OnePair, OnePair},
		{"23456", HighCard, HighCard},
		{"J2345", HighCard, OnePair},
		{"JJ234", OnePair, ThreeOfAKind},
		{"2233J", TwoPairs, FullHouse},
		{"32J3J", TwoPairs, FourOfAKind},
		{"JKKK2", ThreeOfAKind, FourOfAKind},
		{"JJJJ2", FourOfAKind, FiveOfAKind},
	}
	for _, tt := range tests {
		h, err := ParseHand(Standard, tt.hand)
		require.NoError(t, err)
		assert.Equal(t, tt.standard, h.Type(), "standard %s", tt.hand)

		h, err = ParseHand(Wildcard, tt.hand)
		require.NoError(t, err)
		assert.Equal(t, tt.wildcard, h.Type(), "wildcard %s", tt.hand)
	}
}

func permutations(s string) []string {
	if len(s) <= 1 {
		return []string{s}
	}
	var out []string
	for i := range s {
		rest := s[:i] + s[i+1:]
		for _, p := range permutations(rest) {
			out = append(out, s[i:i+1]+p)
		}
	}
	return out
}

func TestHandType_PermutationInvariant(t *testing.T) {
	for _, v := range []Variant{Standard, Wildcard} {
		for _, s := range []string{"32T3K", "T55J5", "KTJJT", "JJ234", "2233J", "AKQJT"} {
			want, err := ParseHand(v, s)
			require.NoError(t, err)
			for _, p := range permutations(s) {
				h, err := ParseHand(v, p)
				require.NoError(t, err)
				assert.Equal(t, want.Type(), h.Type(), "%v %s vs %s", v, s, p)
			}
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		variant Variant
		a, b    string
		want    int
	}{
		{Standard, "33332", "2AAAA", 1},
		{Standard, "2AAAA", "33332", -1},
		{Standard, "77888", "77788", 1},
		{Standard, "A2457", "A2456", 1},
		{Standard, "KK677", "KTJJT", 1},
		{Standard, "T55J5", "QQQJA", -1},
		{Standard, "23456", "22345", -1},
		{Standard, "JKKK2", "QQQQ2", -1},
		{Standard, "KK677", "KK677", 0},
		{Wildcard, "JKKK2", "QQQQ2", -1},
		{Wildcard, "QQQQ2", "JKKK2", 1},
		{Wildcard, "JJJJJ", "AAAA2", 1},
		{Wildcard, "JJJJJ", "22222", -1},
		{Wildcard, "T55J5", "QQQJA", -1},
		{Wildcard, "QQQJA", "KTJJT", -1},
		{Wildcard, "J2345", "23456", 1},
	}
	for _, tt := range tests {
		a, err := ParseHand(tt.variant, tt.a)
		require.NoError(t, err)
		b, err := ParseHand(tt.variant, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, Compare(a, b), "%v Compare(%s, %s)", tt.variant, tt.a, tt.b)
		assert.Equal(t, tt.want < 0, a.Less(b), "%v %s.Less(%s)", tt.variant, tt.a, tt.b)
	}
}

func TestScore(t *testing.T) {
	got, err := Score(Standard, sampleRound)
	require.NoError(t, err)
	assert.Equal(t, 6440, got)

	got, err = Score(Wildcard, sampleRound)
	require.NoError(t, err)
	assert.Equal(t, 5905, got)

	got, err = Score(Standard, "")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestStandings(t *testing.T) {
	plays, err := ParsePlays(Standard, sampleRound)
	require.NoError(t, err)
	orig := append([]Play(nil), plays...)

	st := Standings(plays)
	var hands []string
	for i, s := range st {
		assert.Equal(t, i+1, s.Rank)
		hands = append(hands, s.Hand.String())
	}
	assert.Equal(t, []string{"32T3K", "KTJJT", "KK677", "T55J5", "QQQJA"}, hands)
	assert.Equal(t, orig, plays, "Standings must not reorder its input")

	dup, err := ParsePlays(Standard, "KK677 1\n32T3K 2\nKK677 3\n")
	require.NoError(t, err)
	st = Standings(dup)
	assert.Equal(t, []int{2, 1, 3}, []int{st[0].Bid, st[1].Bid, st[2].Bid})
	assert.Equal(t, 2*1+1*2+3*3, Winnings(dup))
}

func TestParsePlays_Errors(t *testing.T) {
	tests := []struct {
		input string
		line  int
		want  error
	}{
		{"32T3K 765\nT55J5\n", 2, ErrMalformedLine},
		{"32T3K 765\nT55J5 x\n", 2, ErrMalformedLine},
		{"32T3K -1\n", 1, ErrMalformedLine},
		{"32T3K 1 2\n", 1, ErrMalformedLine},
		{"32T3K 765\n\nKK677 28\n", 2, ErrMalformedLine},
		{"32T3K 765\nKK677 28\nKK6 1\n", 3, ErrInvalidHand},
		{"32X3K 765\n", 1, ErrInvalidCard},
	}
	for _, tt := range tests {
		plays, err := ParsePlays(Wildcard, tt.input)
		assert.Nil(t, plays, "%q", tt.input)
		assert.ErrorIs(t, err, tt.want, "%q", tt.input)

		var le *LineError
		if assert.True(t, errors.As(err, &le), "%q", tt.input) {
			assert.Equal(t, tt.line, le.Line, "%q", tt.input)
		}

		_, err = Score(Wildcard, tt.input)
		assert.ErrorIs(t, err, tt.want, "%q", tt.input)
	}
}

func TestHand_Idempotent(t *testing.T) {
	for _, v := range []Variant{Standard, Wildcard} {
		for _, s := range []string{"32T3K", "KTJJT", "JJJJJ", "QQQJA"} {
			h, err := ParseHand(v, s)
			require.NoError(t, err)
			before := deephash.Hash(&h)
			typ := h.Type()

			for i := 0; i < 3; i++ {
				again, err := ParseHand(v, h.String())
				require.NoError(t, err)
				assert.Equal(t, typ, again.Type())
				assert.Equal(t, before, deephash.Hash(&again), "%v %s re-parse", v, s)
				assert.Equal(t, 0, Compare(h, again))
			}
			assert.Equal(t, before, deephash.Hash(&h), "%v %s changed after use", v, s)
		}
	}
}

func TestHandType_String(t *testing.T) {
	assert.Equal(t, "Full house", FullHouse.String())
	assert.Equal(t, "Five of a kind", FiveOfAKind.String())
	assert.Panics(t, func() { _ = HandType(42).String() })
	assert.Equal(t, "wildcard", Wildcard.String())
	assert.Equal(t, "Card(0)", Card(0).String())
}
