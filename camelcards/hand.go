package camelcards

import (
	"cmp"
	"fmt"
	"slices"
	"unicode/utf8"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// HandType is the shape of a hand. Higher is stronger.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPairs
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High card"
	case OnePair:
		return "One pair"
	case TwoPairs:
		return "Two pairs"
	case ThreeOfAKind:
		return "Three of a kind"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown hand type: %d", int(t)))
	}
}

// Hand is five cards in the order they were dealt. The zero Hand is not
// valid; use ParseHand.
type Hand struct {
	origin  string
	variant Variant
	cards   [HandSize]Card
	counts  [numCards]uint8
	typ     HandType
}

// ParseHand reads the five card labels in s under v.
func ParseHand(v Variant, s string) (Hand, error) {
	if n := utf8.RuneCountInString(s); n != HandSize {
		return Hand{}, fmt.Errorf("%w %q: got %d cards, want %d", ErrInvalidHand, s, n, HandSize)
	}
	h := Hand{origin: s, variant: v}
	i := 0
	for _, r := range s {
		c, err := ParseCard(v, r)
		if err != nil {
			return Hand{}, fmt.Errorf("hand %q: %w", s, err)
		}
		h.cards[i] = c
		h.counts[c]++
		i++
	}
	h.typ = classify(h.counts)
	return h, nil
}

type group struct {
	card Card
	n    int
}

// classify returns the type of the hand with the given card counts.
// Jokers are added to the largest group of other cards, the strongest
// card breaking ties between groups of the same size.
func classify(counts [numCards]uint8) HandType {
	jokers := int(counts[Joker])
	if jokers == HandSize {
		return FiveOfAKind
	}
	groups := make([]group, 0, HandSize)
	for c := Two; c < numCards; c++ {
		if counts[c] > 0 {
			groups = append(groups, group{card: c, n: int(counts[c])})
		}
	}
	slices.SortFunc(groups, func(a, b group) int {
		if a.n != b.n {
			return cmp.Compare(b.n, a.n)
		}
		return cmp.Compare(b.card, a.card)
	})
	groups[0].n += jokers

	switch {
	case groups[0].n == 5:
		return FiveOfAKind
	case groups[0].n == 4:
		return FourOfAKind
	case groups[0].n == 3 && groups[1].n == 2:
		return FullHouse
	case groups[0].n == 3:
		return ThreeOfAKind
	case groups[0].n == 2 && groups[1].n == 2:
		return TwoPairs
	case groups[0].n == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Type returns the type of h.
func (h Hand) Type() HandType {
	return h.typ
}

// Cards returns the cards of h in dealt order.
func (h Hand) Cards() [HandSize]Card {
	return h.cards
}

// Count returns how many times c appears in h.
func (h Hand) Count(c Card) int {
	if c >= numCards {
		return 0
	}
	return int(h.counts[c])
}

func (h Hand) Variant() Variant {
	return h.variant
}

// String returns the labels h was parsed from.
func (h Hand) String() string {
	return h.origin
}

// Compare returns -1, 0 or +1 as a is weaker than, as strong as, or
// stronger than b. Hands compare by type first, then card by card in
// dealt order.
func Compare(a, b Hand) int {
	if c := cmp.Compare(a.typ, b.typ); c != 0 {
		return c
	}
	return slices.Compare(a.cards[:], b.cards[:])
}

// Less reports whether h is weaker than o.
func (h Hand) Less(o Hand) bool {
	return Compare(h, o) < 0
}
