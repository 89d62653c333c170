// Package camelcards ranks five-card Camel Cards hands and scores a round
// of bids, under the standard rules and under the rules where J is a
// wildcard Joker.
package camelcards

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCard   = errors.New("invalid card")
	ErrInvalidHand   = errors.New("invalid hand")
	ErrMalformedLine = errors.New("malformed line")
)

// Variant selects the rules a hand is read and ranked under.
type Variant int

const (
	// Standard reads J as a Jack, ranked between Ten and Queen.
	Standard Variant = iota
	// Wildcard reads J as a Joker: the lowest card, which joins the
	// largest group when classifying a hand.
	Wildcard
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Wildcard:
		return "wildcard"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Card is the strength of a card. Higher is stronger.
type Card uint8

const (
	Joker Card = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace

	numCards = Ace + 1
)

const labels = "?J23456789TJQKA"

// String returns the card's label.
func (c Card) String() string {
	if c == 0 || c >= numCards {
		return fmt.Sprintf("Card(%d)", uint8(c))
	}
	return labels[c : c+1]
}

// ParseCard returns the card labeled r under v.
func ParseCard(v Variant, r rune) (Card, error) {
	switch {
	case r >= '2' && r <= '9':
		return Two + Card(r-'2'), nil
	case r == 'T':
		return Ten, nil
	case r == 'J':
		if v == Wildcard {
			return Joker, nil
		}
		return Jack, nil
	case r == 'Q':
		return Queen, nil
	case r == 'K':
		return King, nil
	case r == 'A':
		return Ace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCard, r)
}
