package main

import (
	"fmt"
	"slices"
	"strings"

	"aoc"
)

type scratchcard struct {
	id      int
	winning []int
	have    []int
}

// parseScratchcard parses "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func parseScratchcard(line string) (scratchcard, error) {
	head, numbers, ok := strings.Cut(line, ":")
	if !ok {
		return scratchcard{}, fmt.Errorf("bad card %q", line)
	}
	id, ok := strings.CutPrefix(head, "Card")
	if !ok {
		return scratchcard{}, fmt.Errorf("bad card %q", line)
	}
	winning, have, ok := strings.Cut(numbers, "|")
	if !ok {
		return scratchcard{}, fmt.Errorf("bad card %q", line)
	}
	return scratchcard{
		id:      aoc.Int(id),
		winning: aoc.Fields(winning),
		have:    aoc.Fields(have),
	}, nil
}

func (c scratchcard) matches() int {
	n := 0
	for _, v := range c.have {
		if slices.Contains(c.winning, v) {
			n++
		}
	}
	return n
}

func (c scratchcard) points() int {
	m := c.matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// totalCards returns how many cards are held once every win has
// copied the cards that follow it.
func totalCards(cards []scratchcard) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...)
}

func (s solver) scratchcards() ([]scratchcard, error) {
	var cards []scratchcard
	for _, line := range s.Lines() {
		c, err := parseScratchcard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() (any, error) {
	cards, err := s.scratchcards()
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, c := range cards {
		sum += c.points()
	}
	return sum, nil
}

// want=30
func (s solver) D4p2() (any, error) {
	cards, err := s.scratchcards()
	if err != nil {
		return nil, err
	}
	return totalCards(cards), nil
}
