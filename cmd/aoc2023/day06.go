package main

import (
	"fmt"
	"math"
	"strings"

	"aoc"
)

type race struct {
	time, record int
}

// distance returns how far the boat goes when the button is held for hold
// of the race's time.
func (r race) distance(hold int) int {
	return hold * (r.time - hold)
}

func (r race) beats(hold int) bool {
	return hold >= 0 && hold <= r.time && r.distance(hold) > r.record
}

// waysToWin counts the hold times that beat the record. They are the
// integers strictly between the roots of h^2 - time*h + record = 0.
func (r race) waysToWin() int {
	if r.time*r.time < 4*r.record {
		return 0
	}
	hi, lo := aoc.SolveQuad(1, -r.time, r.record)
	first := int(math.Floor(lo)) + 1
	last := int(math.Ceil(hi)) - 1
	// Nudge past float rounding at the roots.
	for first > 0 && r.beats(first-1) {
		first--
	}
	for first <= last && !r.beats(first) {
		first++
	}
	for r.beats(last + 1) {
		last++
	}
	for last >= first && !r.beats(last) {
		last--
	}
	return max(0, last-first+1)
}

// parseRaces parses the "Time:" and "Distance:" lines. With kerning, the
// spaces between the digits of each line are ignored and there is a
// single race.
func parseRaces(lines []string, kerning bool) ([]race, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("want 2 lines, got %d", len(lines))
	}
	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return nil, fmt.Errorf("bad time line %q", lines[0])
	}
	dists, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return nil, fmt.Errorf("bad distance line %q", lines[1])
	}
	if kerning {
		times = strings.Join(strings.Fields(times), "")
		dists = strings.Join(strings.Fields(dists), "")
	}
	t, d := aoc.Fields(times), aoc.Fields(dists)
	if len(t) != len(d) {
		return nil, fmt.Errorf("%d times but %d distances", len(t), len(d))
	}
	races := make([]race, len(t))
	for i := range t {
		races[i] = race{time: t[i], record: d[i]}
	}
	return races, nil
}

func (s solver) waysToWin(kerning bool) (any, error) {
	races, err := parseRaces(s.Lines(), kerning)
	if err != nil {
		return nil, err
	}
	ways := make([]int, len(races))
	for i, r := range races {
		ways[i] = r.waysToWin()
		s.Debugf("race %+v: %d ways", r, ways[i])
	}
	return aoc.Product(ways...), nil
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() (any, error) {
	return s.waysToWin(false)
}

// want=71503
func (s solver) D6p2() (any, error) {
	return s.waysToWin(true)
}
