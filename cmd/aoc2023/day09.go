package main

import (
	"aoc"
)

func (s solver) extrapolateAll(forward bool) any {
	sum := 0
	s.ForLines(func(line string) {
		sum += aoc.Extrapolate(aoc.Fields(line), forward)
	})
	return sum
}

/*
want=114

0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
*/
func (s solver) D9p1() any {
	return s.extrapolateAll(true)
}

// want=2
func (s solver) D9p2() any {
	return s.extrapolateAll(false)
}
