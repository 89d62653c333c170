package main

import (
	"aoc"
)

// partNumber is a number in the schematic, spanning columns x1..x2 of row y.
type partNumber struct {
	value  int
	y      int
	x1, x2 int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSymbol(c byte) bool { return c != '.' && !isDigit(c) }

func findNumbers(g aoc.Grid[byte]) []partNumber {
	var nums []partNumber
	for y, row := range g {
		for x := 0; x < len(row); x++ {
			if !isDigit(row[x]) {
				continue
			}
			n := partNumber{y: y, x1: x}
			for ; x < len(row) && isDigit(row[x]); x++ {
				n.value = n.value*10 + aoc.Digit(rune(row[x]))
			}
			n.x2 = x - 1
			nums = append(nums, n)
		}
	}
	return nums
}

// adjacent returns the points around n whose cell satisfies match, each
// once.
func (n partNumber) adjacent(g aoc.Grid[byte], match func(byte) bool) []aoc.Pt {
	seen := map[aoc.Pt]bool{}
	var out []aoc.Pt
	for x := n.x1; x <= n.x2; x++ {
		aoc.Pt{X: x, Y: n.y}.ForNeighbors(func(p aoc.Pt) bool {
			if c, ok := g.AtOk(p); ok && match(c) && !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
			return true
		})
	}
	return out
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	g := aoc.GridFromLines(s.Lines())
	sum := 0
	for _, n := range findNumbers(g) {
		if len(n.adjacent(g, isSymbol)) > 0 {
			sum += n.value
		}
	}
	return sum
}

// want=467835
func (s solver) D3p2() any {
	g := aoc.GridFromLines(s.Lines())
	gears := map[aoc.Pt][]int{}
	for _, n := range findNumbers(g) {
		for _, p := range n.adjacent(g, func(c byte) bool { return c == '*' }) {
			gears[p] = append(gears[p], n.value)
		}
	}
	sum := 0
	for p, nums := range gears {
		if len(nums) == 2 {
			s.Debugf("gear at %v: %v", p, nums)
			sum += nums[0] * nums[1]
		}
	}
	return sum
}
