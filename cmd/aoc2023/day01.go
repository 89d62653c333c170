package main

import (
	"fmt"
	"strings"

	"aoc"
)

var digitWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at line[i], or -1.
func digitAt(line string, i int, words bool) int {
	if c := line[i]; c >= '0' && c <= '9' {
		return aoc.Digit(rune(c))
	}
	if words {
		for n, w := range digitWords {
			if strings.HasPrefix(line[i:], w) {
				return n + 1
			}
		}
	}
	return -1
}

// calibration returns the number formed by the first and last digits of
// line. Spelled out digits may overlap ("twone" is 2 then 1).
func calibration(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		d := digitAt(line, i, words)
		if d < 0 {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("no digit in %q", line)
	}
	return first*10 + last, nil
}

func (s solver) calibrationSum(words bool) (any, error) {
	sum := 0
	for _, line := range s.Lines() {
		v, err := calibration(line, words)
		if err != nil {
			return nil, err
		}
		sum += v
	}
	return sum, nil
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() (any, error) {
	return s.calibrationSum(false)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() (any, error) {
	return s.calibrationSum(true)
}
