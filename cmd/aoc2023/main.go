// Command aoc2023 solves the Advent of Code 2023 puzzles.
//
// Each day lives in its own dayNN.go file. The doc comment of every part
// holds the sample input and its answer, which is checked before the real
// input is run.
package main

import (
	"embed"

	"aoc"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed day*.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
