package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc"
)

func TestSamples(t *testing.T) {
	require.NoError(t, aoc.RunSamples(source, &solver{}))
}

func TestCalibration(t *testing.T) {
	tests := []struct {
		line  string
		words bool
		want  int
	}{
		{"1abc2", false, 12},
		{"treb7uchet", false, 77},
		{"two1nine", false, 11},
		{"two1nine", true, 29},
		{"eightwothree", true, 83},
		{"xtwone3four", true, 24},
		{"zoneight234", true, 14},
		{"7pqrstsixteen", true, 76},
		{"oneight", true, 18},
	}
	for _, tt := range tests {
		got, err := calibration(tt.line, tt.words)
		if assert.NoError(t, err, tt.line) {
			assert.Equal(t, tt.want, got, "calibration(%q, %v)", tt.line, tt.words)
		}
	}
	_, err := calibration("nodigits", false)
	assert.Error(t, err)
}

func TestParseGame(t *testing.T) {
	g, err := parseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	require.NoError(t, err)
	assert.Equal(t, game{
		id: 1,
		sets: []cubes{
			{red: 4, blue: 3},
			{red: 1, green: 2, blue: 6},
			{green: 2},
		},
	}, g)
	assert.Equal(t, cubes{red: 4, green: 2, blue: 6}, g.minimal())
	assert.Equal(t, 48, g.minimal().power())

	_, err = parseGame("Game 1: 3 purple")
	assert.Error(t, err)
	_, err = parseGame("Set 1: 3 red")
	assert.Error(t, err)
}

func TestFindNumbers(t *testing.T) {
	g := aoc.GridFromLines([]string{
		"467..114..",
		"...*......",
		"..35...633",
	})
	nums := findNumbers(g)
	require.Len(t, nums, 4)
	assert.Equal(t, partNumber{value: 467, y: 0, x1: 0, x2: 2}, nums[0])
	assert.Equal(t, partNumber{value: 633, y: 2, x1: 7, x2: 9}, nums[3])

	assert.Len(t, nums[0].adjacent(g, isSymbol), 1)
	assert.Empty(t, nums[1].adjacent(g, isSymbol))
	assert.Equal(t, []aoc.Pt{{X: 3, Y: 1}}, nums[2].adjacent(g, isSymbol))
}

func TestScratchcard(t *testing.T) {
	c, err := parseScratchcard("Card   1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)
	assert.Equal(t, 1, c.id)
	assert.Equal(t, 4, c.matches())
	assert.Equal(t, 8, c.points())

	_, err = parseScratchcard("Card 1 41 48 | 1")
	assert.Error(t, err)
}

func TestRaceWaysToWin(t *testing.T) {
	races, err := parseRaces([]string{"Time:      7  15   30", "Distance:  9  40  200"}, false)
	require.NoError(t, err)
	require.Len(t, races, 3)

	for _, r := range append(races, race{time: 71530, record: 940200}, race{time: 4, record: 4}, race{time: 3, record: 10}) {
		brute := 0
		for h := 0; h <= r.time; h++ {
			if r.distance(h) > r.record {
				brute++
			}
		}
		assert.Equal(t, brute, r.waysToWin(), "%+v", r)
	}
	assert.Equal(t, []int{4, 8, 9}, []int{races[0].waysToWin(), races[1].waysToWin(), races[2].waysToWin()})

	kerned, err := parseRaces([]string{"Time:      7  15   30", "Distance:  9  40  200"}, true)
	require.NoError(t, err)
	assert.Equal(t, []race{{time: 71530, record: 940200}}, kerned)
}

func TestNetworkSteps(t *testing.T) {
	n, err := parseNetwork(strings.Split("LLR\n\nAAA = (BBB, BBB)\nBBB = (AAA, ZZZ)\nZZZ = (ZZZ, ZZZ)", "\n"))
	require.NoError(t, err)
	got, err := n.steps("AAA", func(s string) bool { return s == "ZZZ" })
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	_, err = n.steps("QQQ", func(s string) bool { return s == "ZZZ" })
	assert.Error(t, err)

	loop, err := parseNetwork([]string{"L", "", "AAA = (AAA, ZZZ)", "ZZZ = (ZZZ, ZZZ)"})
	require.NoError(t, err)
	_, err = loop.steps("AAA", func(s string) bool { return s == "ZZZ" })
	assert.Error(t, err)

	_, err = parseNetwork([]string{"LRX", "", "AAA = (AAA, AAA)"})
	assert.Error(t, err)
}
