package main

import (
	"fmt"
	"regexp"
	"strings"

	"aoc"
)

type cubes struct {
	red, green, blue int
}

func (c cubes) fits(bag cubes) bool {
	return c.red <= bag.red && c.green <= bag.green && c.blue <= bag.blue
}

func (c cubes) power() int {
	return c.red * c.green * c.blue
}

type game struct {
	id   int
	sets []cubes
}

// minimal returns the fewest cubes of each color the bag could hold.
func (g game) minimal() cubes {
	var m cubes
	for _, s := range g.sets {
		m.red = max(m.red, s.red)
		m.green = max(m.green, s.green)
		m.blue = max(m.blue, s.blue)
	}
	return m
}

var (
	gameRx  = regexp.MustCompile(`^Game (\d+): (.*)$`)
	countRx = regexp.MustCompile(`^(\d+) (\w+)$`)
)

// parseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
func parseGame(line string) (game, error) {
	m := gameRx.FindStringSubmatch(line)
	if m == nil {
		return game{}, fmt.Errorf("bad game %q", line)
	}
	g := game{id: aoc.Int(m[1])}
	for _, set := range strings.Split(m[2], "; ") {
		var c cubes
		for _, count := range strings.Split(set, ", ") {
			cm := countRx.FindStringSubmatch(strings.TrimSpace(count))
			if cm == nil {
				return game{}, fmt.Errorf("game %d: bad count %q", g.id, count)
			}
			n := aoc.Int(cm[1])
			switch cm[2] {
			case "red":
				c.red = n
			case "green":
				c.green = n
			case "blue":
				c.blue = n
			default:
				return game{}, fmt.Errorf("game %d: bad color %q", g.id, cm[2])
			}
		}
		g.sets = append(g.sets, c)
	}
	return g, nil
}

func (s solver) games() ([]game, error) {
	var games []game
	for _, line := range s.Lines() {
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() (any, error) {
	games, err := s.games()
	if err != nil {
		return nil, err
	}
	bag := cubes{red: 12, green: 13, blue: 14}
	sum := 0
	for _, g := range games {
		if g.minimal().fits(bag) {
			sum += g.id
		}
	}
	return sum, nil
}

// want=2286
func (s solver) D2p2() (any, error) {
	games, err := s.games()
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, g := range games {
		sum += g.minimal().power()
	}
	return sum, nil
}
