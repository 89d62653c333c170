package main

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"aoc"
)

type network struct {
	instructions string
	nodes        map[string][2]string // left, right
}

var nodeRx = regexp.MustCompile(`^(\w{3}) = \((\w{3}), (\w{3})\)$`)

// parseNetwork parses the L/R instructions, a blank line, then nodes like
// "AAA = (BBB, CCC)".
func parseNetwork(lines []string) (network, error) {
	if len(lines) < 2 {
		return network{}, fmt.Errorf("want instructions and nodes, got %d lines", len(lines))
	}
	n := network{
		instructions: strings.TrimSpace(lines[0]),
		nodes:        make(map[string][2]string),
	}
	if strings.Trim(n.instructions, "LR") != "" || n.instructions == "" {
		return network{}, fmt.Errorf("bad instructions %q", lines[0])
	}
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		m := nodeRx.FindStringSubmatch(line)
		if m == nil {
			return network{}, fmt.Errorf("bad node %q", line)
		}
		n.nodes[m[1]] = [2]string{m[2], m[3]}
	}
	return n, nil
}

// steps returns how many steps it takes to go from start to a node for
// which done returns true.
func (n network) steps(start string, done func(string) bool) (int, error) {
	// Past this many steps the walk is in a loop that never ends.
	limit := len(n.instructions) * (len(n.nodes) + 1)
	cur := start
	for count := 0; count <= limit; count++ {
		if done(cur) {
			return count, nil
		}
		next, ok := n.nodes[cur]
		if !ok {
			return 0, fmt.Errorf("unknown node %q", cur)
		}
		if n.instructions[count%len(n.instructions)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
	}
	return 0, fmt.Errorf("%s never arrives", start)
}

/*
want=2

RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() (any, error) {
	n, err := parseNetwork(s.Lines())
	if err != nil {
		return nil, err
	}
	return n.steps("AAA", func(node string) bool { return node == "ZZZ" })
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() (any, error) {
	n, err := parseNetwork(s.Lines())
	if err != nil {
		return nil, err
	}
	var starts []string
	for node := range n.nodes {
		if strings.HasSuffix(node, "A") {
			starts = append(starts, node)
		}
	}
	if len(starts) == 0 {
		return nil, fmt.Errorf("no start nodes")
	}
	slices.Sort(starts)
	counts := make([]int, len(starts))
	for i, start := range starts {
		c, err := n.steps(start, func(node string) bool { return strings.HasSuffix(node, "Z") })
		if err != nil {
			return nil, err
		}
		s.Debugf("%s: %d steps", start, c)
		counts[i] = c
	}
	return aoc.LCM(counts...), nil
}
