// Package almanac follows seeds through the chain of category maps of a
// gardening almanac (seed-to-soil, soil-to-fertilizer, ... to location).
package almanac

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"aoc"
)

var (
	ErrNoSeeds   = errors.New("almanac has no seeds")
	ErrOddSeeds  = errors.New("seed ranges need an even number of values")
	errBadHeader = errors.New(`missing "seeds:" header`)
)

// Range maps [Src, Src+Len) onto [Dst, Dst+Len).
type Range struct {
	Dst, Src, Len int
}

// Map converts numbers of category From into category To.
type Map struct {
	From, To string
	Ranges   []Range
}

// Convert returns the number n maps to. Numbers outside every range map
// to themselves.
func (m *Map) Convert(n int) int {
	for _, r := range m.Ranges {
		if n >= r.Src && n < r.Src+r.Len {
			return r.Dst + (n - r.Src)
		}
	}
	return n
}

// Span is the numbers [Start, Start+Len).
type Span struct {
	Start, Len int
}

func (s Span) end() int { return s.Start + s.Len }

// ConvertSpans returns the spans that the numbers of in map to. The
// result covers exactly as many numbers as in.
func (m *Map) ConvertSpans(in []Span) []Span {
	var out []Span
	todo := append([]Span(nil), in...)
	for len(todo) > 0 {
		s := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if s.Len <= 0 {
			continue
		}
		mapped := false
		for _, r := range m.Ranges {
			lo := max(s.Start, r.Src)
			hi := min(s.end(), r.Src+r.Len)
			if lo >= hi {
				continue
			}
			out = append(out, Span{Start: r.Dst + (lo - r.Src), Len: hi - lo})
			if s.Start < lo {
				todo = append(todo, Span{Start: s.Start, Len: lo - s.Start})
			}
			if hi < s.end() {
				todo = append(todo, Span{Start: hi, Len: s.end() - hi})
			}
			mapped = true
			break
		}
		if !mapped {
			out = append(out, s)
		}
	}
	return out
}

// Almanac is the seed list and the category maps.
type Almanac struct {
	Seeds []int
	Maps  []*Map

	chain []*Map // maps in the order a seed goes through them
}

var titleRx = regexp.MustCompile(`^(\w+)-to-(\w+) map:$`)

// Parse parses an almanac: a "seeds:" line followed by blank-line
// separated map blocks.
func Parse(input string) (*Almanac, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	blocks := strings.Split(strings.TrimSpace(input), "\n\n")

	seeds, ok := strings.CutPrefix(strings.TrimSpace(blocks[0]), "seeds:")
	if !ok {
		return nil, errBadHeader
	}
	a := &Almanac{}
	for _, f := range strings.Fields(seeds) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", f, err)
		}
		a.Seeds = append(a.Seeds, n)
	}
	if len(a.Seeds) == 0 {
		return nil, ErrNoSeeds
	}

	for _, b := range blocks[1:] {
		m, err := parseMap(strings.TrimSpace(b))
		if err != nil {
			return nil, err
		}
		a.Maps = append(a.Maps, m)
	}
	a.chain = chain(a.Maps)
	return a, nil
}

func parseMap(block string) (*Map, error) {
	lines := strings.Split(block, "\n")
	t := titleRx.FindStringSubmatch(strings.TrimSpace(lines[0]))
	if t == nil {
		return nil, fmt.Errorf("bad map title %q", lines[0])
	}
	m := &Map{From: t[1], To: t[2]}
	for _, line := range lines[1:] {
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, fmt.Errorf("%s-to-%s: bad range %q", m.From, m.To, line)
		}
		var v [3]int
		for i, s := range f {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%s-to-%s: bad range %q: %w", m.From, m.To, line, err)
			}
			v[i] = n
		}
		m.Ranges = append(m.Ranges, Range{Dst: v[0], Src: v[1], Len: v[2]})
	}
	return m, nil
}

// chain returns the maps a seed goes through, in order. It stops at the
// first category with no map or one already visited.
func chain(maps []*Map) []*Map {
	bySource := make(map[string]*Map, len(maps))
	for _, m := range maps {
		if _, ok := bySource[m.From]; !ok {
			bySource[m.From] = m
		}
	}
	var out []*Map
	seen := map[string]bool{}
	for name := "seed"; !seen[name]; {
		seen[name] = true
		m, ok := bySource[name]
		if !ok {
			break
		}
		out = append(out, m)
		name = m.To
	}
	return out
}

// Location returns the location of seed.
func (a *Almanac) Location(seed int) int {
	for _, m := range a.chain {
		seed = m.Convert(seed)
	}
	return seed
}

// LowestLocation returns the lowest location of the listed seeds.
func (a *Almanac) LowestLocation() int {
	lowest := math.MaxInt
	for _, s := range a.Seeds {
		lowest = min(lowest, a.Location(s))
	}
	return lowest
}

// SeedSpans reads the seed list as pairs of start and length.
func (a *Almanac) SeedSpans() ([]Span, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, ErrOddSeeds
	}
	var spans []Span
	for i := 0; i < len(a.Seeds); i += 2 {
		spans = append(spans, Span{Start: a.Seeds[i], Len: a.Seeds[i+1]})
	}
	return spans, nil
}

func (a *Almanac) nonEmptySpans() ([]Span, error) {
	spans, err := a.SeedSpans()
	if err != nil {
		return nil, err
	}
	var out []Span
	for _, s := range spans {
		if s.Len > 0 {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoSeeds
	}
	return out, nil
}

// LowestSpanLocation returns the lowest location of the seed spans by
// converting whole spans through each map.
func (a *Almanac) LowestSpanLocation() (int, error) {
	spans, err := a.nonEmptySpans()
	if err != nil {
		return 0, err
	}
	for _, m := range a.chain {
		spans = m.ConvertSpans(spans)
	}
	lowest := math.MaxInt
	for _, s := range spans {
		lowest = min(lowest, s.Start)
	}
	return lowest, nil
}

// ScanChunk is the most seeds a single worker of ScanLowestLocation
// checks.
const ScanChunk = 1 << 20

// ScanLowestLocation returns the lowest location of the seed spans by
// checking every seed. The spans are cut into chunks that are scanned in
// parallel.
func (a *Almanac) ScanLowestLocation() (int, error) {
	spans, err := a.nonEmptySpans()
	if err != nil {
		return 0, err
	}
	var chunks []Span
	for _, s := range spans {
		for start := s.Start; start < s.end(); start += ScanChunk {
			chunks = append(chunks, Span{Start: start, Len: min(ScanChunk, s.end()-start)})
		}
	}
	lowest := aoc.ParallelMapFold(chunks, a.scan, func(x, y int) int { return min(x, y) }, math.MaxInt)
	return lowest, nil
}

func (a *Almanac) scan(s Span) int {
	lowest := math.MaxInt
	for n := s.Start; n < s.end(); n++ {
		lowest = min(lowest, a.Location(n))
	}
	return lowest
}
