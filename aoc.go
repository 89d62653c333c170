// Package aoc are quick & dirty utilities for solving the Advent of Code
// 2023 puzzles: a runner that checks every part against the sample in its
// doc comment before running the real input, plus the helpers the days
// share.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples documented on the funcs of every Go
// file in src, keyed by func name. A sample without an input reuses the
// input of the previous sample in the same file.
func extractSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	samples := make(map[string]sample)
	for _, name := range names {
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

// Puzzle is the per-day state handed to a solver through its embedded
// *Puzzle field.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	cfg     Config
	log     *logrus.Entry
	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) inputPath() string {
	return filepath.Join(p.cfg.InputDir, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
}

// Input returns the puzzle input, or the sample input in sample mode.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", p.cfg.BaseURL, p.year, p.day.day)
	b, err := p.cfg.fileOrFetch(p.inputPath(), url)
	if err != nil {
		p.log.WithError(err).Fatal("could not load input")
	}
	return b
}

func (p *Puzzle) InputString() string {
	return string(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		p.log.WithError(err).Fatal("could not scan input")
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns every line of input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) { lines = append(lines, line) })
	return lines
}

// Debugf logs at debug level. It is a no-op unless -debug is set or the
// configured level is debug.
func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debugf(format, args...)
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		p.log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must be either
// func() any or func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		var fn func() (any, error)
		switch m := v.Method(i).Interface().(type) {
		case func() any:
			fn = func() (any, error) { return m(), nil }
		case func() (any, error):
			fn = m
		default:
			return nil, fmt.Errorf("%s is %T; want func() any or func() (any, error)", mn, m)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(flag.Parse)

type runner struct {
	year    int
	cfg     Config
	slvr    any
	samples map[string]sample
}

// bind points the solver's embedded *Puzzle at a fresh Puzzle for d.
func (r *runner) bind(d day) *Puzzle {
	p := &Puzzle{
		year:    r.year,
		day:     d,
		cfg:     r.cfg,
		samples: r.samples,
		log:     logrus.WithFields(logrus.Fields{"year": r.year, "day": d.day}),
	}
	reflect.ValueOf(r.slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	return p
}

func (r *runner) solve(p *Puzzle, ps partSolver, sampleMode bool) (any, error) {
	p.solver = ps
	p.SampleMode = sampleMode
	p.log = logrus.WithFields(logrus.Fields{
		"year":   r.year,
		"day":    p.day.day,
		"part":   ps.Part,
		"sample": sampleMode,
	})
	return ps.fn()
}

func (r *runner) runDay(d day) error {
	p := r.bind(d)
	fmt.Println("Running day", d.day)
	for _, ps := range d.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			if !sm {
				// Prime the input.
				p.SampleMode = false
				p.Input()
			}
			t0 := time.Now()
			got, err := r.solve(p, ps, sm)
			if err != nil {
				return fmt.Errorf("%s (sample=%v): %w", ps.Name, sm, err)
			}
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return nil
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

// Run runs the solver slvr, a pointer to a struct embedding *Puzzle, for
// the day and part selected by flags. src holds the solver's source, from
// which the samples are extracted.
func Run(year int, src fs.FS, slvr any) {
	initFlags()
	cfg, err := LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}
	if flagDebug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.configureLogging(); err != nil {
		logrus.WithError(err).Fatal("could not configure logging")
	}
	samples, err := extractSamples(src)
	if err != nil {
		logrus.WithError(err).Fatal("could not extract samples")
	}
	days, err := extractMethods(slvr)
	if err != nil {
		logrus.WithError(err).Fatal("could not register solver")
	}
	r := &runner{year: year, cfg: cfg, slvr: slvr, samples: samples}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			logrus.Fatalf("no day %d", flagCurDay)
		}
		if err := r.runDay(day); err != nil {
			logrus.WithError(err).Fatal("solver failed")
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		if err := r.runDay(days[day]); err != nil {
			logrus.WithError(err).Fatal("solver failed")
		}
		fmt.Println()
	}
}

// RunSamples runs every part of slvr against its sample and returns an
// error describing each part that is missing a sample, fails, or gives
// the wrong answer.
func RunSamples(src fs.FS, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	r := &runner{cfg: defaultConfig(), slvr: slvr, samples: samples}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var errs []error
	for _, dn := range dayNums {
		p := r.bind(days[dn])
		for _, ps := range days[dn].parts {
			s, ok := samples[ps.Name]
			if !ok {
				errs = append(errs, fmt.Errorf("%s: no sample", ps.Name))
				continue
			}
			got, err := r.solve(p, ps, true)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", ps.Name, err))
				continue
			}
			if fmt.Sprint(got) != s.want {
				errs = append(errs, fmt.Errorf("%s = %v; want %v", ps.Name, got, s.want))
			}
		}
	}
	return errors.Join(errs...)
}

func (c Config) session() (string, error) {
	b, err := os.ReadFile(c.SessionFile)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (c Config) fileOrFetch(filename, url string) ([]byte, error) {
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}

	body, err := c.fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func (c Config) fetch(url string) ([]byte, error) {
	session, err := c.session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
