package puzzles

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/spencewenski/advent-of-code-2021/input"
)

// Seven segment search: decode scrambled seven-segment displays.

type display struct {
	patterns []string // the ten unique signal patterns
	outputs  []string // the four output digits
}

func parseDisplay(line string) (display, error) {
	left, right, ok := strings.Cut(line, "|")
	if !ok {
		return display{}, fmt.Errorf("missing \"|\" in %q", line)
	}
	d := display{patterns: strings.Fields(left), outputs: strings.Fields(right)}
	if len(d.patterns) != 10 || len(d.outputs) != 4 {
		return display{}, fmt.Errorf("want 10 patterns and 4 outputs, got %d and %d", len(d.patterns), len(d.outputs))
	}
	for _, w := range append(append([]string{}, d.patterns...), d.outputs...) {
		if strings.Trim(w, "abcdefg") != "" {
			return display{}, fmt.Errorf("bad segment group %q", w)
		}
	}

	return d, nil
}

// Digits 1, 4, 7 and 8 light a unique number of segments.
var uniqueLengths = map[int]bool{2: true, 3: true, 4: true, 7: true}

func day8Part1(_ context.Context, lines []string) (Answer, error) {
	displays, err := input.Parse(lines, 1, parseDisplay)
	if err != nil {
		return Answer{}, err
	}
	n := lo.SumBy(displays, func(d display) int {
		return lo.CountBy(d.outputs, func(o string) bool { return uniqueLengths[len(o)] })
	})

	return value(n), nil
}

// Across the ten digits each segment lights a fixed number of times
// (a=8 b=6 c=8 d=7 e=4 f=9 g=7). Summing those frequencies over a digit's
// segments gives a value unique to that digit, whatever the wiring.
var digitBySignature = map[int]int{
	42: 0, 17: 1, 34: 2, 39: 3, 30: 4,
	37: 5, 41: 6, 25: 7, 49: 8, 45: 9,
}

func (d display) decode() (int, error) {
	freq := make(map[rune]int, 7)
	for _, p := range d.patterns {
		for _, r := range p {
			freq[r]++
		}
	}
	out := 0
	for _, o := range d.outputs {
		sig := lo.SumBy([]rune(o), func(r rune) int { return freq[r] })
		digit, ok := digitBySignature[sig]
		if !ok {
			return 0, fmt.Errorf("cannot decode %q (signature %d)", o, sig)
		}
		out = out*10 + digit
	}

	return out, nil
}

func day8Part2(_ context.Context, lines []string) (Answer, error) {
	displays, err := input.Parse(lines, 1, parseDisplay)
	if err != nil {
		return Answer{}, err
	}
	total := 0
	for i, d := range displays {
		n, err := d.decode()
		if err != nil {
			return Answer{}, &input.MalformedError{Line: i + 1, Reason: err.Error()}
		}
		total += n
	}

	return value(total), nil
}
