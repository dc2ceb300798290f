package puzzles

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/spencewenski/advent-of-code-2021/input"
	"github.com/spencewenski/advent-of-code-2021/position"
)

// Hydrothermal venture: count points covered by at least two vent lines.

type segment struct {
	from, to position.Position
}

func parseSegment(line string) (segment, error) {
	a, b, ok := strings.Cut(line, "->")
	if !ok {
		return segment{}, fmt.Errorf("missing \"->\" in %q", line)
	}
	from, err := position.Parse(a)
	if err != nil {
		return segment{}, err
	}
	to, err := position.Parse(b)
	if err != nil {
		return segment{}, err
	}

	return segment{from: from, to: to}, nil
}

func (s segment) axisAligned() bool {
	return s.from.X == s.to.X || s.from.Y == s.to.Y
}

func (s segment) diagonal() bool {
	return abs(s.to.X-s.from.X) == abs(s.to.Y-s.from.Y)
}

// points lists every lattice point from one end to the other inclusive.
// Only axis-aligned and 45° segments are supported.
func (s segment) points() []position.Position {
	dx, dy := sign(s.to.X-s.from.X), sign(s.to.Y-s.from.Y)
	n := max(abs(s.to.X-s.from.X), abs(s.to.Y-s.from.Y))
	out := make([]position.Position, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, s.from.Add(i*dx, i*dy))
	}

	return out
}

func overlaps(lines []string, keep func(segment) bool) (Answer, error) {
	segs, err := input.Parse(lines, 1, parseSegment)
	if err != nil {
		return Answer{}, err
	}
	cover := make(map[position.Position]int)
	for _, s := range lo.Filter(segs, func(s segment, _ int) bool { return keep(s) }) {
		for _, p := range s.points() {
			cover[p]++
		}
	}

	return value(lo.CountBy(lo.Values(cover), func(n int) bool { return n >= 2 })), nil
}

func day5Part1(_ context.Context, lines []string) (Answer, error) {
	return overlaps(lines, segment.axisAligned)
}

func day5Part2(_ context.Context, lines []string) (Answer, error) {
	return overlaps(lines, func(s segment) bool { return s.axisAligned() || s.diagonal() })
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
