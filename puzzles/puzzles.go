package puzzles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/spencewenski/advent-of-code-2021/input"
)

var (
	// ErrUnknownDay indicates a day with no registered solver.
	ErrUnknownDay = errors.New("puzzles: unknown day")

	// ErrUnknownPart indicates a part other than 1 or 2.
	ErrUnknownPart = errors.New("puzzles: unknown part")

	// ErrEmptyResult indicates the input reduced to nothing where a value was required.
	ErrEmptyResult = errors.New("puzzles: empty result")

	// ErrNotImplemented indicates a registered day whose solver is not written.
	ErrNotImplemented = errors.New("puzzles: not implemented")
)

// Answer is the result of one solver run.
type Answer struct {
	Value int64
	// Rows holds a rendered picture when the answer is drawn rather than counted.
	Rows []string
}

func (a Answer) String() string { return strconv.FormatInt(a.Value, 10) }

// Solver computes one part of one day's puzzle from the input lines.
type Solver func(ctx context.Context, lines []string) (Answer, error)

// Day groups the two parts of a puzzle.
type Day struct {
	Part1 Solver
	Part2 Solver
}

var registry = map[int]Day{
	1:  {Part1: day1Part1, Part2: day1Part2},
	2:  {Part1: day2Part1, Part2: day2Part2},
	3:  {Part1: day3Part1, Part2: day3Part2},
	4:  {Part1: day4Part1, Part2: day4Part2},
	5:  {Part1: day5Part1, Part2: day5Part2},
	6:  {Part1: day6Part1, Part2: day6Part2},
	7:  {Part1: day7Part1, Part2: day7Part2},
	8:  {Part1: day8Part1, Part2: day8Part2},
	9:  {Part1: day9Part1, Part2: day9Part2},
	10: {Part1: day10Part1, Part2: day10Part2},
	11: {Part1: day11Part1, Part2: day11Part2},
	12: {Part1: day12Part1, Part2: day12Part2},
	13: {Part1: day13Part1, Part2: day13Part2},
	14: {Part1: day14Part1, Part2: day14Part2},
	15: {Part1: day15Part1, Part2: day15Part2},
	16: {Part1: day16Part1, Part2: day16Part2},
}

// Days returns the registered days in ascending order.
func Days() []int {
	days := lo.Keys(registry)
	sort.Ints(days)

	return days
}

// Lookup returns the solver for (day, part).
func Lookup(day, part int) (Solver, error) {
	d, ok := registry[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	switch part {
	case 1:
		return d.Part1, nil
	case 2:
		return d.Part2, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPart, part)
	}
}

// Solve reads every line of r and runs the (day, part) solver on them.
// The selector is validated before r is read.
func Solve(ctx context.Context, day, part int, r io.Reader) (Answer, error) {
	solve, err := Lookup(day, part)
	if err != nil {
		return Answer{}, err
	}
	lines, err := input.ReadLines(r)
	if err != nil {
		return Answer{}, err
	}

	return solve(ctx, lines)
}

func value[T int | int64 | uint64](n T) Answer { return Answer{Value: int64(n)} }

// commaLine parses the single non-blank line of lines as comma-separated
// integers and returns them with that line's number.
func commaLine(lines []string) ([]int, int, error) {
	var (
		line string
		at   int
	)
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if at != 0 {
			return nil, 0, input.Malformed(i+1, "want one comma-separated line, found another after line %d", at)
		}
		line, at = l, i+1
	}
	if at == 0 {
		return nil, 0, ErrEmptyResult
	}
	ints, err := input.CommaInts(line)
	if err != nil {
		return nil, 0, &input.MalformedError{Line: at, Reason: err.Error()}
	}

	return ints, at, nil
}
