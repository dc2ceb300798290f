package puzzles

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/spencewenski/advent-of-code-2021/input"
)

// Syntax scoring: corrupted and incomplete bracket chunks.

var closerFor = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

var (
	corruptScore  = map[byte]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completeScore = map[byte]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// checkChunks returns the first illegal closer (0 if none) and, for a
// line that is merely incomplete, the closers needed to finish it.
func checkChunks(line string) (byte, []byte, error) {
	var want []byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if closer, ok := closerFor[c]; ok {
			want = append(want, closer)
			continue
		}
		if _, ok := corruptScore[c]; !ok {
			return 0, nil, fmt.Errorf("unexpected %q at column %d", c, i+1)
		}
		if len(want) == 0 || want[len(want)-1] != c {
			return c, nil, nil
		}
		want = want[:len(want)-1]
	}

	return 0, lo.Reverse(want), nil
}

func day10Part1(_ context.Context, lines []string) (Answer, error) {
	score := 0
	for i, line := range lines {
		bad, _, err := checkChunks(line)
		if err != nil {
			return Answer{}, &input.MalformedError{Line: i + 1, Reason: err.Error()}
		}
		score += corruptScore[bad]
	}

	return value(score), nil
}

func day10Part2(_ context.Context, lines []string) (Answer, error) {
	var scores []int
	for i, line := range lines {
		bad, missing, err := checkChunks(line)
		if err != nil {
			return Answer{}, &input.MalformedError{Line: i + 1, Reason: err.Error()}
		}
		if bad != 0 || len(missing) == 0 {
			continue
		}
		scores = append(scores, lo.Reduce(missing, func(acc int, c byte, _ int) int {
			return acc*5 + completeScore[c]
		}, 0))
	}
	if len(scores) == 0 {
		return Answer{}, fmt.Errorf("%w: no incomplete lines", ErrEmptyResult)
	}
	sort.Ints(scores)

	return value(scores[len(scores)/2]), nil
}
