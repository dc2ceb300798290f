package puzzles

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spencewenski/advent-of-code-2021/input"
)

// Sonar sweep: count depth increases, directly or over a sliding window.

func day1Part1(ctx context.Context, lines []string) (Answer, error) {
	return countIncreases(ctx, lines, 1)
}

func day1Part2(ctx context.Context, lines []string) (Answer, error) {
	return countIncreases(ctx, lines, 3)
}

// countIncreases counts how often the sum of a width-wide window grows from
// one position to the next. Consecutive windows share all but their end
// values, so comparing depths[i+width] with depths[i] is enough.
func countIncreases(ctx context.Context, lines []string, width int) (Answer, error) {
	depths, err := input.Ints(lines)
	if err != nil {
		return Answer{}, err
	}
	if len(depths) == 0 {
		return Answer{}, ErrEmptyResult
	}
	zerolog.Ctx(ctx).Debug().Int("depths", len(depths)).Int("window", width).Msg("sonar sweep")

	n := 0
	for i := 0; i+width < len(depths); i++ {
		if depths[i+width] > depths[i] {
			n++
		}
	}

	return value(n), nil
}
