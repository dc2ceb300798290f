package puzzles

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spencewenski/advent-of-code-2021/cascade"
	"github.com/spencewenski/advent-of-code-2021/input"
)

// Dumbo octopus: flash cascades on an energy grid.

const flashSteps = 100

func day11Part1(ctx context.Context, lines []string) (Answer, error) {
	levels, err := input.DigitGrid(lines)
	if err != nil {
		return Answer{}, err
	}
	n, err := cascade.CountFlashes(levels, flashSteps)
	if err != nil {
		return Answer{}, err
	}
	zerolog.Ctx(ctx).Debug().Int("steps", flashSteps).Uint64("flashes", n).Msg("octopus field")

	return value(n), nil
}

func day11Part2(_ context.Context, lines []string) (Answer, error) {
	levels, err := input.DigitGrid(lines)
	if err != nil {
		return Answer{}, err
	}
	step, err := cascade.FirstSynchronousStep(levels)
	if err != nil {
		return Answer{}, err
	}

	return value(step), nil
}
