package puzzles

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Treachery of whales: align crabs at the cheapest position.

func day7Part1(ctx context.Context, lines []string) (Answer, error) {
	return alignCrabs(ctx, lines, func(d int) int { return d })
}

func day7Part2(ctx context.Context, lines []string) (Answer, error) {
	return alignCrabs(ctx, lines, func(d int) int { return d * (d + 1) / 2 })
}

// alignCrabs tries every position between the outermost crabs and returns
// the least total fuel, where moving d steps costs fuel(d).
func alignCrabs(ctx context.Context, lines []string, fuel func(int) int) (Answer, error) {
	crabs, _, err := commaLine(lines)
	if err != nil {
		return Answer{}, err
	}

	first, last := lo.Min(crabs), lo.Max(crabs)
	best, at := -1, first
	for target := first; target <= last; target++ {
		cost := lo.SumBy(crabs, func(c int) int { return fuel(abs(c - target)) })
		if best < 0 || cost < best {
			best, at = cost, target
		}
	}
	zerolog.Ctx(ctx).Debug().Int("crabs", len(crabs)).Int("position", at).Msg("aligned")

	return value(best), nil
}
