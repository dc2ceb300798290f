package puzzles

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spencewenski/advent-of-code-2021/caves"
)

// Passage pathing: count routes through a cave system.

func day12Part1(ctx context.Context, lines []string) (Answer, error) {
	return countRoutes(ctx, lines, caves.SingleVisit)
}

func day12Part2(ctx context.Context, lines []string) (Answer, error) {
	return countRoutes(ctx, lines, caves.OneRevisit)
}

func countRoutes(ctx context.Context, lines []string, policy caves.Policy) (Answer, error) {
	sys, err := caves.Parse(lines)
	if err != nil {
		return Answer{}, err
	}
	zerolog.Ctx(ctx).Debug().
		Int("caves", len(sys.Caves())).
		Int("passages", sys.Passages()).
		Stringer("policy", policy).
		Msg("cave system")

	n, err := sys.CountPaths(ctx, policy)
	if err != nil {
		return Answer{}, err
	}

	return value(n), nil
}
