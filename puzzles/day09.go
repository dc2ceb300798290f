package puzzles

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/spencewenski/advent-of-code-2021/gridgraph"
	"github.com/spencewenski/advent-of-code-2021/input"
	"github.com/spencewenski/advent-of-code-2021/position"
)

// Smoke basin: low points and the basins that drain into them.

func heightmap(lines []string) (*gridgraph.Grid[uint8], error) {
	rows, err := input.DigitGrid(lines)
	if err != nil {
		return nil, err
	}

	return gridgraph.New(rows, gridgraph.Conn4)
}

func lowPoints(g *gridgraph.Grid[uint8]) []position.Position {
	return lo.Filter(g.Positions(), func(p position.Position, _ int) bool {
		return lo.EveryBy(g.Neighbors(p), func(q position.Position) bool { return g.At(p) < g.At(q) })
	})
}

func day9Part1(ctx context.Context, lines []string) (Answer, error) {
	g, err := heightmap(lines)
	if err != nil {
		return Answer{}, err
	}
	lows := lowPoints(g)
	zerolog.Ctx(ctx).Debug().Int("low_points", len(lows)).Msg("heightmap")

	return value(lo.SumBy(lows, func(p position.Position) int { return int(g.At(p)) + 1 })), nil
}

func day9Part2(ctx context.Context, lines []string) (Answer, error) {
	g, err := heightmap(lines)
	if err != nil {
		return Answer{}, err
	}
	basins := g.ConnectedComponents(func(h uint8) bool { return h < 9 })
	if len(basins) < 3 {
		return Answer{}, fmt.Errorf("%w: %d basins, need 3", ErrEmptyResult, len(basins))
	}
	sizes := lo.Map(basins, func(b []position.Position, _ int) int { return len(b) })
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	zerolog.Ctx(ctx).Debug().Int("basins", len(basins)).Ints("largest", sizes[:3]).Msg("heightmap")

	return value(sizes[0] * sizes[1] * sizes[2]), nil
}
