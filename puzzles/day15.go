package puzzles

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spencewenski/advent-of-code-2021/dijkstra"
	"github.com/spencewenski/advent-of-code-2021/input"
)

// Chiton: lowest total risk from the top-left to the bottom-right.

const caveTiles = 5

func day15Part1(ctx context.Context, lines []string) (Answer, error) {
	g, err := riskGrid(lines)
	if err != nil {
		return Answer{}, err
	}

	return lowestRisk(ctx, g)
}

func day15Part2(ctx context.Context, lines []string) (Answer, error) {
	g, err := riskGrid(lines)
	if err != nil {
		return Answer{}, err
	}
	tiled, err := dijkstra.Tile(g, caveTiles)
	if err != nil {
		return Answer{}, err
	}

	return lowestRisk(ctx, tiled)
}

func riskGrid(lines []string) (*dijkstra.Grid, error) {
	rows, err := input.DigitGrid(lines)
	if err != nil {
		return nil, err
	}

	return dijkstra.NewGrid(rows)
}

func lowestRisk(ctx context.Context, g dijkstra.CostGrid) (Answer, error) {
	res, err := dijkstra.ShortestPath(g)
	if err != nil {
		return Answer{}, err
	}
	zerolog.Ctx(ctx).Debug().
		Int("width", g.Width()).
		Int("height", g.Height()).
		Int("settled", res.Settled).
		Msg("chiton cave")

	return value(res.Distance), nil
}
