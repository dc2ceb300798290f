package puzzles

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spencewenski/advent-of-code-2021/input"
	"github.com/spencewenski/advent-of-code-2021/paper"
)

// Transparent origami: fold a dotted sheet and read the code.

func parseManual(lines []string) (*paper.Sheet, []paper.Fold, error) {
	sections := input.Sections(lines)
	if len(sections) != 2 {
		return nil, nil, input.Malformed(1, "want dots and folds separated by a blank line, got %d sections", len(sections))
	}
	dots, err := input.Parse(sections[0].Lines, sections[0].First, paper.ParseDot)
	if err != nil {
		return nil, nil, err
	}
	folds, err := input.Parse(sections[1].Lines, sections[1].First, paper.ParseFold)
	if err != nil {
		return nil, nil, err
	}

	sheet, err := paper.NewSheet(dots)
	if err != nil {
		return nil, nil, err
	}

	return sheet, folds, nil
}

func day13Part1(ctx context.Context, lines []string) (Answer, error) {
	sheet, folds, err := parseManual(lines)
	if err != nil {
		return Answer{}, err
	}
	zerolog.Ctx(ctx).Debug().Int("dots", sheet.Len()).Int("folds", len(folds)).Stringer("fold", folds[0]).Msg("manual")

	folded, err := sheet.Fold(folds[0])
	if err != nil {
		return Answer{}, err
	}

	return value(folded.Len()), nil
}

func day13Part2(ctx context.Context, lines []string) (Answer, error) {
	sheet, folds, err := parseManual(lines)
	if err != nil {
		return Answer{}, err
	}
	folded, err := sheet.FoldAll(folds)
	if err != nil {
		return Answer{}, err
	}
	rows := folded.Render()
	if len(rows) == 0 {
		return Answer{}, fmt.Errorf("%w: no dots left to render", ErrEmptyResult)
	}
	zerolog.Ctx(ctx).Debug().Int("dots", folded.Len()).Int("rows", len(rows)).Msg("manual")

	return Answer{Value: int64(folded.Len()), Rows: rows}, nil
}
