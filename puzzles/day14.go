package puzzles

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spencewenski/advent-of-code-2021/input"
	"github.com/spencewenski/advent-of-code-2021/polymer"
)

// Extended polymerization: element spread after repeated pair insertion.

func day14Part1(ctx context.Context, lines []string) (Answer, error) {
	return polymerSpread(ctx, lines, 10)
}

func day14Part2(ctx context.Context, lines []string) (Answer, error) {
	return polymerSpread(ctx, lines, 40)
}

func polymerSpread(ctx context.Context, lines []string, steps int) (Answer, error) {
	sections := input.Sections(lines)
	if len(sections) != 2 || len(sections[0].Lines) != 1 {
		return Answer{}, input.Malformed(1, "want a template line, a blank line, then rules")
	}
	rules, err := polymer.ParseRules(sections[1].Lines)
	if err != nil {
		return Answer{}, &input.MalformedError{Line: sections[1].First, Reason: err.Error()}
	}
	p, err := polymer.New(sections[0].Lines[0], rules)
	if err != nil {
		return Answer{}, &input.MalformedError{Line: sections[0].First, Reason: err.Error()}
	}
	if err = p.Steps(steps); err != nil {
		return Answer{}, err
	}
	zerolog.Ctx(ctx).Debug().Int("rules", len(rules)).Int("steps", steps).Uint64("length", p.Len()).Msg("polymer")

	return value(p.Spread()), nil
}
