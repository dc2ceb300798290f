package puzzles

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/spencewenski/advent-of-code-2021/input"
)

// Binary diagnostic: per-column bit majorities.

func parseReport(lines []string) ([]string, error) {
	report, err := input.Parse(lines, 1, func(s string) (string, error) {
		s = strings.TrimSpace(s)
		if strings.Trim(s, "01") != "" {
			return "", fmt.Errorf("not binary: %q", s)
		}

		return s, nil
	})
	if err != nil {
		return nil, err
	}
	if len(report) == 0 {
		return nil, ErrEmptyResult
	}
	for i, r := range report {
		if len(r) != len(report[0]) {
			return nil, input.Malformed(i+1, "width %d, want %d", len(r), len(report[0]))
		}
	}

	return report, nil
}

// ones counts the '1' bits in column col.
func ones(report []string, col int) int {
	return lo.CountBy(report, func(r string) bool { return r[col] == '1' })
}

func day3Part1(ctx context.Context, lines []string) (Answer, error) {
	report, err := parseReport(lines)
	if err != nil {
		return Answer{}, err
	}
	var gamma, epsilon int64
	for col := range report[0] {
		gamma, epsilon = gamma<<1, epsilon<<1
		if 2*ones(report, col) > len(report) {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	zerolog.Ctx(ctx).Debug().Int64("gamma", gamma).Int64("epsilon", epsilon).Msg("power")

	return value(gamma * epsilon), nil
}

func day3Part2(ctx context.Context, lines []string) (Answer, error) {
	report, err := parseReport(lines)
	if err != nil {
		return Answer{}, err
	}
	oxygen, err := rating(report, true)
	if err != nil {
		return Answer{}, err
	}
	co2, err := rating(report, false)
	if err != nil {
		return Answer{}, err
	}
	zerolog.Ctx(ctx).Debug().Int64("oxygen", oxygen).Int64("co2", co2).Msg("life support")

	return value(oxygen * co2), nil
}

// rating filters the report column by column, keeping the most common bit
// (ties keep '1') or the least common bit (ties keep '0'), until one
// number remains. A column where every candidate agrees is skipped.
func rating(report []string, mostCommon bool) (int64, error) {
	keep := report
	for col := 0; len(keep) > 1 && col < len(report[0]); col++ {
		hasOnes := 2*ones(keep, col) >= len(keep)
		want := byte('0')
		if hasOnes == mostCommon {
			want = '1'
		}
		if next := lo.Filter(keep, func(r string, _ int) bool { return r[col] == want }); len(next) > 0 {
			keep = next
		}
	}
	if len(keep) != 1 {
		return 0, fmt.Errorf("%w: %d candidates left", ErrEmptyResult, len(keep))
	}

	return strconv.ParseInt(keep[0], 2, 64)
}
