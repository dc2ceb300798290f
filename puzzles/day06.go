package puzzles

import (
	"context"

	"github.com/samber/lo"

	"github.com/spencewenski/advent-of-code-2021/input"
)

// Lanternfish: population growth tracked by timer buckets.

const (
	fishReset = 6
	fishNew   = 8
)

func day6Part1(ctx context.Context, lines []string) (Answer, error) {
	return simulateFish(ctx, lines, 80)
}

func day6Part2(ctx context.Context, lines []string) (Answer, error) {
	return simulateFish(ctx, lines, 256)
}

func simulateFish(_ context.Context, lines []string, days int) (Answer, error) {
	timers, at, err := commaLine(lines)
	if err != nil {
		return Answer{}, err
	}

	var buckets [fishNew + 1]uint64
	for _, t := range timers {
		if t < 0 || t > fishNew {
			return Answer{}, input.Malformed(at, "timer %d out of range", t)
		}
		buckets[t]++
	}
	for d := 0; d < days; d++ {
		spawning := buckets[0]
		copy(buckets[:], buckets[1:])
		buckets[fishNew] = spawning
		buckets[fishReset] += spawning
	}

	return value(lo.Sum(buckets[:])), nil
}
