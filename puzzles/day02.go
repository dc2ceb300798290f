package puzzles

import (
	"context"
	"fmt"
	"strings"

	"github.com/spencewenski/advent-of-code-2021/input"
)

// Dive: steer the submarine with forward/up/down commands.

type command struct {
	dir    string
	amount int
}

func parseCommand(line string) (command, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return command{}, fmt.Errorf("want \"<direction> <amount>\", got %q", line)
	}
	switch f[0] {
	case "forward", "up", "down":
	default:
		return command{}, fmt.Errorf("unknown direction %q", f[0])
	}
	n, err := input.Atoi(f[1])
	if err != nil {
		return command{}, err
	}

	return command{dir: f[0], amount: n}, nil
}

func day2Part1(_ context.Context, lines []string) (Answer, error) {
	cmds, err := input.Parse(lines, 1, parseCommand)
	if err != nil {
		return Answer{}, err
	}
	var x, depth int
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			x += c.amount
		case "down":
			depth += c.amount
		case "up":
			depth -= c.amount
		}
	}

	return value(x * depth), nil
}

func day2Part2(_ context.Context, lines []string) (Answer, error) {
	cmds, err := input.Parse(lines, 1, parseCommand)
	if err != nil {
		return Answer{}, err
	}
	var x, depth, aim int
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			x += c.amount
			depth += aim * c.amount
		case "down":
			aim += c.amount
		case "up":
			aim -= c.amount
		}
	}

	return value(x * depth), nil
}
