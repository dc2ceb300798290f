package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/spencewenski/advent-of-code-2021/config"
	"github.com/spencewenski/advent-of-code-2021/input"
	"github.com/spencewenski/advent-of-code-2021/puzzles"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.New()
	if err := cfg.Load(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(stdout, cfg.Usage())
			return exitOK
		}
		fmt.Fprintf(stderr, "%v\n%s", err, cfg.Usage())
		return exitUsage
	}
	lvl, err := cfg.Validate()
	if err != nil {
		fmt.Fprintf(stderr, "%v\n%s", err, cfg.Usage())
		return exitUsage
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	ctx := logger.WithContext(context.Background())

	day, part := cfg.Day(), cfg.Part()
	logger.Debug().Interface("config", cfg.AllSettings()).Msg("loaded config")

	// Reject an unknown selector before touching the filesystem.
	if _, err := puzzles.Lookup(day, part); err != nil {
		logger.Error().Err(err).Int("day", day).Int("part", part).Msg("cannot solve")
		return exitFailed
	}

	path := cfg.InputFile()
	rc, err := input.Open(path, stdin)
	if err != nil {
		logger.Error().Err(err).Str("input", path).Msg("cannot open input")
		return exitFailed
	}
	defer rc.Close()

	answer, err := puzzles.Solve(ctx, day, part, rc)
	if err != nil {
		logger.Error().Err(err).Int("day", day).Int("part", part).Str("input", path).Msg("solver failed")
		return exitFailed
	}

	for _, row := range answer.Rows {
		fmt.Fprintln(stdout, row)
	}
	logger.Info().Int64("answer", answer.Value).Int("day", day).Int("part", part).Msg("solved")

	return exitOK
}
