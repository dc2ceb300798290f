// Package config loads the command-line selection of puzzle, input and log
// level from flags and AOC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Each is also the long flag name; the matching
// environment variable is AOC_ followed by the key upper-cased with '-'
// replaced by '_'.
const (
	ConfigDay       = "day"
	ConfigPart      = "part"
	ConfigInputFile = "input-file"
	ConfigInputDir  = "input-dir"
	ConfigLogLevel  = "log-level"
)

const envPrefix = "AOC"

var (
	// ErrMissingDay indicates no day was selected.
	ErrMissingDay = errors.New("config: --day is required")

	// ErrMissingPart indicates no part was selected.
	ErrMissingPart = errors.New("config: --part is required")

	// ErrBadLogLevel indicates an unrecognised log level.
	ErrBadLogLevel = errors.New("config: bad log level")
)

// Config is a viper store populated by Load.
type Config struct {
	*viper.Viper

	flags *pflag.FlagSet
}

// New returns an empty Config with the flag set registered.
func New() *Config {
	fs := pflag.NewFlagSet("aoc", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntP(ConfigDay, "n", 0, "puzzle day to solve (1-16)")
	fs.IntP(ConfigPart, "p", 0, "puzzle part to solve (1 or 2)")
	fs.StringP(ConfigInputFile, "i", "", "input file, or - for stdin (default <input-dir>/day<N>.input)")
	fs.String(ConfigInputDir, "input", "directory holding day<N>.input files")
	fs.String(ConfigLogLevel, "info", "log level: debug, info, warn, error or disabled")

	return &Config{Viper: viper.New(), flags: fs}
}

// Load parses args and binds the result, together with AOC_* environment
// variables, into the store. Flags take precedence over the environment.
func (c *Config) Load(args []string) error {
	if err := c.flags.Parse(args); err != nil {
		return err
	}
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	return c.BindPFlags(c.flags)
}

// Usage returns the flag help text.
func (c *Config) Usage() string {
	return "Usage: aoc --day N --part P [flags]\n" + c.flags.FlagUsages()
}

// Validate checks that a day and part were selected and returns the parsed
// log level. Range checks on day and part are left to the dispatcher.
func (c *Config) Validate() (zerolog.Level, error) {
	if !c.IsSet(ConfigDay) {
		return zerolog.NoLevel, ErrMissingDay
	}
	if !c.IsSet(ConfigPart) {
		return zerolog.NoLevel, ErrMissingPart
	}

	return c.LogLevel()
}

// Day returns the selected day.
func (c *Config) Day() int { return c.GetInt(ConfigDay) }

// Part returns the selected part.
func (c *Config) Part() int { return c.GetInt(ConfigPart) }

// InputFile returns the explicit input path, or <input-dir>/day<N>.input.
func (c *Config) InputFile() string {
	if f := c.GetString(ConfigInputFile); f != "" {
		return f
	}

	return filepath.Join(c.GetString(ConfigInputDir), fmt.Sprintf("day%d.input", c.Day()))
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	name := strings.ToLower(c.GetString(ConfigLogLevel))
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrBadLogLevel, c.GetString(ConfigLogLevel))
	}

	return lvl, nil
}
