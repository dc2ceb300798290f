// Package puzzles maps a (day, part) selector to the solver for that
// puzzle and runs it over the puzzle input.
//
// Each day lives in its own file. Solvers receive the whole input as
// lines and return an Answer: a scalar Value, plus rendered Rows for the
// puzzles whose result is a picture. Solvers log progress at debug level
// through the logger attached to the context (see zerolog.Ctx).
package puzzles
