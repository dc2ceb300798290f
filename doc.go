// Package aoc is the root of a set of Advent of Code 2021 solvers built
// from small, reusable engines.
//
// Layout:
//
//	position/  2-D coordinates with bounded 4- and 8-neighbourhoods
//	gridgraph/ generic rectangular grid, connectivity, flood-fill components
//	core/      string-keyed graph with deterministic neighbour order
//	dfs/       start→target walk enumeration with pluggable admission
//	cascade/   flash-cascade cellular automaton (day 11)
//	dijkstra/  shortest path over cost grids, lazy tiling (day 15)
//	polymer/   pair-count polymer expansion (day 14)
//	caves/     cave route counting on top of core and dfs (day 12)
//	paper/     dot-sheet folding and rendering (day 13)
//	input/     input opening and line parsers
//	puzzles/   (day, part) dispatcher and per-day solvers
//	config/    flag and environment configuration
//	cmd/aoc/   the command-line entry point
//
// Quick start:
//
//	go run ./cmd/aoc --day 15 --part 2
//
// reads input/day15.input and logs the answer; pass -i - to read stdin.
package aoc
