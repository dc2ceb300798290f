// Package input reads puzzle input from a named file or standard input and
// parses the handful of line formats the puzzles use: one integer per
// line, comma- or whitespace-separated integers, digit grids, and
// blank-line separated sections.
//
// Errors:
//
//	ErrInputIO      - the file is missing or unreadable.
//	ErrMalformed    - a line failed to parse; the concrete error is a
//	                  *MalformedError carrying the 1-based line number.
package input
