package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Open returns a reader for path. An empty path or Stdin selects stdin,
// which is wrapped so that closing it is a no-op.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == Stdin {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputIO, err)
	}

	return f, nil
}

// ReadLines reads r to the end and returns its lines without terminators.
// A trailing carriage return is stripped from each line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputIO, err)
	}

	return lines, nil
}

// Section is a run of consecutive non-blank lines.
type Section struct {
	// First is the 1-based input line number of Lines[0].
	First int
	Lines []string
}

// Sections splits lines on blank lines. Runs of blank lines count as one
// separator and no empty sections are returned.
func Sections(lines []string) []Section {
	var (
		out []Section
		cur *Section
	)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			cur = nil
			continue
		}
		if cur == nil {
			out = append(out, Section{First: i + 1})
			cur = &out[len(out)-1]
		}
		cur.Lines = append(cur.Lines, line)
	}

	return out
}

// Parse applies fn to every non-blank line, numbering lines from first.
// A failure from fn is reported as a *MalformedError at that line.
func Parse[T any](lines []string, first int, fn func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := fn(line)
		if err != nil {
			return nil, &MalformedError{Line: first + i, Reason: err.Error()}
		}
		out = append(out, v)
	}

	return out, nil
}

// Ints parses one decimal integer per non-blank line.
func Ints(lines []string) ([]int, error) {
	return Parse(lines, 1, Atoi)
}

// Atoi parses a decimal integer, ignoring surrounding whitespace.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}

	return n, nil
}

// CommaInts parses a comma-separated list of integers.
func CommaInts(line string) ([]int, error) {
	return splitInts(strings.Split(strings.TrimSpace(line), ","))
}

// FieldInts parses a whitespace-separated list of integers.
func FieldInts(line string) ([]int, error) {
	return splitInts(strings.Fields(line))
}

func splitInts(parts []string) ([]int, error) {
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}

// Digits parses a line of decimal digits with no separators.
func Digits(line string) ([]uint8, error) {
	line = strings.TrimSpace(line)
	out := make([]uint8, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("not a digit: %q at column %d", c, i+1)
		}
		out[i] = c - '0'
	}

	return out, nil
}

// DigitGrid parses every non-blank line as a row of digits. Rows must all
// have the same width. Errors carry the input line number of the bad row.
func DigitGrid(lines []string) ([][]uint8, error) {
	var rows [][]uint8
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := Digits(line)
		if err != nil {
			return nil, &MalformedError{Line: i + 1, Reason: err.Error()}
		}
		if len(rows) > 0 && len(r) != len(rows[0]) {
			return nil, Malformed(i+1, "row width %d, want %d", len(r), len(rows[0]))
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		return nil, Malformed(1, "empty grid")
	}

	return rows, nil
}
