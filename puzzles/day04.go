package puzzles

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/spencewenski/advent-of-code-2021/input"
)

// Giant squid: play bingo against a stack of 5×5 boards.

const boardSize = 5

type board struct {
	cells  [boardSize][boardSize]int
	marked [boardSize][boardSize]bool
	won    bool
}

// mark marks n wherever it appears and reports whether the board has just
// completed a row or column.
func (b *board) mark(n int) bool {
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if b.cells[r][c] == n {
				b.marked[r][c] = true
				if b.rowDone(r) || b.colDone(c) {
					b.won = true
				}
			}
		}
	}

	return b.won
}

func (b *board) rowDone(r int) bool {
	return lo.EveryBy(b.marked[r][:], func(m bool) bool { return m })
}

func (b *board) colDone(c int) bool {
	for r := 0; r < boardSize; r++ {
		if !b.marked[r][c] {
			return false
		}
	}

	return true
}

func (b *board) unmarkedSum() int {
	sum := 0
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if !b.marked[r][c] {
				sum += b.cells[r][c]
			}
		}
	}

	return sum
}

func parseBingo(lines []string) ([]int, []*board, error) {
	sections := input.Sections(lines)
	if len(sections) < 2 {
		return nil, nil, input.Malformed(1, "want a draw line followed by boards")
	}
	head := sections[0]
	if len(head.Lines) != 1 {
		return nil, nil, input.Malformed(head.First, "draw sequence spans %d lines, want 1", len(head.Lines))
	}
	draws, err := input.CommaInts(head.Lines[0])
	if err != nil {
		return nil, nil, &input.MalformedError{Line: head.First, Reason: err.Error()}
	}

	boards := make([]*board, 0, len(sections)-1)
	for _, sec := range sections[1:] {
		if len(sec.Lines) != boardSize {
			return nil, nil, input.Malformed(sec.First, "board has %d rows, want %d", len(sec.Lines), boardSize)
		}
		b := &board{}
		for r, line := range sec.Lines {
			row, err := input.FieldInts(line)
			if err != nil {
				return nil, nil, &input.MalformedError{Line: sec.First + r, Reason: err.Error()}
			}
			if len(row) != boardSize {
				return nil, nil, input.Malformed(sec.First+r, "row has %d numbers, want %d", len(row), boardSize)
			}
			copy(b.cells[r][:], row)
		}
		boards = append(boards, b)
	}

	return draws, boards, nil
}

// playBingo returns the scores of the boards in the order they win.
func playBingo(draws []int, boards []*board) []int {
	var scores []int
	for _, n := range draws {
		for _, b := range boards {
			if b.won {
				continue
			}
			if b.mark(n) {
				scores = append(scores, b.unmarkedSum()*n)
			}
		}
	}

	return scores
}

func day4Part1(ctx context.Context, lines []string) (Answer, error) {
	draws, boards, err := parseBingo(lines)
	if err != nil {
		return Answer{}, err
	}
	zerolog.Ctx(ctx).Debug().Int("draws", len(draws)).Int("boards", len(boards)).Msg("bingo")
	scores := playBingo(draws, boards)
	if len(scores) == 0 {
		return Answer{}, fmt.Errorf("%w: no board won", ErrEmptyResult)
	}

	return value(scores[0]), nil
}

func day4Part2(_ context.Context, lines []string) (Answer, error) {
	draws, boards, err := parseBingo(lines)
	if err != nil {
		return Answer{}, err
	}
	scores := playBingo(draws, boards)
	if len(scores) == 0 {
		return Answer{}, fmt.Errorf("%w: no board won", ErrEmptyResult)
	}

	return value(scores[len(scores)-1]), nil
}
