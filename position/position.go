package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadFormat indicates a coordinate that is not of the form "x,y".
var ErrBadFormat = errors.New("position: expected \"x,y\"")

// Position is a 2-D integer coordinate. X grows to the right, Y grows downwards.
type Position struct {
	X, Y int
}

// Offsets4 lists the orthogonal neighbour offsets in N, E, S, W order.
var Offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offsets8 lists all neighbour offsets clockwise starting at N.
var Offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// New returns the Position (x, y).
func New(x, y int) Position {
	return Position{X: x, Y: y}
}

// Parse reads a "x,y" coordinate. Surrounding whitespace is ignored.
func Parse(s string) (Position, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}

	return Position{X: x, Y: y}, nil
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// In reports whether p lies inside 0 ≤ X < width, 0 ≤ Y < height.
func (p Position) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Adjacent returns the orthogonal neighbours of p inside the width×height rectangle.
func (p Position) Adjacent(width, height int) []Position {
	return p.neighbors(Offsets4, width, height)
}

// Surrounding returns the orthogonal and diagonal neighbours of p inside the
// width×height rectangle. Corner cells have 3, edge cells 5, inner cells 8.
func (p Position) Surrounding(width, height int) []Position {
	return p.neighbors(Offsets8, width, height)
}

// Neighbors applies offsets to p and keeps the in-bounds results.
func (p Position) Neighbors(offsets [][2]int, width, height int) []Position {
	return p.neighbors(offsets, width, height)
}

func (p Position) neighbors(offsets [][2]int, width, height int) []Position {
	out := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		q := p.Add(d[0], d[1])
		if q.In(width, height) {
			out = append(out, q)
		}
	}

	return out
}

// String renders p as "x,y", the same form Parse accepts.
func (p Position) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Less orders positions row-major: by Y, then by X.
func Less(a, b Position) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}

// Compare is the three-way form of Less, suitable for slices.SortFunc.
func Compare(a, b Position) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}
