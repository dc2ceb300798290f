package paper

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/spencewenski/advent-of-code-2021/position"
)

var (
	// ErrBadFold indicates a line not shaped "fold along x=N" or "fold along y=N".
	ErrBadFold = errors.New("paper: malformed fold")

	// ErrNegativeDot indicates a dot with a negative coordinate.
	ErrNegativeDot = errors.New("paper: negative dot coordinate")

	// ErrFoldPastOrigin indicates a fold that would reflect a dot beyond the
	// top or left edge of the sheet.
	ErrFoldPastOrigin = errors.New("paper: fold reflects past origin")
)

// ParseDot parses "x,y" and rejects negative coordinates.
func ParseDot(s string) (position.Position, error) {
	p, err := position.Parse(s)
	if err != nil {
		return position.Position{}, err
	}
	if p.X < 0 || p.Y < 0 {
		return position.Position{}, fmt.Errorf("%w: %s", ErrNegativeDot, p)
	}

	return p, nil
}

// Axis names the coordinate a fold reflects.
type Axis byte

const (
	// AxisX folds left along a vertical line x=N.
	AxisX Axis = 'x'
	// AxisY folds up along a horizontal line y=N.
	AxisY Axis = 'y'
)

// Fold is a reflection about an axis-aligned line.
type Fold struct {
	Axis Axis
	Line int
}

// Horizontal returns the fold along the line y.
func Horizontal(y int) Fold { return Fold{Axis: AxisY, Line: y} }

// Vertical returns the fold along the line x.
func Vertical(x int) Fold { return Fold{Axis: AxisX, Line: x} }

const foldPrefix = "fold along "

// ParseFold parses "fold along x=N" or "fold along y=N".
func ParseFold(line string) (Fold, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), foldPrefix)
	if !ok {
		return Fold{}, fmt.Errorf("%w: %q", ErrBadFold, line)
	}
	axis, num, ok := strings.Cut(rest, "=")
	if !ok || (axis != "x" && axis != "y") {
		return Fold{}, fmt.Errorf("%w: %q", ErrBadFold, line)
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return Fold{}, fmt.Errorf("%w: %q", ErrBadFold, line)
	}

	return Fold{Axis: Axis(axis[0]), Line: n}, nil
}

func (f Fold) String() string {
	return fmt.Sprintf("%s%c=%d", foldPrefix, f.Axis, f.Line)
}

// Apply maps p through the fold. It reports false when p lies on the line.
func (f Fold) Apply(p position.Position) (position.Position, bool) {
	c := &p.Y
	if f.Axis == AxisX {
		c = &p.X
	}
	switch {
	case *c == f.Line:
		return p, false
	case *c > f.Line:
		*c = 2*f.Line - *c
	}

	return p, true
}

// Sheet is a set of distinct dots.
type Sheet struct {
	dots map[position.Position]struct{}
}

// NewSheet returns a sheet holding dots; duplicates collapse. Dots with a
// negative coordinate are rejected with ErrNegativeDot.
func NewSheet(dots []position.Position) (*Sheet, error) {
	s := &Sheet{dots: make(map[position.Position]struct{}, len(dots))}
	for _, p := range dots {
		if p.X < 0 || p.Y < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeDot, p)
		}
		s.dots[p] = struct{}{}
	}

	return s, nil
}

// Len returns the number of distinct dots.
func (s *Sheet) Len() int { return len(s.dots) }

// Has reports whether p is marked.
func (s *Sheet) Has(p position.Position) bool {
	_, ok := s.dots[p]

	return ok
}

// Dots returns the dots in row-major order.
func (s *Sheet) Dots() []position.Position {
	out := lo.Keys(s.dots)
	sort.Slice(out, func(i, j int) bool { return position.Less(out[i], out[j]) })

	return out
}

// Fold returns a new sheet with f applied. s is unchanged. A dot farther
// than f.Line beyond the line would land at a negative coordinate; the fold
// then fails with ErrFoldPastOrigin.
func (s *Sheet) Fold(f Fold) (*Sheet, error) {
	out := &Sheet{dots: make(map[position.Position]struct{}, len(s.dots))}
	for p := range s.dots {
		q, ok := f.Apply(p)
		if !ok {
			continue
		}
		if q.X < 0 || q.Y < 0 {
			return nil, fmt.Errorf("%w: %s maps %s to %s", ErrFoldPastOrigin, f, p, q)
		}
		out.dots[q] = struct{}{}
	}

	return out, nil
}

// FoldAll applies folds in order, stopping at the first failing fold.
func (s *Sheet) FoldAll(folds []Fold) (*Sheet, error) {
	cur := s
	for i, f := range folds {
		next, err := cur.Fold(f)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", i+1, err)
		}
		cur = next
	}

	return cur, nil
}

// Render draws the sheet as rows of '#' (dot) and '.' (blank), spanning
// from the origin to the largest x and y present. An empty sheet renders
// as no rows.
func (s *Sheet) Render() []string {
	if len(s.dots) == 0 {
		return nil
	}
	maxX := lo.MaxBy(lo.Keys(s.dots), func(a, b position.Position) bool { return a.X > b.X }).X
	maxY := lo.MaxBy(lo.Keys(s.dots), func(a, b position.Position) bool { return a.Y > b.Y }).Y

	rows := make([]string, maxY+1)
	var b strings.Builder
	for y := 0; y <= maxY; y++ {
		b.Reset()
		for x := 0; x <= maxX; x++ {
			if s.Has(position.New(x, y)) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}

	return rows
}

// FoldOnce returns the distinct dots left after applying f to dots.
func FoldOnce(dots []position.Position, f Fold) ([]position.Position, error) {
	return FoldAll(dots, []Fold{f})
}

// FoldAll returns the distinct dots left after applying every fold in order.
func FoldAll(dots []position.Position, folds []Fold) ([]position.Position, error) {
	s, err := NewSheet(dots)
	if err != nil {
		return nil, err
	}
	folded, err := s.FoldAll(folds)
	if err != nil {
		return nil, err
	}

	return folded.Dots(), nil
}

// Render draws dots; see Sheet.Render.
func Render(dots []position.Position) ([]string, error) {
	s, err := NewSheet(dots)
	if err != nil {
		return nil, err
	}

	return s.Render(), nil
}
