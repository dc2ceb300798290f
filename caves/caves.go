package caves

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/spencewenski/advent-of-code-2021/core"
	"github.com/spencewenski/advent-of-code-2021/dfs"
)

// Distinguished cave names.
const (
	Start = "start"
	End   = "end"
)

// metaBig is the vertex Metadata key holding the cave size.
const metaBig = "big"

var (
	// ErrMissingStart indicates the system has no "start" cave.
	ErrMissingStart = errors.New("caves: no start cave")

	// ErrMissingEnd indicates the system has no "end" cave.
	ErrMissingEnd = errors.New("caves: no end cave")

	// ErrBadEdge indicates a malformed "a-b" line or a self-connection.
	ErrBadEdge = errors.New("caves: bad edge")

	// ErrAdjacentBigCaves indicates two big caves were connected directly,
	// which would allow walks of unbounded length.
	ErrAdjacentBigCaves = errors.New("caves: big caves must not be adjacent")
)

// Policy selects which revisits a route may make.
type Policy int

const (
	// SingleVisit allows each small cave at most once.
	SingleVisit Policy = iota + 1

	// OneRevisit additionally allows one small cave, other than start, twice.
	OneRevisit
)

func (p Policy) String() string {
	switch p {
	case SingleVisit:
		return "single-visit"
	case OneRevisit:
		return "one-revisit"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// IsBig reports whether name denotes a big cave: non-empty and every letter
// upper case.
func IsBig(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}

	return true
}

// System is an undirected cave graph.
type System struct {
	g *core.Graph
}

// NewSystem returns an empty cave system.
func NewSystem() *System {
	return &System{g: core.NewGraph()}
}

// Parse builds a System from "a-b" lines. Blank lines are skipped.
func Parse(lines []string) (*System, error) {
	s := NewSystem()
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, b, err := ParseEdge(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if err = s.Connect(a, b); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return s, nil
}

// ParseEdge splits "a-b" into its two cave names.
func ParseEdge(line string) (string, string, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(line), "-")
	if !ok || a == "" || b == "" || strings.Contains(b, "-") {
		return "", "", fmt.Errorf("%w: %q", ErrBadEdge, line)
	}

	return a, b, nil
}

// Connect adds an undirected passage between a and b. Repeating an existing
// passage is a no-op.
func (s *System) Connect(a, b string) error {
	if IsBig(a) && IsBig(b) && a != b {
		return fmt.Errorf("%w: %s-%s", ErrAdjacentBigCaves, a, b)
	}
	if _, err := s.g.AddEdge(a, b); err != nil {
		if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			return nil
		}
		return fmt.Errorf("%w: %s-%s: %v", ErrBadEdge, a, b, err)
	}
	for _, id := range []string{a, b} {
		v, err := s.g.Vertex(id)
		if err != nil {
			return err
		}
		v.Metadata[metaBig] = IsBig(id)
	}

	return nil
}

// Caves returns every cave name, sorted.
func (s *System) Caves() []string { return s.g.Vertices() }

// Passages returns the number of distinct passages.
func (s *System) Passages() int { return s.g.EdgeCount() }

// CountPaths returns the number of distinct start→end routes under policy.
func (s *System) CountPaths(ctx context.Context, policy Policy) (uint64, error) {
	res, err := s.walk(ctx, policy)
	if err != nil {
		return 0, err
	}

	return res.Count, nil
}

// Paths returns every start→end route under policy, in lexicographic
// order of cave names at each branch.
func (s *System) Paths(ctx context.Context, policy Policy) ([][]string, error) {
	res, err := s.walk(ctx, policy, dfs.WithCollectPaths())
	if err != nil {
		return nil, err
	}

	return res.Paths, nil
}

func (s *System) walk(ctx context.Context, policy Policy, extra ...dfs.Option) (*dfs.PathResult, error) {
	if !s.g.HasVertex(Start) {
		return nil, ErrMissingStart
	}
	if !s.g.HasVertex(End) {
		return nil, ErrMissingEnd
	}

	var admit func(string, *dfs.Walk) bool
	switch policy {
	case SingleVisit:
		admit = s.admitSingle
	case OneRevisit:
		admit = s.admitOneRevisit
	default:
		return nil, fmt.Errorf("caves: unknown policy %s", policy)
	}

	opts := append([]dfs.Option{
		dfs.WithContext(ctx),
		dfs.WithTracked(s.small),
		dfs.WithAdmit(admit),
	}, extra...)

	return dfs.AllPaths(s.g, Start, End, opts...)
}

// small reports whether id is a small cave according to its metadata.
func (s *System) small(id string) bool {
	v, err := s.g.Vertex(id)
	if err != nil {
		return false
	}
	big, _ := v.Metadata[metaBig].(bool)

	return !big
}

func (s *System) admitSingle(id string, w *dfs.Walk) bool {
	return !s.small(id) || w.Visits(id) == 0
}

func (s *System) admitOneRevisit(id string, w *dfs.Walk) bool {
	switch {
	case id == Start:
		return false
	case !s.small(id), w.Visits(id) == 0:
		return true
	default:
		return w.Repeats() == 0
	}
}
