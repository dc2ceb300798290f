package polymer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrEmptyTemplate indicates a template with no elements.
	ErrEmptyTemplate = errors.New("polymer: empty template")

	// ErrBadElement indicates a byte outside 'A'..'Z'.
	ErrBadElement = errors.New("polymer: element must be in A-Z")

	// ErrBadRule indicates a rule line not shaped "AB -> C".
	ErrBadRule = errors.New("polymer: malformed rule")

	// ErrMissingProduction indicates a pair present in the polymer with no rule.
	ErrMissingProduction = errors.New("polymer: missing production")
)

// Pair is an ordered pair of adjacent elements.
type Pair [2]byte

func (p Pair) String() string { return string(p[:]) }

// Rules maps a pair to the element inserted between its two halves.
type Rules map[Pair]byte

// ParseRule parses "AB -> C".
func ParseRule(line string) (Pair, byte, error) {
	lhs, rhs, ok := strings.Cut(line, "->")
	lhs, rhs = strings.TrimSpace(lhs), strings.TrimSpace(rhs)
	if !ok || len(lhs) != 2 || len(rhs) != 1 {
		return Pair{}, 0, fmt.Errorf("%w: %q", ErrBadRule, line)
	}
	if !isElement(lhs[0]) || !isElement(lhs[1]) || !isElement(rhs[0]) {
		return Pair{}, 0, fmt.Errorf("%w: %q", ErrBadElement, line)
	}

	return Pair{lhs[0], lhs[1]}, rhs[0], nil
}

// ParseRules parses one rule per line, skipping blank lines. A later rule
// for the same pair replaces an earlier one.
func ParseRules(lines []string) (Rules, error) {
	rules := make(Rules, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, m, err := ParseRule(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rules[p] = m
	}

	return rules, nil
}

func isElement(b byte) bool { return b >= 'A' && b <= 'Z' }

// Polymer is the pair-count representation of a polymer.
//
// Invariants: the pair counts sum to Len()-1 and the element counts sum
// to Len().
type Polymer struct {
	pairs map[Pair]uint64
	chars map[byte]uint64
	rules Rules
	steps int
}

// New initialises a Polymer from template: pair counts from its sliding
// window of width 2 and element counts from the template itself.
func New(template string, rules Rules) (*Polymer, error) {
	template = strings.TrimSpace(template)
	if template == "" {
		return nil, ErrEmptyTemplate
	}
	p := &Polymer{
		pairs: make(map[Pair]uint64),
		chars: make(map[byte]uint64),
		rules: rules,
	}
	for i := 0; i < len(template); i++ {
		if !isElement(template[i]) {
			return nil, fmt.Errorf("%w: %q at %d", ErrBadElement, template[i], i)
		}
		p.chars[template[i]]++
		if i > 0 {
			p.pairs[Pair{template[i-1], template[i]}]++
		}
	}

	return p, nil
}

// Step applies every rule once, simultaneously. On ErrMissingProduction the
// polymer is left unchanged.
func (p *Polymer) Step() error {
	pairs := make(map[Pair]uint64, len(p.pairs)*2)
	inserted := make(map[byte]uint64)
	for pair, n := range p.pairs {
		m, ok := p.rules[pair]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingProduction, pair)
		}
		pairs[Pair{pair[0], m}] += n
		pairs[Pair{m, pair[1]}] += n
		inserted[m] += n
	}

	p.pairs = pairs
	for c, n := range inserted {
		p.chars[c] += n
	}
	p.steps++

	return nil
}

// Steps applies n steps, stopping at the first error.
func (p *Polymer) Steps(n int) error {
	for i := 0; i < n; i++ {
		if err := p.Step(); err != nil {
			return fmt.Errorf("step %d: %w", p.steps+1, err)
		}
	}

	return nil
}

// Generation returns the number of steps applied so far.
func (p *Polymer) Generation() int { return p.steps }

// Len returns the length of the polymer.
func (p *Polymer) Len() uint64 {
	return lo.Sum(lo.Values(p.chars))
}

// CharCounts returns a copy of the per-element totals.
func (p *Polymer) CharCounts() map[byte]uint64 {
	return lo.Assign(p.chars)
}

// PairCounts returns a copy of the adjacent-pair multiset.
func (p *Polymer) PairCounts() map[Pair]uint64 {
	return lo.Assign(p.pairs)
}

// Spread returns the most common element count minus the least common.
func (p *Polymer) Spread() uint64 {
	counts := lo.Values(p.chars)

	return lo.Max(counts) - lo.Min(counts)
}

// Spread expands template for steps steps and returns the spread.
func Spread(template string, rules Rules, steps int) (uint64, error) {
	p, err := New(template, rules)
	if err != nil {
		return 0, err
	}
	if err = p.Steps(steps); err != nil {
		return 0, err
	}

	return p.Spread(), nil
}
