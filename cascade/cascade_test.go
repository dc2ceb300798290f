package cascade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spencewenski/advent-of-code-2021/cascade"
	"github.com/spencewenski/advent-of-code-2021/gridgraph"
	"github.com/spencewenski/advent-of-code-2021/position"
)

var sample = []string{
	"5483143223",
	"2745854711",
	"5264556173",
	"6141336146",
	"6357385478",
	"4167524645",
	"2176841721",
	"6882881134",
	"4846848554",
	"5283751526",
}

func levels(rows ...string) [][]uint8 {
	out := make([][]uint8, len(rows))
	for y, r := range rows {
		out[y] = make([]uint8, len(r))
		for x := range r {
			out[y][x] = r[x] - '0'
		}
	}

	return out
}

func TestCountFlashes_Sample(t *testing.T) {
	n, err := cascade.CountFlashes(levels(sample...), 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(204), n)

	n, err = cascade.CountFlashes(levels(sample...), 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(1656), n)
}

func TestFirstSynchronousStep_Sample(t *testing.T) {
	step, err := cascade.FirstSynchronousStep(levels(sample...))
	require.NoError(t, err)
	assert.Equal(t, uint64(195), step)
}

// The 5×5 ring from the puzzle text: the nine-ring flashes as one cascade in
// step 1 and nothing flashes in step 2.
func TestStep_SmallRing(t *testing.T) {
	f, err := cascade.NewField(levels(
		"11111",
		"19991",
		"19191",
		"19991",
		"11111",
	))
	require.NoError(t, err)

	flashed := f.Step()
	assert.Len(t, flashed, 9)
	assert.Equal(t, levels(
		"34543",
		"40004",
		"50005",
		"40004",
		"34543",
	), f.Levels())

	assert.Empty(t, f.Step())
	assert.Equal(t, levels(
		"45654",
		"51115",
		"61116",
		"51115",
		"45654",
	), f.Levels())
}

// After any step every cell is back in [0, 9] and flashed cells are zero.
func TestStep_EnergyInvariant(t *testing.T) {
	f, err := cascade.NewField(levels(sample...))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		flashed := f.Step()
		seen := make(map[position.Position]bool, len(flashed))
		for _, p := range flashed {
			assert.False(t, seen[p], "step %d: %v flashed twice", i+1, p)
			seen[p] = true
			assert.Zero(t, f.Energy(p))
		}
		for _, row := range f.Levels() {
			for _, e := range row {
				assert.Less(t, e, uint8(cascade.FlashThreshold))
			}
		}
	}
}

func TestFirstSynchronousStep_NoConvergence(t *testing.T) {
	// The pair alternates flashing with a period of nine steps and never
	// flashes together.
	_, err := cascade.FirstSynchronousStep([][]uint8{{0, 5}})
	assert.ErrorIs(t, err, cascade.ErrNoConvergence)
}

func TestFirstSynchronousStep_SingleCell(t *testing.T) {
	step, err := cascade.FirstSynchronousStep([][]uint8{{9}})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), step)

	step, err = cascade.FirstSynchronousStep([][]uint8{{0}})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), step)
}

func TestNewField_Errors(t *testing.T) {
	_, err := cascade.NewField([][]uint8{{1, 10}})
	assert.ErrorIs(t, err, cascade.ErrEnergyRange)

	_, err = cascade.NewField(nil)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = cascade.NewField([][]uint8{{1, 2}, {3}})
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestCountFlashes_DoesNotMutateInput(t *testing.T) {
	in := levels(sample...)
	_, err := cascade.CountFlashes(in, 100)
	require.NoError(t, err)
	assert.Equal(t, levels(sample...), in)
}
