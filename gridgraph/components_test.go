package gridgraph_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/spencewenski/advent-of-code-2021/gridgraph"
)

func isLand(v int) bool { return v >= 1 }

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = member, 0 = not):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 components of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := gridgraph.New(grid, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	comps := gg.ConnectedComponents(isLand)
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 uses Conn8 to join "touching corners".
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8, all 9 ones connect into a single component.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg, err := gridgraph.New(grid, gridgraph.Conn8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	comps := gg.ConnectedComponents(isLand)
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}
}

// TestConnectedComponents_Basins groups the cells below 9 of the smoke-basin
// sample into its four basins (sizes 3, 9, 14, 9).
func TestConnectedComponents_Basins(t *testing.T) {
	grid := [][]int{
		{2, 1, 9, 9, 9, 4, 3, 2, 1, 0},
		{3, 9, 8, 7, 8, 9, 4, 9, 2, 1},
		{9, 8, 5, 6, 7, 8, 9, 8, 9, 2},
		{8, 7, 6, 7, 8, 9, 6, 7, 8, 9},
		{9, 8, 9, 9, 9, 6, 5, 6, 7, 8},
	}
	gg, _ := gridgraph.New(grid, gridgraph.Conn4)
	comps := gg.ConnectedComponents(func(v int) bool { return v < 9 })

	sizes := make([]int, 0, len(comps))
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)
	want := []int{3, 9, 9, 14}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("basin sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_EmptyAndAllWater tests edge cases:
//   - no member cells → zero components
//   - single member cell → one component of size 1
func TestConnectedComponents_EmptyAndAllWater(t *testing.T) {
	gg1, _ := gridgraph.New([][]int{{0, 0}, {0, 0}}, gridgraph.Conn4)
	if comps := gg1.ConnectedComponents(isLand); len(comps) != 0 {
		t.Errorf("all-water: got %d components; want 0", len(comps))
	}

	gg2, _ := gridgraph.New([][]int{{0, 1}}, gridgraph.Conn4)
	comps2 := gg2.ConnectedComponents(isLand)
	if len(comps2) != 1 {
		t.Fatalf("single land: got %d components; want 1", len(comps2))
	}
	if len(comps2[0]) != 1 {
		t.Errorf("single land: component size = %d; want 1", len(comps2[0]))
	}
}
