package gridgraph

import "github.com/spencewenski/advent-of-code-2021/position"

// ConnectedComponents finds all contiguous regions of cells for which member
// reports true, according to g.Conn connectivity.
// Returns a slice of components; each component lists its positions in BFS
// discovery order. Components appear in row-major order of their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) ConnectedComponents(member func(T) bool) [][]position.Position {
	seen := make([]bool, g.Len())
	var comps [][]position.Position

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			start := position.New(x, y)
			if !member(g.At(start)) {
				continue
			}
			i0 := g.Index(start)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []position.Position{start}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, v := range g.Neighbors(u) {
					vi := g.Index(v)
					if seen[vi] || !member(g.At(v)) {
						continue
					}
					seen[vi] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
