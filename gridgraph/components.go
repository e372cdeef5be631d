package gridgraph

// Regions finds all maximal connected regions of cells for which pass
// returns true, under connectivity conn. Each region is a slice of
// row-major indices in breadth-first discovery order; regions are ordered
// by their first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(conn Connectivity, pass func(v int) bool) [][]int {
	seen := make([]bool, len(g.Cells))
	var regions [][]int
	nbrs := make([]int, 0, 8)

	for i0, v := range g.Cells {
		if seen[i0] || !pass(v) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			nbrs = g.AppendNeighbors(nbrs[:0], queue[qi], conn)
			for _, vi := range nbrs {
				if !seen[vi] && pass(g.Cells[vi]) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}
