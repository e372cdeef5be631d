package gridgraph

// Tile builds an n×n mosaic of g. The copy in tile column tx and tile row ty
// holds transform(v, tx, ty) for every original value v; a nil transform
// copies values unchanged.
//
// The result has Width = n·g.Width and Height = n·g.Height, and the cell at
// (tx·W + x, ty·H + y) derives from g's cell at (x, y).
//
// Complexity: O(n²·W·H) time and memory.
func (g *Grid) Tile(n int, transform func(v, tx, ty int) int) (*Grid, error) {
	if n <= 0 {
		return nil, ErrBadTile
	}
	out := &Grid{
		Width:  g.Width * n,
		Height: g.Height * n,
		Cells:  make([]int, len(g.Cells)*n*n),
	}
	for i, v := range g.Cells {
		x, y := g.Coordinate(i)
		for ty := 0; ty < n; ty++ {
			for tx := 0; tx < n; tx++ {
				nv := v
				if transform != nil {
					nv = transform(v, tx, ty)
				}
				out.Set(tx*g.Width+x, ty*g.Height+y, nv)
			}
		}
	}
	return out, nil
}
