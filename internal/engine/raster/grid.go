package raster

// Grid is a flat character grid without a depth buffer. Later writes always
// win, so callers submit primitives back to front.
type Grid struct {
	cells [Height][Width]byte
}

// NewGrid returns a blank grid.
func NewGrid() *Grid {
	g := &Grid{}
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Blank
		}
	}
	return g
}

// Set writes ch at (x, y). Off-screen writes are ignored.
func (g *Grid) Set(x, y int, ch byte) {
	if inBounds(x, y) {
		g.cells[y][x] = ch
	}
}

// At returns the character at (x, y), or Blank when off screen.
func (g *Grid) At(x, y int) byte {
	if !inBounds(x, y) {
		return Blank
	}
	return g.cells[y][x]
}

// Row implements Frame.
func (g *Grid) Row(y int) []byte {
	return g.cells[y][:]
}
