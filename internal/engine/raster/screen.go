// Package raster provides the per-frame character framebuffer and the line and
// triangle rasterizers that write into it.
package raster

// Fixed output resolution and depth-test constants.
const (
	Width  = 150
	Height = 50

	// Blank fills every cell of a fresh frame.
	Blank byte = ' '

	// DepthBias is added to a stored depth before a line may overwrite it, and
	// to every interpolated triangle depth. Lines drawn after a face at nearly
	// the same depth stay visible.
	DepthBias = 5.0

	// NoBorder disables the outline of a filled triangle.
	NoBorder byte = 0
)

// Frame is a finished character grid ready for display.
type Frame interface {
	// Row returns row y, left to right. Row 0 is the bottom of the picture.
	Row(y int) []byte
}

// Screen is a character grid with a parallel depth buffer. A Screen is built
// fresh for every frame and discarded after display.
type Screen struct {
	cells   [Height][Width]byte
	depth   [Height][Width]float64
	written [Height][Width]bool
}

// NewScreen returns a blank screen with an empty depth buffer.
func NewScreen() *Screen {
	s := &Screen{}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Blank
		}
	}
	return s
}

// inBounds reports whether (x, y) is a valid cell.
func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// At returns the character at (x, y), or Blank when off screen.
func (s *Screen) At(x, y int) byte {
	if !inBounds(x, y) {
		return Blank
	}
	return s.cells[y][x]
}

// Depth returns the nearest depth written at (x, y) this frame. ok is false
// when nothing has been written there yet (or the cell is off screen).
func (s *Screen) Depth(x, y int) (z float64, ok bool) {
	if !inBounds(x, y) || !s.written[y][x] {
		return 0, false
	}
	return s.depth[y][x], true
}

// Row implements Frame.
func (s *Screen) Row(y int) []byte {
	return s.cells[y][:]
}

// PlotFill writes a triangle-fill cell: unconditionally on an empty cell,
// otherwise only when z is strictly nearer than the stored depth.
func (s *Screen) PlotFill(x, y int, ch byte, z float64) bool {
	if !inBounds(x, y) {
		return false
	}
	if s.written[y][x] && z >= s.depth[y][x] {
		return false
	}
	s.set(x, y, ch, z)
	return true
}

// PlotLine writes a line cell: unconditionally on an empty cell, otherwise
// when z <= stored depth + DepthBias. Lines win near ties.
func (s *Screen) PlotLine(x, y int, ch byte, z float64) bool {
	if !inBounds(x, y) {
		return false
	}
	if s.written[y][x] && z > s.depth[y][x]+DepthBias {
		return false
	}
	s.set(x, y, ch, z)
	return true
}

func (s *Screen) set(x, y int, ch byte, z float64) {
	s.cells[y][x] = ch
	s.depth[y][x] = z
	s.written[y][x] = true
}
