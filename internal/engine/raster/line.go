package raster

import (
	"github.com/Faultbox/ascii3d/pkg/math"
)

// verticalSlope stands in for |dy/dx| when dx is zero, so the walk always
// takes the y step.
const verticalSlope = 9000.0

// WalkLine visits every cell of the digital line between a and b, both
// endpoints included. The walk moves one cell in x or in y per step, so it
// visits |dx|+|dy|+1 cells. Endpoints are put in canonical order first, which
// makes the visited set independent of the direction the line was given in.
func WalkLine(a, b math.Point2, visit func(p math.Point2)) {
	if !before(a, b) {
		a, b = b, a
	}
	walk(a, b, func(_ int, p math.Point2) { visit(p) })
}

// before reports whether a precedes b in the canonical walk order.
func before(a, b math.Point2) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y <= b.Y
}

// walk steps from a to b. visit receives the step index (0 at a) and the cell.
func walk(a, b math.Point2, visit func(i int, p math.Point2)) {
	dx := b.X - a.X
	dy := b.Y - a.Y

	slope := verticalSlope
	if dx != 0 {
		slope = abs(float64(dy) / float64(dx))
	}
	xInc, yInc := sign(dx), sign(dy)

	cur := a
	countX, countY := 0, 0
	for i := 0; ; i++ {
		visit(i, cur)
		if cur == b {
			return
		}
		// Step in x while the ideal line, sampled at the middle of the next
		// x step, is still below the middle of the current y step.
		stepX := cur.X != b.X &&
			(cur.Y == b.Y || float64(2*countX+1)*slope < float64(2*countY+1))
		if stepX {
			cur.X += xInc
			countX++
		} else {
			cur.Y += yInc
			countY++
		}
	}
}

// offScreen reports whether the bounding box of a and b misses the screen.
func offScreen(a, b math.Point2) bool {
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)
	return maxX < 0 || minX >= Width || maxY < 0 || minY >= Height
}

// DrawLine rasterizes a depth-carrying line through the depth buffer.
// Depth is interpolated linearly over the walk and every cell goes through
// PlotLine.
func (s *Screen) DrawLine(a, b math.Point2Z, ch byte) {
	if offScreen(a.DropZ(), b.DropZ()) {
		return
	}
	if !before(a.DropZ(), b.DropZ()) {
		a, b = b, a
	}
	steps := absInt(b.X-a.X) + absInt(b.Y-a.Y)
	z0, dz := float64(a.Z), float64(b.Z-a.Z)

	walk(a.DropZ(), b.DropZ(), func(i int, p math.Point2) {
		z := z0
		if steps > 0 {
			z += dz * float64(i) / float64(steps)
		}
		s.PlotLine(p.X, p.Y, ch, z)
	})
}

// DrawLine rasterizes a line into the flat grid.
func (g *Grid) DrawLine(a, b math.Point2, ch byte) {
	if offScreen(a, b) {
		return
	}
	WalkLine(a, b, func(p math.Point2) {
		g.Set(p.X, p.Y, ch)
	})
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
