package raster

import (
	"github.com/Faultbox/ascii3d/pkg/math"
)

// DoubledArea returns twice the unsigned area of triangle abc (shoelace).
func DoubledArea(a, b, c math.Point2) int {
	return absInt(a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
}

// Inside reports whether p lies inside or on the edge of tri. The test is
// exact: p is inside iff the three sub-triangles it forms with the edges
// add up to the whole area.
func Inside(tri [3]math.Point2, p math.Point2) bool {
	_, ok := weights(tri, DoubledArea(tri[0], tri[1], tri[2]), p)
	return ok
}

// weights returns the sub-areas opposite each vertex of tri, which are the
// barycentric weights of p scaled by area, and whether p is inside.
func weights(tri [3]math.Point2, area int, p math.Point2) ([3]int, bool) {
	w := [3]int{
		DoubledArea(p, tri[1], tri[2]),
		DoubledArea(p, tri[0], tri[2]),
		DoubledArea(p, tri[0], tri[1]),
	}
	return w, w[0]+w[1]+w[2] == area
}

// bounds returns the bounding box of tri clamped to the screen. The box is
// empty (min > max) when tri lies entirely off screen.
func bounds(tri [3]math.Point2) (minX, minY, maxX, maxY int) {
	minX, maxX = tri[0].X, tri[0].X
	minY, maxY = tri[0].Y, tri[0].Y
	for _, p := range tri[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return max(minX, 0), max(minY, 0), min(maxX, Width-1), min(maxY, Height-1)
}

func flatten(pts [3]math.Point2Z) [3]math.Point2 {
	return [3]math.Point2{pts[0].DropZ(), pts[1].DropZ(), pts[2].DropZ()}
}

// FillTriangle rasterizes a filled triangle through the depth buffer. Inside
// cells get the barycentric blend of the vertex depths plus DepthBias and go
// through PlotFill. A border other than NoBorder is drawn afterwards as three
// depth-aware lines, so the face never hides its own outline.
func (s *Screen) FillTriangle(pts [3]math.Point2Z, fill, border byte) {
	tri := flatten(pts)
	area := DoubledArea(tri[0], tri[1], tri[2])

	if area > 0 {
		minX, minY, maxX, maxY := bounds(tri)
		z := [3]float64{float64(pts[0].Z), float64(pts[1].Z), float64(pts[2].Z)}
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				w, ok := weights(tri, area, math.Point2{X: x, Y: y})
				if !ok {
					continue
				}
				depth := (float64(w[0])*z[0]+float64(w[1])*z[1]+float64(w[2])*z[2])/float64(area) + DepthBias
				s.PlotFill(x, y, fill, depth)
			}
		}
	}

	if border != NoBorder {
		s.DrawLine(pts[0], pts[1], border)
		s.DrawLine(pts[0], pts[2], border)
		s.DrawLine(pts[1], pts[2], border)
	}
}

// FillTriangle rasterizes a filled triangle into the flat grid.
func (g *Grid) FillTriangle(tri [3]math.Point2, fill, border byte) {
	if area := DoubledArea(tri[0], tri[1], tri[2]); area > 0 {
		minX, minY, maxX, maxY := bounds(tri)
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				if _, ok := weights(tri, area, math.Point2{X: x, Y: y}); ok {
					g.Set(x, y, fill)
				}
			}
		}
	}

	if border != NoBorder {
		g.DrawLine(tri[0], tri[1], border)
		g.DrawLine(tri[0], tri[2], border)
		g.DrawLine(tri[1], tri[2], border)
	}
}
