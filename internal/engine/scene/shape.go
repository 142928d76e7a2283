package scene

import (
	"fmt"

	"github.com/Faultbox/ascii3d/internal/engine/camera"
	"github.com/Faultbox/ascii3d/internal/engine/raster"
	"github.com/Faultbox/ascii3d/pkg/math"
)

// NoBorder marks a triangle without an outline.
const NoBorder = raster.NoBorder

// Shape is a renderable primitive: *Line3 or *Triangle3. The set is closed;
// consumers switch on the concrete type and panic on anything else.
type Shape interface {
	isShape()
}

// Line3 is a world-space line segment drawn with Char.
type Line3 struct {
	P1, P2 math.Point3
	Char   byte
}

// Triangle3 is a world-space triangle filled with Fill and outlined with
// Border unless Border is NoBorder.
type Triangle3 struct {
	Points [3]math.Point3
	Fill   byte
	Border byte
}

func (*Line3) isShape()     {}
func (*Triangle3) isShape() {}

// Line2 is a projected line.
type Line2 struct {
	P1, P2 math.Point2Z
	Char   byte
}

// Triangle2 is a projected triangle.
type Triangle2 struct {
	Points [3]math.Point2Z
	Fill   byte
	Border byte
}

// Project projects both endpoints through cam. If either one is rejected the
// whole line is moved to the off-screen sentinel.
func (l *Line3) Project(cam *camera.Camera) Line2 {
	p1, ok1 := cam.ProjectView(l.P1)
	p2, ok2 := cam.ProjectView(l.P2)
	if !ok1 || !ok2 {
		p1, p2 = math.Sentinel2Z(), math.Sentinel2Z()
	}
	return Line2{P1: p1, P2: p2, Char: l.Char}
}

// Project projects all three vertices through cam. If any one is rejected
// the whole triangle is moved to the off-screen sentinel.
func (t *Triangle3) Project(cam *camera.Camera) Triangle2 {
	out := Triangle2{Fill: t.Fill, Border: t.Border}
	for i, p := range t.Points {
		pt, ok := cam.ProjectView(p)
		if !ok {
			out.Points = [3]math.Point2Z{math.Sentinel2Z(), math.Sentinel2Z(), math.Sentinel2Z()}
			return out
		}
		out.Points[i] = pt
	}
	return out
}

// Length returns the length of the segment.
func (l *Line3) Length() float64 {
	return l.P1.Distance(l.P2)
}

// Draw rasterizes the line through the screen's depth buffer.
func (l Line2) Draw(s *raster.Screen) {
	s.DrawLine(l.P1, l.P2, l.Char)
}

// DrawFlat rasterizes the line into a flat grid.
func (l Line2) DrawFlat(g *raster.Grid) {
	g.DrawLine(l.P1.DropZ(), l.P2.DropZ(), l.Char)
}

// Draw rasterizes the triangle through the screen's depth buffer.
func (t Triangle2) Draw(s *raster.Screen) {
	s.FillTriangle(t.Points, t.Fill, t.Border)
}

// DrawFlat rasterizes the triangle into a flat grid.
func (t Triangle2) DrawFlat(g *raster.Grid) {
	tri := [3]math.Point2{t.Points[0].DropZ(), t.Points[1].DropZ(), t.Points[2].DropZ()}
	g.FillTriangle(tri, t.Fill, t.Border)
}

// Centroid returns the mean of the shape's points.
func Centroid(s Shape) math.Point3 {
	switch s := s.(type) {
	case *Line3:
		return math.Centroid(s.P1, s.P2)
	case *Triangle3:
		return math.Centroid(s.Points[:]...)
	default:
		panic(fmt.Sprintf("scene: unknown shape %T", s))
	}
}

// points returns pointers to every vertex of s for in-place updates.
func points(s Shape) []*math.Point3 {
	switch s := s.(type) {
	case *Line3:
		return []*math.Point3{&s.P1, &s.P2}
	case *Triangle3:
		return []*math.Point3{&s.Points[0], &s.Points[1], &s.Points[2]}
	default:
		panic(fmt.Sprintf("scene: unknown shape %T", s))
	}
}

// Clone returns a deep copy of s.
func Clone(s Shape) Shape {
	switch s := s.(type) {
	case *Line3:
		c := *s
		return &c
	case *Triangle3:
		c := *s
		return &c
	default:
		panic(fmt.Sprintf("scene: unknown shape %T", s))
	}
}
