package scene

import (
	"fmt"

	"github.com/Faultbox/ascii3d/pkg/formats"
	"github.com/Faultbox/ascii3d/pkg/math"
)

// Subdivision limits. Long primitives are split so that the coarse
// farthest-first ordering and the near-plane cull act on smaller pieces.
const (
	MaxTriangleEdge = 400.0
	MaxLineLength   = 300.0
)

// Load reads a scene file (.dat or .yaml) and converts it to shapes.
func Load(path string) ([]Shape, error) {
	f, err := formats.ParseSceneFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading scene %s: %w", path, err)
	}
	return FromFile(f), nil
}

// FromFile converts parsed primitives to shapes. A triangle border becomes
// three separate lines ahead of the face, and the face itself is drawn
// without border. Triangles and lines longer than the subdivision limits are
// bisected.
func FromFile(f *formats.SceneFile) []Shape {
	var shapes []Shape
	for _, p := range f.Primitives {
		switch p.Kind {
		case formats.KindTriangle:
			pts := [3]math.Point3{toPoint(p.Points[0]), toPoint(p.Points[1]), toPoint(p.Points[2])}
			if p.Border != 0 {
				b := byte(p.Border)
				shapes = append(shapes,
					&Line3{P1: pts[0], P2: pts[1], Char: b},
					&Line3{P1: pts[0], P2: pts[2], Char: b},
					&Line3{P1: pts[1], P2: pts[2], Char: b},
				)
			}
			shapes = BisectTriangle(&Triangle3{Points: pts, Fill: byte(p.Fill), Border: NoBorder}, shapes)
		case formats.KindLine:
			l := &Line3{P1: toPoint(p.Points[0]), P2: toPoint(p.Points[1]), Char: byte(p.Stroke)}
			shapes = BisectLine(l, shapes)
		}
	}
	return shapes
}

func toPoint(v [3]float64) math.Point3 {
	return math.Point3{X: v[0], Y: v[1], Z: v[2]}
}

// BisectTriangle appends t to dst, first splitting it at the midpoint of its
// longest edge until no edge exceeds MaxTriangleEdge.
func BisectTriangle(t *Triangle3, dst []Shape) []Shape {
	p := t.Points
	edges := [3]float64{
		p[0].Distance(p[1]),
		p[1].Distance(p[2]),
		p[2].Distance(p[0]),
	}

	longest := 0
	for i := 1; i < 3; i++ {
		if edges[i] > edges[longest] {
			longest = i
		}
	}
	if edges[longest] <= MaxTriangleEdge {
		return append(dst, t)
	}

	// Edge i runs from vertex i to vertex i+1; c is the opposite vertex.
	a, b, c := p[longest], p[(longest+1)%3], p[(longest+2)%3]
	m := a.Midpoint(b)
	dst = BisectTriangle(&Triangle3{Points: [3]math.Point3{a, m, c}, Fill: t.Fill, Border: t.Border}, dst)
	return BisectTriangle(&Triangle3{Points: [3]math.Point3{m, b, c}, Fill: t.Fill, Border: t.Border}, dst)
}

// BisectLine appends l to dst, first halving it until it is no longer than
// MaxLineLength.
func BisectLine(l *Line3, dst []Shape) []Shape {
	if l.Length() <= MaxLineLength {
		return append(dst, l)
	}
	m := l.P1.Midpoint(l.P2)
	dst = BisectLine(&Line3{P1: l.P1, P2: m, Char: l.Char}, dst)
	return BisectLine(&Line3{P1: m, P2: l.P2, Char: l.Char}, dst)
}
