// Package math provides the point types and spatial transforms used by the renderer.
package math

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 is a world-space coordinate.
//
// Value-returning rotations (RotateX, RotateY, RotateZ) are meant for one-off
// projection chains; the InPlace variants mutate the receiver and are used for
// whole-scene per-frame updates.
type Point3 r3.Vec

// Add returns p + other.
func (p Point3) Add(other Point3) Point3 {
	return Point3(r3.Add(r3.Vec(p), r3.Vec(other)))
}

// Sub returns p - other.
func (p Point3) Sub(other Point3) Point3 {
	return Point3(r3.Sub(r3.Vec(p), r3.Vec(other)))
}

// Scale returns p * s.
func (p Point3) Scale(s float64) Point3 {
	return Point3(r3.Scale(s, r3.Vec(p)))
}

// Distance returns the euclidean distance to other.
func (p Point3) Distance(other Point3) float64 {
	return r3.Norm(r3.Sub(r3.Vec(other), r3.Vec(p)))
}

// Midpoint returns the point halfway between p and other.
func (p Point3) Midpoint(other Point3) Point3 {
	return p.Add(other).Scale(0.5)
}

// Centroid returns the mean of the given points. It returns the zero point for
// an empty argument list.
func Centroid(points ...Point3) Point3 {
	if len(points) == 0 {
		return Point3{}
	}
	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, r3.Vec(p))
	}
	return Point3(r3.Scale(1/float64(len(points)), sum))
}

// RotateX rotates p about center around the X axis.
func (p Point3) RotateX(center Point3, rad float64) Point3 {
	sin, cos := math.Sincos(rad)
	y := p.Y - center.Y
	z := p.Z - center.Z
	return Point3{
		X: p.X,
		Y: -z*sin + y*cos + center.Y,
		Z: z*cos + y*sin + center.Z,
	}
}

// RotateY rotates p about center around the Y axis.
func (p Point3) RotateY(center Point3, rad float64) Point3 {
	sin, cos := math.Sincos(rad)
	x := p.X - center.X
	z := p.Z - center.Z
	return Point3{
		X: x*cos + z*sin + center.X,
		Y: p.Y,
		Z: -x*sin + z*cos + center.Z,
	}
}

// RotateZ rotates p about center around the Z axis.
func (p Point3) RotateZ(center Point3, rad float64) Point3 {
	sin, cos := math.Sincos(rad)
	x := p.X - center.X
	y := p.Y - center.Y
	return Point3{
		X: x*cos + y*sin + center.X,
		Y: -x*sin + y*cos + center.Y,
		Z: p.Z,
	}
}

// RotateXInPlace is the mutating form of RotateX.
func (p *Point3) RotateXInPlace(center Point3, rad float64) {
	*p = p.RotateX(center, rad)
}

// RotateYInPlace is the mutating form of RotateY.
func (p *Point3) RotateYInPlace(center Point3, rad float64) {
	*p = p.RotateY(center, rad)
}

// RotateZInPlace is the mutating form of RotateZ.
func (p *Point3) RotateZInPlace(center Point3, rad float64) {
	*p = p.RotateZ(center, rad)
}

// Degrees converts each component from radians to degrees.
func (p Point3) Degrees() Point3 {
	return p.Scale(180 / math.Pi)
}

// String formats p as "(x, y, z)".
func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
