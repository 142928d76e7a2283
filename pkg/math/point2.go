package math

import "fmt"

// Point2 is a screen-space cell coordinate. Off-screen values are legal and
// must be checked with InScreen before indexing a grid.
type Point2 struct {
	X, Y int
}

// Point2Z is a screen-space cell coordinate carrying a depth.
type Point2Z struct {
	X, Y int
	Z    int
}

// Sentinel2Z returns the off-screen position given to every point of a
// primitive that failed to project.
func Sentinel2Z() Point2Z {
	return Point2Z{X: -1, Y: -1, Z: 0}
}

// InScreen reports whether p lies inside a width x height grid.
func (p Point2) InScreen(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// String formats p as "(x, y)".
func (p Point2) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// DropZ discards the depth.
func (p Point2Z) DropZ() Point2 {
	return Point2{X: p.X, Y: p.Y}
}

// InScreen reports whether p lies inside a width x height grid.
func (p Point2Z) InScreen(width, height int) bool {
	return p.DropZ().InScreen(width, height)
}

// String formats p as "(x, y, z)".
func (p Point2Z) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}
