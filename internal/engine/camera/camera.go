// Package camera provides the viewer camera and the perspective projection
// onto the character grid.
package camera

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/ascii3d/internal/engine/raster"
	"github.com/Faultbox/ascii3d/pkg/math"
)

// Projection constants.
const (
	// NearPlane is the camera-relative depth at or below which points are
	// not projected.
	NearPlane = 110.0

	// Focal is the focal distance; it is also the offset subtracted from the
	// depth in the perspective divide.
	Focal = 100.0
)

// Default movement increments used by the key bindings.
const (
	MoveStep  = 10.0
	ClimbStep = 3.0
	TurnStep  = gomath.Pi / 36
)

// Camera holds the viewer position and rotation. Rot.X is the yaw (applied
// around the Y axis) and Rot.Y is the pitch (applied around the X axis), both
// in radians. Rendering only reads the camera.
type Camera struct {
	Pos math.Point3
	Rot math.Point3
}

// New creates a camera at pos looking down +Z.
func New(pos math.Point3) *Camera {
	return &Camera{Pos: pos}
}

// View moves a world point into camera orientation: yaw first, then pitch,
// both about the camera position.
func (c *Camera) View(p math.Point3) math.Point3 {
	return p.RotateY(c.Pos, c.Rot.X).RotateX(c.Pos, c.Rot.Y)
}

// Project maps a point that is already in camera orientation onto the screen.
// ok is false when the point is at or behind the near plane.
func (c *Camera) Project(p math.Point3) (pt math.Point2Z, ok bool) {
	rel := p.Sub(c.Pos)
	if rel.Z <= NearPlane {
		return math.Point2Z{}, false
	}

	scale := Focal / (rel.Z - Focal)
	return math.Point2Z{
		X: int(gomath.Round(scale*rel.X)) + raster.Width/2,
		Y: int(gomath.Round(scale*rel.Y)) + raster.Height/2,
		Z: int(rel.Z),
	}, true
}

// ProjectView is Project(View(p)), the transform applied to every vertex.
func (c *Camera) ProjectView(p math.Point3) (math.Point2Z, bool) {
	return c.Project(c.View(p))
}

// Move translates the camera relative to its heading on the XZ plane:
// forward along the yaw direction, right perpendicular to it, and up along Y.
func (c *Camera) Move(forward, right, up float64) {
	sin, cos := gomath.Sincos(c.Rot.X)
	c.Pos.X += -forward*sin + right*cos
	c.Pos.Z += forward*cos + right*sin
	c.Pos.Y += up
}

// Rotate adds yaw and pitch (radians) to the camera rotation.
func (c *Camera) Rotate(yaw, pitch float64) {
	c.Rot.X += yaw
	c.Rot.Y += pitch
}

// RotationDegrees returns the rotation in degrees.
func (c *Camera) RotationDegrees() math.Point3 {
	return c.Rot.Degrees()
}

// String formats the pose for the status line.
func (c *Camera) String() string {
	return fmt.Sprintf("POS: %v ROT: %v", c.Pos, c.RotationDegrees())
}
