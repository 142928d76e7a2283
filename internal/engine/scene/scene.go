// Package scene holds the primitive types of a scene and assembles frames
// from them: projection through a camera, depth ordering and rasterization.
package scene

import (
	"fmt"

	"github.com/Faultbox/ascii3d/internal/engine/camera"
	"github.com/Faultbox/ascii3d/internal/engine/raster"
	"github.com/Faultbox/ascii3d/pkg/math"
)

// Axis selects a rotation axis.
type Axis int

// Rotation axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Render projects every shape through cam and rasterizes it, in slice order,
// into a fresh screen. Occlusion is resolved by the screen's depth buffer.
func Render(shapes []Shape, cam *camera.Camera) *raster.Screen {
	screen := raster.NewScreen()
	for _, s := range shapes {
		switch s := s.(type) {
		case *Line3:
			s.Project(cam).Draw(screen)
		case *Triangle3:
			s.Project(cam).Draw(screen)
		default:
			panic(fmt.Sprintf("scene: unknown shape %T", s))
		}
	}
	return screen
}

// RenderFlat draws without a depth buffer: shapes are ordered farthest first
// and painted over each other into a flat grid. The input slice is left in
// its original order.
func RenderFlat(shapes []Shape, cam *camera.Camera) *raster.Grid {
	ordered := make([]Shape, len(shapes))
	copy(ordered, shapes)
	SortByFarthest(ordered, cam)

	grid := raster.NewGrid()
	for _, s := range ordered {
		switch s := s.(type) {
		case *Line3:
			s.Project(cam).DrawFlat(grid)
		case *Triangle3:
			s.Project(cam).DrawFlat(grid)
		default:
			panic(fmt.Sprintf("scene: unknown shape %T", s))
		}
	}
	return grid
}

// SortByFarthest orders shapes by the distance from the camera position to
// their centroid, farthest first. The sort is a stable insertion sort, so
// shapes at equal distance keep their relative order.
func SortByFarthest(shapes []Shape, cam *camera.Camera) {
	dist := make([]float64, len(shapes))
	for i, s := range shapes {
		dist[i] = Centroid(s).Distance(cam.Pos)
	}

	for i := 1; i < len(shapes); i++ {
		for j := i; j > 0 && dist[j] > dist[j-1]; j-- {
			shapes[j], shapes[j-1] = shapes[j-1], shapes[j]
			dist[j], dist[j-1] = dist[j-1], dist[j]
		}
	}
}

// Rotate rotates every shape in place about center around axis. It is used
// to move the world while the camera stays put.
func Rotate(shapes []Shape, axis Axis, center math.Point3, rad float64) {
	var rotate func(*math.Point3, math.Point3, float64)
	switch axis {
	case AxisX:
		rotate = (*math.Point3).RotateXInPlace
	case AxisY:
		rotate = (*math.Point3).RotateYInPlace
	case AxisZ:
		rotate = (*math.Point3).RotateZInPlace
	default:
		panic(fmt.Sprintf("scene: unknown axis %d", axis))
	}

	for _, s := range shapes {
		for _, p := range points(s) {
			rotate(p, center, rad)
		}
	}
}

// Translate moves every shape in place by offset.
func Translate(shapes []Shape, offset math.Point3) {
	for _, s := range shapes {
		for _, p := range points(s) {
			*p = p.Add(offset)
		}
	}
}

// Bounds returns the axis-aligned bounding box of all shapes. ok is false for
// an empty scene.
func Bounds(shapes []Shape) (lo, hi math.Point3, ok bool) {
	for _, s := range shapes {
		for _, p := range points(s) {
			if !ok {
				lo, hi, ok = *p, *p, true
				continue
			}
			lo = math.Point3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
			hi = math.Point3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
		}
	}
	return lo, hi, ok
}
