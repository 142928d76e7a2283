package terrain

import (
	"github.com/Faultbox/ascii3d/internal/engine/scene"
	"github.com/Faultbox/ascii3d/pkg/math"
)

// Border is the outline character of every terrain triangle.
const Border = ' '

// Mesh splits each grid quad into two triangles filled with fill.
func (h *Heightmap) Mesh(fill byte) []scene.Shape {
	shapes := make([]scene.Shape, 0, 2*(h.Size-1)*(h.Size-1))
	for z := 0; z < h.Size-1; z++ {
		for x := 0; x < h.Size-1; x++ {
			shapes = append(shapes,
				&scene.Triangle3{
					Points: [3]math.Point3{h.vertex(x, z), h.vertex(x+1, z), h.vertex(x, z+1)},
					Fill:   fill,
					Border: Border,
				},
				&scene.Triangle3{
					Points: [3]math.Point3{h.vertex(x+1, z+1), h.vertex(x+1, z), h.vertex(x, z+1)},
					Fill:   fill,
					Border: Border,
				},
			)
		}
	}
	return shapes
}

func (h *Heightmap) vertex(x, z int) math.Point3 {
	return math.Point3{
		X: float64(x) * h.Spacing,
		Y: float64(h.Heights[z][x]),
		Z: float64(z) * h.Spacing,
	}
}
