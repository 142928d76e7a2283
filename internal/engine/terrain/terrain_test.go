package terrain

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/ascii3d/internal/engine/scene"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(DefaultSize, DefaultSpacing, rand.New(rand.NewSource(7)))
	b := Generate(DefaultSize, DefaultSpacing, rand.New(rand.NewSource(7)))

	for z := range a.Heights {
		for x := range a.Heights[z] {
			if a.Heights[z][x] != b.Heights[z][x] {
				t.Fatalf("height (%d, %d) differs between runs with the same seed", x, z)
			}
		}
	}
}

func TestGenerateFloodSteps(t *testing.T) {
	h := Generate(12, 10, rand.New(rand.NewSource(42)))

	if h.Heights[6][6] != 0 {
		t.Errorf("center height = %d, want 0", h.Heights[6][6])
	}

	// Every cell but the center was reached from a neighbour, so at least one
	// neighbour is within a single int8/4 step.
	for z := 0; z < h.Size; z++ {
		for x := 0; x < h.Size; x++ {
			if x == 6 && z == 6 {
				continue
			}
			ok := false
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nx, nz := x+d[0], z+d[1]
				if nx < 0 || nz < 0 || nx >= h.Size || nz >= h.Size {
					continue
				}
				if diff := h.Heights[z][x] - h.Heights[nz][nx]; diff >= -32 && diff <= 31 {
					ok = true
				}
			}
			if !ok {
				t.Errorf("cell (%d, %d) has no neighbour within one step", x, z)
			}
		}
	}
}

func TestGenerateMinimumSize(t *testing.T) {
	h := Generate(0, 1, rand.New(rand.NewSource(1)))
	if h.Size != 2 || len(h.Heights) != 2 {
		t.Errorf("size = %d, want 2", h.Size)
	}
}

func TestMesh(t *testing.T) {
	h := &Heightmap{
		Heights: [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}},
		Size:    3,
		Spacing: 150,
	}
	shapes := h.Mesh('.')

	if len(shapes) != 8 {
		t.Fatalf("got %d triangles, want 8", len(shapes))
	}

	first := shapes[0].(*scene.Triangle3)
	if first.Fill != '.' || first.Border != Border {
		t.Errorf("fill/border = %q/%q", first.Fill, first.Border)
	}
	if p := first.Points[1]; p.X != 150 || p.Y != 1 || p.Z != 0 {
		t.Errorf("second vertex = %v, want (150, 1, 0)", p)
	}

	second := shapes[1].(*scene.Triangle3)
	if p := second.Points[0]; p.X != 150 || p.Y != 4 || p.Z != 150 {
		t.Errorf("second triangle first vertex = %v, want (150, 4, 150)", p)
	}

	last := shapes[7].(*scene.Triangle3)
	if p := last.Points[0]; p.X != 300 || p.Y != 8 || p.Z != 300 {
		t.Errorf("last triangle first vertex = %v, want (300, 8, 300)", p)
	}
}

func TestHeightAt(t *testing.T) {
	h := &Heightmap{
		Heights: [][]int{{0, 10}, {20, 30}},
		Size:    2,
		Spacing: 100,
	}

	tests := []struct {
		name string
		x, z float64
		want float64
	}{
		{"origin", 0, 0, 0},
		{"far corner", 100, 100, 30},
		{"x edge", 100, 0, 10},
		{"middle", 50, 50, 15},
		{"clamped below", -500, -500, 0},
		{"clamped above", 900, 900, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.HeightAt(tt.x, tt.z); got != tt.want {
				t.Errorf("HeightAt(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
			}
		})
	}

	if x, z := h.Center(); x != 50 || z != 50 {
		t.Errorf("Center = %v, %v", x, z)
	}
}
