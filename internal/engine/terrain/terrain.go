// Package terrain generates random rolling height maps and turns them into
// scene triangles.
package terrain

import (
	"math/rand"
)

// Defaults used by the viewer's procedural mode.
const (
	DefaultSize    = 30
	DefaultSpacing = 150.0
)

// Heightmap holds integer heights on a square grid. Heights[z][x] is the
// height at world position (x*Spacing, z*Spacing).
type Heightmap struct {
	Heights [][]int
	Size    int
	Spacing float64
}

type cell struct {
	x, z int
}

// frame is one step of the flood: a cell and the neighbours still to visit.
type frame struct {
	at   cell
	next [4]cell
	i    int
}

// Generate builds a size×size height map. The center cell starts at 0 and a
// randomized depth-first flood visits every other cell, giving each newly
// reached cell its parent's height plus a random int8 divided by 4.
func Generate(size int, spacing float64, rng *rand.Rand) *Heightmap {
	if size < 2 {
		size = 2
	}

	heights := make([][]int, size)
	seen := make([][]bool, size)
	for z := range heights {
		heights[z] = make([]int, size)
		seen[z] = make([]bool, size)
	}

	start := cell{x: size / 2, z: size / 2}
	seen[start.z][start.x] = true
	stack := []frame{newFrame(start, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i == len(top.next) {
			stack = stack[:len(stack)-1]
			continue
		}
		n := top.next[top.i]
		top.i++

		if n.x < 0 || n.x >= size || n.z < 0 || n.z >= size || seen[n.z][n.x] {
			continue
		}
		seen[n.z][n.x] = true
		heights[n.z][n.x] = heights[top.at.z][top.at.x] + int(int8(rng.Intn(256)-128)/4)
		stack = append(stack, newFrame(n, rng))
	}

	return &Heightmap{Heights: heights, Size: size, Spacing: spacing}
}

func newFrame(c cell, rng *rand.Rand) frame {
	f := frame{
		at: c,
		next: [4]cell{
			{x: c.x - 1, z: c.z},
			{x: c.x + 1, z: c.z},
			{x: c.x, z: c.z - 1},
			{x: c.x, z: c.z + 1},
		},
	}
	rng.Shuffle(len(f.next), func(i, j int) {
		f.next[i], f.next[j] = f.next[j], f.next[i]
	})
	return f
}

// HeightAt returns the bilinearly interpolated height at a world position.
// Positions outside the map are clamped to its edge.
func (h *Heightmap) HeightAt(worldX, worldZ float64) float64 {
	fx := clamp(worldX/h.Spacing, 0, float64(h.Size-1))
	fz := clamp(worldZ/h.Spacing, 0, float64(h.Size-1))

	x, z := int(fx), int(fz)
	if x >= h.Size-1 {
		x = h.Size - 2
	}
	if z >= h.Size-1 {
		z = h.Size - 2
	}
	tx, tz := fx-float64(x), fz-float64(z)

	near := float64(h.Heights[z][x])*(1-tx) + float64(h.Heights[z][x+1])*tx
	far := float64(h.Heights[z+1][x])*(1-tx) + float64(h.Heights[z+1][x+1])*tx
	return near*(1-tz) + far*tz
}

// Center returns the world position of the middle of the map.
func (h *Heightmap) Center() (x, z float64) {
	half := float64(h.Size-1) * h.Spacing / 2
	return half, half
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
