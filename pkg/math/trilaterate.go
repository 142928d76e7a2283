package math

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerateAnchors is returned when the anchors are coplanar (or otherwise
// collinear enough) that the position cannot be recovered.
var ErrDegenerateAnchors = errors.New("trilaterate: anchors do not span 3D space")

// Trilaterate recovers the point whose distances to the four anchors are dist.
//
// Each sphere equation |x-a_i|^2 = d_i^2 minus the first one gives a linear
// equation 2(a_i-a_0).x = d_0^2 - d_i^2 + |a_i|^2 - |a_0|^2, so three such
// rows determine x.
func Trilaterate(anchors [4]Point3, dist [4]float64) (Point3, error) {
	a0 := r3.Vec(anchors[0])
	n0 := r3.Dot(a0, a0)

	data := make([]float64, 0, 9)
	rhs := make([]float64, 0, 3)
	for i := 1; i < 4; i++ {
		ai := r3.Vec(anchors[i])
		row := r3.Scale(2, r3.Sub(ai, a0))
		data = append(data, row.X, row.Y, row.Z)
		rhs = append(rhs, dist[0]*dist[0]-dist[i]*dist[i]+r3.Dot(ai, ai)-n0)
	}

	a := mat.NewDense(3, 3, data)
	if mat.Det(a) == 0 {
		return Point3{}, ErrDegenerateAnchors
	}

	var x mat.VecDense
	if err := x.SolveVec(a, mat.NewVecDense(3, rhs)); err != nil {
		return Point3{}, fmt.Errorf("trilaterate: %w", err)
	}
	return Point3{X: x.AtVec(0), Y: x.AtVec(1), Z: x.AtVec(2)}, nil
}
