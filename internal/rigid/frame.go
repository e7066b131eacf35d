// Package rigid computes rotational diagnostics of the resolved body from a
// single state sample: the principal-axis frame of its inertia tensor, the
// tilt of spin and angular momentum against those axes, Andoyer-Deprit spin
// rates and body orientation angles.
package rigid

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/vec"
)

// Frame is the principal-axis frame at one step. Max, Min and Med are the
// unit eigenvectors of the largest, smallest and middle moments I3 >= I2 >= I1.
// Eigenvector signs are arbitrary, and within a degenerate pair so is the
// direction.
type Frame struct {
	Max, Min, Med vec.Vec3
	I3, I2, I1    float64
}

// PrincipalFrame diagonalizes the inertia tensor.
func PrincipalFrame(in dynamo.Inertia) (Frame, error) {
	m := in.Matrix()
	for _, c := range m {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Frame{}, ErrEigen
		}
	}
	sym := mat.NewSymDense(3, m)
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return Frame{}, ErrEigen
	}
	w := es.Values(nil)
	var v mat.Dense
	es.VectorsTo(&v)

	idx := []int{0, 1, 2}
	sort.SliceStable(idx, func(a, b int) bool { return w[idx[a]] < w[idx[b]] })
	jmin, jmed, jmax := idx[0], idx[1], idx[2]

	col := func(j int) vec.Vec3 {
		return vec.Vec3{X: v.At(0, j), Y: v.At(1, j), Z: v.At(2, j)}
	}
	return Frame{
		Max: col(jmax),
		Min: col(jmin),
		Med: col(jmed),
		I3:  w[jmax],
		I2:  w[jmed],
		I1:  w[jmin],
	}, nil
}

// Moments returns the ordered principal moments I3 >= I2 >= I1.
func Moments(in dynamo.Inertia) (i3, i2, i1 float64, err error) {
	f, err := PrincipalFrame(in)
	if err != nil {
		return 0, 0, 0, err
	}
	return f.I3, f.I2, f.I1, nil
}

// Align flips the sign of each axis of f that points away from the same axis
// of prev, so a sequence of frames keeps a consistent orientation. Axis
// identity is not changed: when moments cross, the axes still swap.
func Align(prev, f Frame) Frame {
	flip := func(p, c vec.Vec3) vec.Vec3 {
		if p.Dot(c) < 0 {
			return c.Neg()
		}
		return c
	}
	f.Max = flip(prev.Max, f.Max)
	f.Min = flip(prev.Min, f.Min)
	f.Med = flip(prev.Med, f.Med)
	return f
}
