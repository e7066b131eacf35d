package rigid

import (
	"math"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/vec"
)

// Fold reduces an angle to the angle between two lines, in [0, π/2]:
// θ is taken modulo π, then replaced by π-θ when that is smaller.
func Fold(theta float64) float64 {
	x := math.Mod(theta, math.Pi)
	if x < 0 {
		x += math.Pi
	}
	if x > math.Pi/2 {
		x = math.Pi - x
	}
	return x
}

// parallelTol bounds |Max × L̂| below which l is treated as undefined.
const parallelTol = 1e-12

// lineAngle is the folded angle between two unit vectors.
func lineAngle(a, b vec.Vec3) float64 {
	return Fold(math.Acos(vec.Clamp(a.Dot(b))))
}

// Tilts holds the folded angles between the principal axes and the spin
// (Spin*) and angular momentum (L*) directions. LMax is the non-principal
// rotation angle J.
type Tilts struct {
	SpinMax, LMax float64
	SpinMin, LMin float64
	SpinMed, LMed float64
}

// CheckSpin reports the precondition every tilt and rate calculation relies
// on: finite, non-zero angular velocity and angular momentum.
func CheckSpin(s dynamo.Sample) error {
	if l := s.Omega.Len(); l == 0 || math.IsNaN(l) {
		return ErrZeroSpin
	}
	if l := s.L.Len(); l == 0 || math.IsNaN(l) {
		return ErrZeroAngMom
	}
	return nil
}

// Tilt computes the six axis/spin angles of s in frame f. s must satisfy
// CheckSpin.
func Tilt(s dynamo.Sample, f Frame) Tilts {
	no := s.Omega.Unit()
	nl := s.L.Unit()
	return Tilts{
		SpinMax: lineAngle(f.Max, no),
		LMax:    lineAngle(f.Max, nl),
		SpinMin: lineAngle(f.Min, no),
		LMin:    lineAngle(f.Min, nl),
		SpinMed: lineAngle(f.Med, no),
		LMed:    lineAngle(f.Med, nl),
	}
}

// ConjugateAngle returns the Andoyer-Deprit angle l conjugate to L, folded
// to [0, π/2]: the angle between the minimum axis and the node of the
// max-axis plane on the plane normal to L. It is NaN when L lies along the
// max axis, where l is undefined.
func ConjugateAngle(L vec.Vec3, f Frame) float64 {
	c := f.Max.Cross(L.Unit())
	if l := c.Len(); !(l > parallelTol) {
		return math.NaN()
	}
	return lineAngle(f.Min, c.Unit())
}
