// Package kepler converts between Cartesian two-body state vectors and
// osculating Keplerian elements.
package kepler

import (
	"errors"
	"math"

	"github.com/san-kum/orbspin/internal/vec"
)

const (
	twoPi = 2 * math.Pi

	// Below these the node line or the periapsis direction is undefined and
	// the angle falls back to the next reference direction.
	nodeTol = 1e-12
	eccTol  = 1e-12
)

var (
	// ErrDegenerate indicates a radial or zero-length state with no orbit plane.
	ErrDegenerate = errors.New("kepler: degenerate state (zero radius or angular momentum)")

	// ErrUnbound indicates elements that Cartesian cannot place (e >= 1).
	ErrUnbound = errors.New("kepler: cartesian conversion requires an elliptic orbit")
)

// OrbitalElements is one osculating element set. Angles are in radians,
// wrapped to [0, 2π). For hyperbolic orbits SemiMajorAxis is negative and
// MeanAnomaly is the hyperbolic mean anomaly.
type OrbitalElements struct {
	SemiMajorAxis float64 `json:"a"`
	Eccentricity  float64 `json:"e"`
	Inclination   float64 `json:"i"`
	LongNode      float64 `json:"long_node"`
	ArgPeri       float64 `json:"arg_peri"`
	MeanAnomaly   float64 `json:"mean_anomaly"`
}

// Elements converts a relative position and velocity into osculating
// elements for the gravitational parameter gm.
//
// Near-equatorial orbits take the node on the x axis; near-circular orbits
// put periapsis at the node, so the mean anomaly carries the argument of
// latitude.
func Elements(gm float64, r, v vec.Vec3) (OrbitalElements, error) {
	rl := r.Len()
	h := r.Cross(v)
	hl := h.Len()
	if rl == 0 || hl == 0 || gm == 0 {
		return OrbitalElements{}, ErrDegenerate
	}

	v2 := v.Dot(v)
	rv := r.Dot(v)
	energy := v2/2 - gm/rl
	a := -gm / (2 * energy)

	// e = ((v²-μ/r) r - (r·v) v) / μ
	ev := r.Scale((v2 - gm/rl) / gm).Sub(v.Scale(rv / gm))
	e := ev.Len()

	inc := math.Acos(vec.Clamp(h.Z / hl))

	node := vec.Vec3{X: -h.Y, Y: h.X}
	nl := node.Len()
	equatorial := nl < nodeTol*hl
	if equatorial {
		node = vec.Vec3{X: 1}
		nl = 1
	}
	longNode := 0.0
	if !equatorial {
		longNode = math.Atan2(node.Y, node.X)
	}

	// Periapsis direction, and the in-plane unit vector 90° ahead of it.
	var p vec.Vec3
	if e > eccTol {
		p = ev.Scale(1 / e)
	} else {
		p = node.Scale(1 / nl)
	}
	q := h.Cross(p).Scale(1 / hl)

	argPeri := 0.0
	if e > eccTol {
		nu := node.Scale(1 / nl)
		argPeri = math.Atan2(nu.Cross(p).Dot(h)/hl, nu.Dot(p))
	}

	nu := math.Atan2(r.Dot(q), r.Dot(p))

	var mean float64
	switch {
	case e < 1:
		E := 2 * math.Atan(math.Sqrt((1-e)/(1+e))*math.Tan(nu/2))
		mean = E - e*math.Sin(E)
	case e > 1:
		F := 2 * math.Atanh(math.Sqrt((e-1)/(e+1))*math.Tan(nu/2))
		mean = e*math.Sinh(F) - F
	default:
		mean = nu
	}

	el := OrbitalElements{
		SemiMajorAxis: a,
		Eccentricity:  e,
		Inclination:   inc,
		LongNode:      wrap(longNode),
		ArgPeri:       wrap(argPeri),
		MeanAnomaly:   mean,
	}
	if e < 1 {
		el.MeanAnomaly = wrap(mean)
	}
	return el, nil
}

// Cartesian is the inverse of Elements for elliptic orbits.
func Cartesian(gm float64, el OrbitalElements) (r, v vec.Vec3, err error) {
	e := el.Eccentricity
	a := el.SemiMajorAxis
	if e < 0 || e >= 1 || a <= 0 {
		return vec.Vec3{}, vec.Vec3{}, ErrUnbound
	}

	E := EccentricAnomaly(el.MeanAnomaly, e)
	cosE, sinE := math.Cos(E), math.Sin(E)
	b := math.Sqrt(1 - e*e)

	x := a * (cosE - e)
	y := a * b * sinE
	n := math.Sqrt(gm / (a * a * a))
	rdot := 1 - e*cosE
	vx := -a * n * sinE / rdot
	vy := a * n * b * cosE / rdot

	cO, sO := math.Cos(el.LongNode), math.Sin(el.LongNode)
	cw, sw := math.Cos(el.ArgPeri), math.Sin(el.ArgPeri)
	ci, si := math.Cos(el.Inclination), math.Sin(el.Inclination)

	r11 := cO*cw - sO*sw*ci
	r12 := -cO*sw - sO*cw*ci
	r21 := sO*cw + cO*sw*ci
	r22 := -sO*sw + cO*cw*ci
	r31 := sw * si
	r32 := cw * si

	r = vec.Vec3{X: r11*x + r12*y, Y: r21*x + r22*y, Z: r31*x + r32*y}
	v = vec.Vec3{X: r11*vx + r12*vy, Y: r21*vx + r22*vy, Z: r31*vx + r32*vy}
	return r, v, nil
}

// EccentricAnomaly solves Kepler's equation M = E - e sin E by Newton-Raphson.
func EccentricAnomaly(mean, e float64) float64 {
	M := wrap(mean)
	E := M
	if e > 0.8 {
		E = math.Pi
	}
	for i := 0; i < 50; i++ {
		d := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= d
		if math.Abs(d) < 1e-14 {
			break
		}
	}
	return E
}

// MeanMotion returns sqrt(gm/|a|³).
func MeanMotion(gm, a float64) float64 {
	a = math.Abs(a)
	return math.Sqrt(gm / (a * a * a))
}

func wrap(x float64) float64 {
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	return x
}
