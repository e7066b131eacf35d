package analysis

import (
	"math"

	"github.com/san-kum/orbspin/internal/kepler"
	"gonum.org/v1/gonum/stat"
)

const twoPi = 2 * math.Pi

// Wrap2Pi reduces an angle to [0, 2π).
func Wrap2Pi(x float64) float64 {
	z := math.Mod(x, twoPi)
	if z < 0 {
		z += twoPi
	}
	return z
}

func Wrap2PiAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Wrap2Pi(x)
	}
	return out
}

// LongitudeOfPeriapsis returns varpi = Ω + ω for each element set.
func LongitudeOfPeriapsis(els []kepler.OrbitalElements) []float64 {
	out := make([]float64, len(els))
	for i, el := range els {
		out[i] = el.LongNode + el.ArgPeri
	}
	return out
}

// MeanLongitude returns λ = Ω + ω + M for each element set.
func MeanLongitude(els []kepler.OrbitalElements) []float64 {
	out := make([]float64, len(els))
	for i, el := range els {
		out[i] = el.LongNode + el.ArgPeri + el.MeanAnomaly
	}
	return out
}

func semiMajor(els []kepler.OrbitalElements) []float64 {
	out := make([]float64, len(els))
	for i, el := range els {
		out[i] = el.SemiMajorAxis
	}
	return out
}

// ResonantAngle returns the j:(j-dj) resonant argument wrapped to [0, 2π).
// The outer orbit is the one with the larger mean semi-major axis:
// j·λ_out - dj·λ_in - dj·ϖ_out when e0 is outer, otherwise
// j·λ1 - dj·λ0 - (j-dj)·ϖ1.
func ResonantAngle(j, dj float64, e0, e1 []kepler.OrbitalElements) []float64 {
	n := min(len(e0), len(e1))
	e0, e1 = e0[:n], e1[:n]
	l0, l1 := MeanLongitude(e0), MeanLongitude(e1)
	w0, w1 := LongitudeOfPeriapsis(e0), LongitudeOfPeriapsis(e1)

	out := make([]float64, n)
	outer0 := stat.Mean(semiMajor(e0), nil) > stat.Mean(semiMajor(e1), nil)
	for i := range out {
		if outer0 {
			out[i] = Wrap2Pi(j*l0[i] - dj*l1[i] - dj*w0[i])
		} else {
			out[i] = Wrap2Pi(j*l1[i] - dj*l0[i] - (j-dj)*w1[i])
		}
	}
	return out
}

// Combine returns Wrap2Pi(Σ c_k·xs_k[i]) for each index, e.g. the spin-orbit
// angle φEu - 2λ0 + λ1.
func Combine(coef []float64, xs ...[]float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	n := len(xs[0])
	for _, x := range xs[1:] {
		n = min(n, len(x))
	}
	out := make([]float64, n)
	for i := range out {
		var s float64
		for k, x := range xs {
			s += coef[k] * x[i]
		}
		out[i] = Wrap2Pi(s)
	}
	return out
}

// Window returns the index range [lo, hi) of the sorted times t that fall in
// [tmin, tmax]. tmax <= 0 means the end of the series.
func Window(t []float64, tmin, tmax float64) (lo, hi int) {
	hi = len(t)
	for lo < hi && t[lo] < tmin {
		lo++
	}
	if tmax > 0 {
		for hi > lo && t[hi-1] > tmax {
			hi--
		}
	}
	return lo, hi
}
