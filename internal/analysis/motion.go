package analysis

import (
	"math"

	"github.com/san-kum/orbspin/internal/kepler"
	"gonum.org/v1/gonum/stat"
)

// MeanMotion returns sqrt(gm)·|a|^-1.5 for each element set.
func MeanMotion(gm float64, els []kepler.OrbitalElements) []float64 {
	out := make([]float64, len(els))
	for i, el := range els {
		out[i] = kepler.MeanMotion(gm, el.SemiMajorAxis)
	}
	return out
}

// PeriodRatio returns (a_i/a_{i-1})^1.5·sqrt(m0/(m0+mi)), inverted when its
// mean is below 1 so the ratio always reads as outer over inner.
func PeriodRatio(m0, mi float64, ei, eprev []kepler.OrbitalElements) []float64 {
	n := min(len(ei), len(eprev))
	mrat := math.Sqrt(m0 / (m0 + mi))
	out := make([]float64, n)
	for k := range out {
		out[k] = math.Pow(ei[k].SemiMajorAxis/eprev[k].SemiMajorAxis, 1.5) * mrat
	}
	if n > 0 && stat.Mean(out, nil) < 1 {
		for k := range out {
			out[k] = 1 / out[k]
		}
	}
	return out
}

// PrecessionFrequencyRatio is the J2 nodal precession rate over the mean
// motion, 1.5·J2·(R/a)², for a primary of radius r.
func PrecessionFrequencyRatio(j2, r float64, els []kepler.OrbitalElements) []float64 {
	out := make([]float64, len(els))
	for i, el := range els {
		q := r / el.SemiMajorAxis
		out[i] = 1.5 * j2 * q * q
	}
	return out
}

// SpinResonances returns the lines n·k/2 for k = 0..kmax+1 that bound a spin
// series, where kmax = ⌊2·max(spin)/min(n)⌋.
func SpinResonances(n, spin []float64) [][]float64 {
	if len(n) == 0 || len(spin) == 0 {
		return nil
	}
	nmin, smax := n[0], spin[0]
	for _, v := range n {
		nmin = math.Min(nmin, v)
	}
	for _, v := range spin {
		smax = math.Max(smax, v)
	}
	if !(nmin > 0) {
		return nil
	}
	kmax := int(2 * smax / nmin)
	lines := make([][]float64, kmax+2)
	for k := range lines {
		lines[k] = make([]float64, len(n))
		for i, v := range n {
			lines[k][i] = v * float64(k) / 2
		}
	}
	return lines
}
