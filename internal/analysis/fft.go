package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns |X_k| for k < n/2 of the mean-removed series.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	mean := stat.Mean(data, nil)
	x := make([]float64, len(data))
	for i, v := range data {
		x[i] = v - mean
	}

	coef := fft.FFTReal(x)
	ps := make([]float64, len(coef)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coef[i])
	}
	return ps
}

// Peak is one spectral line.
type Peak struct {
	Frequency float64 // cycles per unit time
	Period    float64
	Power     float64
}

// DominantFrequency returns the strongest non-zero frequency of xs sampled at
// the uniform times t.
func DominantFrequency(t, xs []float64) (Peak, bool) {
	n := min(len(t), len(xs))
	if n < 4 {
		return Peak{}, false
	}
	dt := (t[n-1] - t[0]) / float64(n-1)
	if !(dt > 0) {
		return Peak{}, false
	}
	ps := PowerSpectrum(xs[:n])

	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	if ps[best] == 0 {
		return Peak{}, false
	}
	f := float64(best) / (float64(n) * dt)
	return Peak{Frequency: f, Period: 1 / f, Power: ps[best]}, true
}

// Unwrap removes 2π jumps from an angle series so its spectrum reflects the
// underlying drift and oscillation.
func Unwrap(xs []float64) []float64 {
	out := make([]float64, len(xs))
	var offset float64
	for i, x := range xs {
		if i > 0 {
			d := x - xs[i-1]
			if d > math.Pi {
				offset -= twoPi
			} else if d < -math.Pi {
				offset += twoPi
			}
		}
		out[i] = x + offset
	}
	return out
}
