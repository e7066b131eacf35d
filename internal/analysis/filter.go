package analysis

import (
	"errors"
	"sort"
)

// ErrBox indicates an even or non-positive median filter window.
var ErrBox = errors.New("analysis: median filter box must be odd and positive")

// Padding selects how MedianFilter extends the series past its ends.
type Padding int

const (
	// PadZero pads with zeros, as scipy.signal.medfilt does.
	PadZero Padding = iota
	// PadReflect mirrors the series about its edges (d c b a | a b c d | d c b a),
	// as scipy.ndimage.median_filter does.
	PadReflect
)

// MedianFilter returns the running median over an odd window of box samples.
// The series is zero padded at both ends.
func MedianFilter(xs []float64, box int) ([]float64, error) {
	return MedianFilterPad(xs, box, PadZero)
}

// MedianFilterPad is MedianFilter with the edge padding given by pad.
func MedianFilterPad(xs []float64, box int, pad Padding) ([]float64, error) {
	if box < 1 || box%2 == 0 {
		return nil, ErrBox
	}
	n := len(xs)
	half := box / 2
	out := make([]float64, n)
	win := make([]float64, box)
	for i := range xs {
		for k := 0; k < box; k++ {
			j := i - half + k
			switch {
			case j >= 0 && j < n:
				win[k] = xs[j]
			case pad == PadReflect:
				win[k] = xs[reflect(j, n)]
			default:
				win[k] = 0
			}
		}
		sort.Float64s(win)
		out[i] = win[half]
	}
	return out, nil
}

// reflect folds an out of range index back into [0, n), repeating the
// mirror for windows wider than the series.
func reflect(j, n int) int {
	period := 2 * n
	j %= period
	if j < 0 {
		j += period
	}
	if j >= n {
		j = period - 1 - j
	}
	return j
}

// PrecessionRate returns the median-filtered forward difference of phi with
// the last rate repeated so the result matches len(t). The time step is
// taken from the first interval and the filter edges are reflect padded.
func PrecessionRate(t, phi []float64, box int) ([]float64, error) {
	n := min(len(t), len(phi))
	if n < 2 {
		return make([]float64, n), nil
	}
	dt := t[1] - t[0]
	rate := make([]float64, n)
	for i := 0; i < n-1; i++ {
		rate[i] = (phi[i+1] - phi[i]) / dt
	}
	rate[n-1] = rate[n-2]
	return MedianFilterPad(rate, box, PadReflect)
}
