package metrics

import "math"

// DefaultTumbleThreshold is the non-principal angle above which a sample
// counts as tumbling: 10 degrees.
const DefaultTumbleThreshold = 10 * math.Pi / 180

// Series is the subset of an analysed run the summary metrics read.
type Series struct {
	Time []float64
	ETot []float64
	DEDt []float64
	Tilt []float64 // non-principal angle J, radians
}

// Summarize evaluates the run metrics over s.
func Summarize(s Series) map[string]float64 {
	drift := NewEnergyDrift()
	rate := NewMeanAbs("mean_abs_dedt")
	principal := NewStability("principal_fraction", DefaultTumbleThreshold)

	Feed(drift, s.Time, s.ETot)
	Feed(rate, s.Time, s.DEDt)
	Feed(principal, s.Time, s.Tilt)

	out := make(map[string]float64, 3)
	for _, m := range []Metric{drift, rate, principal} {
		out[m.Name()] = m.Value()
	}
	return out
}
