// Package metrics summarizes an analysed run. Scalar run metrics follow the
// Observe/Value/Reset pattern; the Recorder exposes stage timings and the
// run metrics in Prometheus text format.
package metrics

import "math"

// Metric accumulates one scalar over a sampled series.
type Metric interface {
	Name() string
	Observe(t, v float64)
	Value() float64
	Reset()
}

// EnergyDrift is the largest relative deviation of a series from its first
// value, max |E - E0| / |E0|.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(t, v float64) {
	if e.samples == 0 {
		e.initial = v
	}
	e.samples++
	if e.initial != 0 {
		e.maxDrift = math.Max(e.maxDrift, math.Abs(v-e.initial)/math.Abs(e.initial))
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() { *e = EnergyDrift{} }

// MeanAbs is the mean absolute value, used for the dissipation rate dE/dt.
type MeanAbs struct {
	name    string
	sum     float64
	samples int
}

func NewMeanAbs(name string) *MeanAbs { return &MeanAbs{name: name} }

func (m *MeanAbs) Name() string { return m.name }

func (m *MeanAbs) Observe(t, v float64) {
	m.sum += math.Abs(v)
	m.samples++
}

func (m *MeanAbs) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanAbs) Reset() {
	m.sum = 0
	m.samples = 0
}

// Stability is the fraction of samples with |v| within threshold. Fed the
// non-principal angle J it measures how long the body spins about its
// maximum axis.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(name string, threshold float64) *Stability {
	return &Stability{name: name, threshold: threshold}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) Observe(t, v float64) {
	s.samples++
	if math.Abs(v) > s.threshold || math.IsNaN(v) {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

// Feed observes every (t[i], v[i]) pair.
func Feed(m Metric, t, v []float64) {
	for i := range v {
		m.Observe(t[i], v[i])
	}
}
