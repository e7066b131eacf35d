package dynamo

import (
	"math"
	"time"

	"github.com/san-kum/orbspin/internal/vec"
)

// Inertia holds the six independent components of a symmetric inertia tensor.
type Inertia struct {
	Ixx, Iyy, Izz float64
	Ixy, Iyz, Ixz float64
}

// Matrix returns the tensor as a row-major 3x3 slice.
func (in Inertia) Matrix() []float64 {
	return []float64{
		in.Ixx, in.Ixy, in.Ixz,
		in.Ixy, in.Iyy, in.Iyz,
		in.Ixz, in.Iyz, in.Izz,
	}
}

// Sample is the state of the resolved body at one output step.
type Sample struct {
	Pos   vec.Vec3
	Vel   vec.Vec3
	Omega vec.Vec3 // spin angular velocity
	L     vec.Vec3 // spin angular momentum
	I     Inertia
}

func (s Sample) IsValid() bool {
	if !s.Pos.IsFinite() || !s.Vel.IsFinite() || !s.Omega.IsFinite() || !s.L.IsFinite() {
		return false
	}
	for _, c := range s.I.Matrix() {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ResolvedSeries is the extended body's output: parallel per-step slices.
type ResolvedSeries struct {
	Time     []float64
	Samples  []Sample
	KERot    []float64
	PESpring []float64
	PEGrav   []float64
	ETot     []float64
	DEDt     []float64
}

func (r *ResolvedSeries) Len() int { return len(r.Time) }

// Validate checks that every per-step slice has the same length.
func (r *ResolvedSeries) Validate() error {
	n := len(r.Time)
	for _, m := range []int{len(r.Samples), len(r.KERot), len(r.PESpring), len(r.PEGrav), len(r.ETot), len(r.DEDt)} {
		if m != n {
			return ErrLengthMismatch
		}
	}
	return nil
}

// PointMass is one point-mass trajectory.
type PointMass struct {
	Time []float64
	Pos  []vec.Vec3
	Vel  []vec.Vec3
	Mass float64
}

func (p *PointMass) Len() int { return len(p.Time) }

func (p *PointMass) Validate() error {
	if len(p.Pos) != len(p.Time) || len(p.Vel) != len(p.Time) {
		return ErrLengthMismatch
	}
	return nil
}

// Collection is one resolved body plus its point masses. Points[0] is the
// central mass that every relative quantity refers to.
type Collection struct {
	Resolved ResolvedSeries
	Points   []PointMass
}

// Central returns the reference point mass.
func (c *Collection) Central() *PointMass { return &c.Points[0] }

// Masses returns the point-mass masses in index order.
func (c *Collection) Masses() []float64 {
	m := make([]float64, len(c.Points))
	for i := range c.Points {
		m[i] = c.Points[i].Mass
	}
	return m
}

// Validate enforces the collection invariants: a central mass exists and all
// bodies share the same number of steps.
func (c *Collection) Validate() error {
	if len(c.Points) == 0 {
		return ErrNoCentralMass
	}
	if err := c.Resolved.Validate(); err != nil {
		return err
	}
	n := c.Resolved.Len()
	if n == 0 {
		return ErrEmptySeries
	}
	for i := range c.Points {
		if err := c.Points[i].Validate(); err != nil {
			return err
		}
		if c.Points[i].Len() != n {
			return ErrLengthMismatch
		}
	}
	return nil
}

// Observer is notified after each pipeline stage.
type Observer interface {
	OnStage(stage string, samples int, elapsed time.Duration)
}

// NopObserver discards stage notifications.
type NopObserver struct{}

func (NopObserver) OnStage(string, int, time.Duration) {}
