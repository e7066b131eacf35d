// Package orbit builds osculating element series of one body relative to
// another from sampled trajectories.
package orbit

import (
	"fmt"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/kepler"
	"github.com/san-kum/orbspin/internal/series"
	"github.com/san-kum/orbspin/internal/vec"
)

// Relative is the state of an observer relative to a reference body.
type Relative struct {
	Pos vec.Vec3
	Vel vec.Vec3
}

// Normal returns the unit orbit normal r × v.
func (r Relative) Normal() vec.Vec3 { return vec.CrossUnit(r.Pos, r.Vel) }

// Relatives differences observer and reference states at stride k.
func Relatives(obsPos, obsVel, refPos, refVel []vec.Vec3, k int) []Relative {
	idx := series.Indices(len(obsPos), k)
	out := make([]Relative, len(idx))
	for i, j := range idx {
		out[i] = Relative{
			Pos: obsPos[j].Sub(refPos[j]),
			Vel: obsVel[j].Sub(refVel[j]),
		}
	}
	return out
}

// Build converts each relative state into elements for the gravitational
// parameter gm = G(m_ref + m_obs).
func Build(gm float64, rel []Relative) ([]kepler.OrbitalElements, error) {
	out := make([]kepler.OrbitalElements, len(rel))
	for i, s := range rel {
		el, err := kepler.Elements(gm, s.Pos, s.Vel)
		if err != nil {
			return nil, fmt.Errorf("orbit: sample %d: %w", i, err)
		}
		out[i] = el
	}
	return out, nil
}

// OfResolved returns the resolved body's states relative to point mass ref,
// sampled at stride k.
func OfResolved(r *dynamo.ResolvedSeries, ref *dynamo.PointMass, k int) []Relative {
	pos := make([]vec.Vec3, r.Len())
	vel := make([]vec.Vec3, r.Len())
	for i, s := range r.Samples {
		pos[i] = s.Pos
		vel[i] = s.Vel
	}
	return Relatives(pos, vel, ref.Pos, ref.Vel, k)
}

// OfPoint returns point mass p's states relative to ref at stride k.
func OfPoint(p, ref *dynamo.PointMass, k int) []Relative {
	return Relatives(p.Pos, p.Vel, ref.Pos, ref.Vel, k)
}

// Barycentric returns the elements of the barycentre of the resolved body
// (mass mres) and the central point mass, relative to point mass ip, with
// gm = G(mres + m0 + m_ip).
func Barycentric(c *dynamo.Collection, ip int, g, mres float64, k int) ([]kepler.OrbitalElements, error) {
	if ip < 1 || ip >= len(c.Points) {
		return nil, fmt.Errorf("orbit: point mass %d out of range [1, %d)", ip, len(c.Points))
	}
	cen := c.Central()
	target := &c.Points[ip]
	m := mres + cen.Mass
	if m == 0 {
		return nil, fmt.Errorf("orbit: barycentre of zero total mass")
	}

	n := c.Resolved.Len()
	pos := make([]vec.Vec3, n)
	vel := make([]vec.Vec3, n)
	for i, s := range c.Resolved.Samples {
		pos[i] = s.Pos.Scale(mres).Add(cen.Pos[i].Scale(cen.Mass)).Scale(1 / m)
		vel[i] = s.Vel.Scale(mres).Add(cen.Vel[i].Scale(cen.Mass)).Scale(1 / m)
	}
	rel := Relatives(pos, vel, target.Pos, target.Vel, k)
	return Build(g*(m+target.Mass), rel)
}
