package pipeline

import (
	"context"
	"math"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/kepler"
	"github.com/san-kum/orbspin/internal/vec"
)

type memSource struct {
	coll *dynamo.Collection
	err  error
}

func (m memSource) Load(ctx context.Context) (*dynamo.Collection, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.coll, nil
}

type fixture struct {
	steps   int
	dt      float64
	inertia dynamo.Inertia
	omega   vec.Vec3 // body spin, L = I·omega for diagonal I
	moons   []float64
}

func defaultFixture() fixture {
	return fixture{
		steps:   100,
		dt:      0.05,
		inertia: dynamo.Inertia{Ixx: 1, Iyy: 2, Izz: 3},
		omega:   vec.New(0, 0, 2),
		moons:   []float64{0.001},
	}
}

// build places the resolved body (mass 1) on a circular orbit of radius 1
// about a unit central mass at the origin and each moon on a circular orbit
// at radius 4, 6, ... in the xy plane.
func (f fixture) build() *dynamo.Collection {
	c := &dynamo.Collection{Points: make([]dynamo.PointMass, 1+len(f.moons))}
	c.Points[0].Mass = 1
	for i, m := range f.moons {
		c.Points[i+1].Mass = m
	}

	res := &c.Resolved
	L := vec.New(f.inertia.Ixx*f.omega.X, f.inertia.Iyy*f.omega.Y, f.inertia.Izz*f.omega.Z)
	for s := 0; s < f.steps; s++ {
		t := float64(s) * f.dt
		r, v := circular(2, 1, t)
		res.Time = append(res.Time, t)
		res.Samples = append(res.Samples, dynamo.Sample{Pos: r, Vel: v, Omega: f.omega, L: L, I: f.inertia})
		res.KERot = append(res.KERot, 0.5*f.omega.Dot(L))
		res.PESpring = append(res.PESpring, 0)
		res.PEGrav = append(res.PEGrav, -1)
		res.ETot = append(res.ETot, 0.5*f.omega.Dot(L)-1)
		res.DEDt = append(res.DEDt, 1e-8)

		for i := range c.Points {
			p := &c.Points[i]
			p.Time = append(p.Time, t)
			if i == 0 {
				p.Pos = append(p.Pos, vec.Vec3{})
				p.Vel = append(p.Vel, vec.Vec3{})
				continue
			}
			r, v := circular(1+p.Mass, 2+2*float64(i), t)
			p.Pos = append(p.Pos, r)
			p.Vel = append(p.Vel, v)
		}
	}
	return c
}

func circular(gm, a, t float64) (vec.Vec3, vec.Vec3) {
	el := kepler.OrbitalElements{SemiMajorAxis: a, MeanAnomaly: kepler.MeanMotion(gm, a) * t}
	r, v, _ := kepler.Cartesian(gm, el)
	return r, v
}

// tilted returns a spin of magnitude w at angle a from z in the xz plane.
func tilted(w, a float64) vec.Vec3 {
	return vec.New(w*math.Sin(a), 0, w*math.Cos(a))
}
