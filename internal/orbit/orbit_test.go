package orbit

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/kepler"
	"github.com/san-kum/orbspin/internal/vec"
)

func TestBuild_Circular(t *testing.T) {
	rel := []Relative{{Pos: vec.New(1, 0, 0), Vel: vec.New(0, 1, 0)}}
	els, err := Build(1, rel)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if math.Abs(els[0].Eccentricity) > 1e-9 {
		t.Errorf("e = %v, want 0", els[0].Eccentricity)
	}
	if math.Abs(els[0].SemiMajorAxis-1) > 1e-9 {
		t.Errorf("a = %v, want 1", els[0].SemiMajorAxis)
	}
	if n := rel[0].Normal(); math.Abs(n.Z-1) > 1e-15 {
		t.Errorf("normal = %+v", n)
	}
}

func TestBuild_Degenerate(t *testing.T) {
	rel := []Relative{
		{Pos: vec.New(1, 0, 0), Vel: vec.New(0, 1, 0)},
		{Pos: vec.New(1, 0, 0), Vel: vec.New(2, 0, 0)},
	}
	if _, err := Build(1, rel); !errors.Is(err, kepler.ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got %v", err)
	}
}

func TestRelatives_Stride(t *testing.T) {
	n := 7
	obs := make([]vec.Vec3, n)
	ref := make([]vec.Vec3, n)
	for i := range obs {
		obs[i] = vec.New(float64(i), 1, 0)
		ref[i] = vec.New(0, 1, 0)
	}
	rel := Relatives(obs, obs, ref, ref, 2)
	if len(rel) != 3 {
		t.Fatalf("len = %d, want 3", len(rel))
	}
	if rel[2].Pos.X != 4 || rel[2].Pos.Y != 0 {
		t.Errorf("rel[2] = %+v", rel[2].Pos)
	}
}

func circularCollection(n int) *dynamo.Collection {
	el := kepler.OrbitalElements{SemiMajorAxis: 3, Eccentricity: 0.1, Inclination: 0.2}
	cen := dynamo.PointMass{Mass: 1}
	moon := dynamo.PointMass{Mass: 0.01}
	res := dynamo.ResolvedSeries{}
	for i := 0; i < n; i++ {
		ti := float64(i) * 0.1
		el.MeanAnomaly = kepler.MeanMotion(1.01, el.SemiMajorAxis) * ti
		r, v, _ := kepler.Cartesian(1.01, el)

		cen.Time = append(cen.Time, ti)
		cen.Pos = append(cen.Pos, vec.Vec3{})
		cen.Vel = append(cen.Vel, vec.Vec3{})
		moon.Time = append(moon.Time, ti)
		moon.Pos = append(moon.Pos, r)
		moon.Vel = append(moon.Vel, v)

		res.Time = append(res.Time, ti)
		res.Samples = append(res.Samples, dynamo.Sample{Pos: vec.New(0.5, 0, 0), Vel: vec.New(0, 1.4, 0)})
	}
	return &dynamo.Collection{Resolved: res, Points: []dynamo.PointMass{cen, moon}}
}

func TestOfPoint(t *testing.T) {
	c := circularCollection(10)
	els, err := Build(1.01, OfPoint(&c.Points[1], c.Central(), 1))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i, el := range els {
		if math.Abs(el.SemiMajorAxis-3) > 1e-9 || math.Abs(el.Eccentricity-0.1) > 1e-9 {
			t.Errorf("sample %d: a=%v e=%v", i, el.SemiMajorAxis, el.Eccentricity)
		}
	}
}

func TestOfResolved(t *testing.T) {
	c := circularCollection(4)
	rel := OfResolved(&c.Resolved, c.Central(), 2)
	if len(rel) != 2 {
		t.Fatalf("len = %d, want 2", len(rel))
	}
	if rel[1].Pos.X != 0.5 || rel[1].Vel.Y != 1.4 {
		t.Errorf("rel = %+v", rel[1])
	}
}

func TestBarycentric(t *testing.T) {
	c := circularCollection(5)
	// with no resolved mass the barycentre is the central mass itself
	els, err := Barycentric(c, 1, 1, 0, 1)
	if err != nil {
		t.Fatalf("Barycentric: %v", err)
	}
	for i, el := range els {
		if math.Abs(el.SemiMajorAxis-3) > 1e-9 {
			t.Errorf("sample %d: a = %v, want 3", i, el.SemiMajorAxis)
		}
	}

	if _, err := Barycentric(c, 0, 1, 1, 1); err == nil {
		t.Error("expected error for the central mass as target")
	}
	if _, err := Barycentric(c, 2, 1, 1, 1); err == nil {
		t.Error("expected error for out of range target")
	}
}
