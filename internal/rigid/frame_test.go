package rigid

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/vec"
)

func TestPrincipalFrame_Diagonal(t *testing.T) {
	f, err := PrincipalFrame(dynamo.Inertia{Ixx: 3, Iyy: 2, Izz: 1})
	if err != nil {
		t.Fatalf("PrincipalFrame: %v", err)
	}

	if math.Abs(f.I3-3) > 1e-12 || math.Abs(f.I2-2) > 1e-12 || math.Abs(f.I1-1) > 1e-12 {
		t.Errorf("moments = (%v, %v, %v), want (3, 2, 1)", f.I3, f.I2, f.I1)
	}
	if math.Abs(math.Abs(f.Max.X)-1) > 1e-12 {
		t.Errorf("max axis = %v, want ±x", f.Max)
	}
	if math.Abs(math.Abs(f.Med.Y)-1) > 1e-12 {
		t.Errorf("med axis = %v, want ±y", f.Med)
	}
	if math.Abs(math.Abs(f.Min.Z)-1) > 1e-12 {
		t.Errorf("min axis = %v, want ±z", f.Min)
	}
}

func TestPrincipalFrame_Orthonormal(t *testing.T) {
	tests := []dynamo.Inertia{
		{Ixx: 3, Iyy: 2, Izz: 1},
		{Ixx: 1, Iyy: 2, Izz: 3, Ixy: 0.3, Iyz: -0.2, Ixz: 0.1},
		{Ixx: 5, Iyy: 5, Izz: 2, Ixy: 0.5},
		{Ixx: 2, Iyy: 2, Izz: 2},
		{Ixx: 0.4, Iyy: 0.35, Izz: 0.2, Ixy: -0.01, Iyz: 0.02, Ixz: 0.03},
	}

	for _, in := range tests {
		f, err := PrincipalFrame(in)
		if err != nil {
			t.Fatalf("PrincipalFrame(%v): %v", in, err)
		}
		if !(f.I3 >= f.I2 && f.I2 >= f.I1) {
			t.Errorf("%v: moments not ordered: %v %v %v", in, f.I3, f.I2, f.I1)
		}
		axes := []vec.Vec3{f.Max, f.Min, f.Med}
		for i := range axes {
			if math.Abs(axes[i].Len()-1) > 1e-10 {
				t.Errorf("%v: axis %d not unit: %v", in, i, axes[i].Len())
			}
			for j := i + 1; j < len(axes); j++ {
				if d := axes[i].Dot(axes[j]); math.Abs(d) > 1e-10 {
					t.Errorf("%v: axes %d,%d not orthogonal: %v", in, i, j, d)
				}
			}
		}
	}
}

func TestPrincipalFrame_NaN(t *testing.T) {
	_, err := PrincipalFrame(dynamo.Inertia{Ixx: math.NaN(), Iyy: 1, Izz: 1})
	if !errors.Is(err, ErrEigen) {
		t.Errorf("expected ErrEigen, got %v", err)
	}
}

func TestMoments(t *testing.T) {
	i3, i2, i1, err := Moments(dynamo.Inertia{Ixx: 1, Iyy: 3, Izz: 2})
	if err != nil {
		t.Fatalf("Moments: %v", err)
	}
	if math.Abs(i3-3) > 1e-12 || math.Abs(i2-2) > 1e-12 || math.Abs(i1-1) > 1e-12 {
		t.Errorf("Moments = %v %v %v, want 3 2 1", i3, i2, i1)
	}
}

func TestAlign(t *testing.T) {
	prev := Frame{Max: vec.Vec3{Z: 1}, Min: vec.Vec3{X: 1}, Med: vec.Vec3{Y: 1}}
	cur := Frame{Max: vec.Vec3{Z: -1}, Min: vec.Vec3{X: 1}, Med: vec.Vec3{Y: -1}}

	got := Align(prev, cur)
	if got.Max != (vec.Vec3{Z: 1}) || got.Min != (vec.Vec3{X: 1}) || got.Med != (vec.Vec3{Y: 1}) {
		t.Errorf("Align = %+v", got)
	}
}
