package rigid

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/vec"
)

func TestFold(t *testing.T) {
	angles := []float64{0, 0.3, math.Pi / 2, 2, math.Pi, 4, -0.7, 7.5, -12}
	for _, a := range angles {
		got := Fold(a)
		if got < 0 || got > math.Pi/2+1e-15 {
			t.Errorf("Fold(%v) = %v, out of range", a, got)
		}
		if d := math.Abs(got - Fold(math.Pi-a)); d > 1e-12 {
			t.Errorf("Fold(%v) != Fold(pi-%v): diff %v", a, a, d)
		}
	}
	if got := Fold(2.5); math.Abs(got-(math.Pi-2.5)) > 1e-15 {
		t.Errorf("Fold(2.5) = %v", got)
	}
	if got := Fold(0.4); got != 0.4 {
		t.Errorf("Fold(0.4) = %v", got)
	}
}

func TestTilt_Aligned(t *testing.T) {
	s := dynamo.Sample{
		Omega: vec.Vec3{Z: 1},
		L:     vec.Vec3{Z: 1},
		I:     dynamo.Inertia{Ixx: 1, Iyy: 2, Izz: 3},
	}
	f, err := PrincipalFrame(s.I)
	if err != nil {
		t.Fatalf("PrincipalFrame: %v", err)
	}

	got := Tilt(s, f)
	if got.SpinMax > 1e-12 || got.LMax > 1e-12 {
		t.Errorf("tilts against z axis = %v, %v, want 0", got.SpinMax, got.LMax)
	}
	for _, a := range []float64{got.SpinMin, got.LMin, got.SpinMed, got.LMed} {
		if math.Abs(a-math.Pi/2) > 1e-12 {
			t.Errorf("perpendicular tilt = %v, want pi/2", a)
		}
	}

	if !math.IsNaN(ConjugateAngle(s.L, f)) {
		t.Error("conjugate angle should be undefined for principal-axis spin")
	}
}

func TestTilt_DiagonalMinAxis(t *testing.T) {
	s := dynamo.Sample{
		Omega: vec.Vec3{Z: 1},
		L:     vec.Vec3{Z: 1},
		I:     dynamo.Inertia{Ixx: 3, Iyy: 2, Izz: 1},
	}
	f, err := PrincipalFrame(s.I)
	if err != nil {
		t.Fatalf("PrincipalFrame: %v", err)
	}

	got := Tilt(s, f)
	if got.SpinMin > 1e-12 || got.LMin > 1e-12 {
		t.Errorf("tilts against z (min) axis = %v, %v, want 0", got.SpinMin, got.LMin)
	}
	if math.Abs(got.LMax-math.Pi/2) > 1e-12 {
		t.Errorf("J = %v, want pi/2", got.LMax)
	}
}

func TestTilt_SignInvariant(t *testing.T) {
	s := dynamo.Sample{
		Omega: vec.Vec3{X: 0.1, Y: 0.2, Z: 1},
		L:     vec.Vec3{X: 0.2, Y: 0.3, Z: 2.5},
	}
	f := Frame{Max: vec.Vec3{Z: 1}, Min: vec.Vec3{X: 1}, Med: vec.Vec3{Y: 1}}
	g := Frame{Max: vec.Vec3{Z: -1}, Min: vec.Vec3{X: -1}, Med: vec.Vec3{Y: -1}}

	a, b := Tilt(s, f), Tilt(s, g)
	pairs := [][2]float64{
		{a.SpinMax, b.SpinMax}, {a.LMax, b.LMax},
		{a.SpinMin, b.SpinMin}, {a.LMin, b.LMin},
		{a.SpinMed, b.SpinMed}, {a.LMed, b.LMed},
	}
	for _, p := range pairs {
		if math.Abs(p[0]-p[1]) > 1e-12 {
			t.Errorf("tilt depends on eigenvector sign: %v vs %v", p[0], p[1])
		}
	}
	ca, cb := ConjugateAngle(s.L, f), ConjugateAngle(s.L, g)
	if math.Abs(ca-cb) > 1e-12 {
		t.Errorf("conjugate angle sign dependent: %v vs %v", ca, cb)
	}
}

func TestConjugateAngle(t *testing.T) {
	f := Frame{Max: vec.Vec3{Z: 1}, Min: vec.Vec3{X: 1}, Med: vec.Vec3{Y: 1}}

	// L tilted in the yz plane: the node z x L lies along x, the min axis.
	if got := ConjugateAngle(vec.Vec3{Y: 1, Z: 1}, f); got > 1e-12 {
		t.Errorf("ConjugateAngle = %v, want 0", got)
	}
	// L tilted in the xz plane: the node lies along y.
	if got := ConjugateAngle(vec.Vec3{X: 1, Z: 1}, f); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("ConjugateAngle = %v, want pi/2", got)
	}
}

func TestCheckSpin(t *testing.T) {
	tests := []struct {
		name string
		s    dynamo.Sample
		want error
	}{
		{"ok", dynamo.Sample{Omega: vec.Vec3{Z: 1}, L: vec.Vec3{Z: 1}}, nil},
		{"no spin", dynamo.Sample{L: vec.Vec3{Z: 1}}, ErrZeroSpin},
		{"no angmom", dynamo.Sample{Omega: vec.Vec3{Z: 1}}, ErrZeroAngMom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CheckSpin(tt.s); !errors.Is(err, tt.want) {
				t.Errorf("CheckSpin() = %v, want %v", err, tt.want)
			}
		})
	}
}
