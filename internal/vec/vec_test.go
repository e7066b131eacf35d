package vec

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale failed: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestCross(t *testing.T) {
	tests := []struct {
		a, b, want Vec3
	}{
		{Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{Vec3{0, 0, 1}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{Vec3{2, 0, 0}, Vec3{0, 3, 0}, Vec3{0, 0, 6}},
	}

	for _, tt := range tests {
		if got := tt.a.Cross(tt.b); got != tt.want {
			t.Errorf("%v x %v = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCrossUnit(t *testing.T) {
	n := CrossUnit(Vec3{3, 0, 0}, Vec3{0, 0.5, 0})
	if math.Abs(n.Len()-1) > 1e-12 || math.Abs(n.Z-1) > 1e-12 {
		t.Errorf("CrossUnit = %v, want (0,0,1)", n)
	}

	if CrossUnit(Vec3{1, 0, 0}, Vec3{2, 0, 0}).IsFinite() {
		t.Error("expected non-finite result for parallel vectors")
	}
}

func TestNormalize(t *testing.T) {
	u := Normalize(Vec3{3, 4, 0})
	if math.Abs(u.X-0.6) > 1e-12 || math.Abs(u.Y-0.8) > 1e-12 {
		t.Errorf("Normalize = %v", u)
	}
	if Len(Vec3{1, 1, 1}) != math.Sqrt(3) {
		t.Error("Len mismatch")
	}
}

func TestPerp(t *testing.T) {
	p := Perp(Vec3{1, 1, 1}, Vec3{0, 0, 5})
	if p != (Vec3{1, 1, 0}) {
		t.Errorf("Perp = %v, want (1,1,0)", p)
	}
}

func TestAngle_Clamped(t *testing.T) {
	a := Vec3{1, 1e-9, 0}
	if got := Angle(a, a); math.IsNaN(got) || got > 1e-6 {
		t.Errorf("Angle of vector with itself = %v", got)
	}
	if got := Angle(Vec3{1, 0, 0}, Vec3{-1, 0, 0}); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Angle antiparallel = %v, want pi", got)
	}
}
