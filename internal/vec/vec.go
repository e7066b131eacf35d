// Package vec provides the small set of 3-vector operations used by the
// orbital and rigid-body calculators.
package vec

import "math"

// Vec3 is a Cartesian 3-vector.
type Vec3 struct{ X, Y, Z float64 }

func New(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Unit returns v scaled to unit length. A zero vector yields NaN components;
// callers that cannot guarantee a non-zero input must check Len first.
func (v Vec3) Unit() Vec3 {
	l := v.Len()
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Dot, CrossUnit, Normalize and Len mirror the free-function helpers the
// analysis code is written against.

func Dot(a, b Vec3) float64 { return a.Dot(b) }

// CrossUnit returns the unit vector along a × b.
func CrossUnit(a, b Vec3) Vec3 { return a.Cross(b).Unit() }

func Normalize(v Vec3) Vec3 { return v.Unit() }

func Len(v Vec3) float64 { return v.Len() }

// Perp returns the component of a perpendicular to n. n need not be
// normalized.
func Perp(a, n Vec3) Vec3 {
	nn := n.Dot(n)
	return a.Sub(n.Scale(a.Dot(n) / nn))
}

// Angle returns the angle between a and b in [0, π]. The cosine is clamped
// so rounding on near-parallel unit vectors cannot produce NaN.
func Angle(a, b Vec3) float64 {
	return math.Acos(Clamp(a.Unit().Dot(b.Unit())))
}

// Clamp limits a cosine to [-1, 1].
func Clamp(c float64) float64 {
	return math.Max(-1, math.Min(1, c))
}
