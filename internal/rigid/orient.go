package rigid

import (
	"math"

	"github.com/san-kum/orbspin/internal/vec"
)

// Orientation holds body orientation angles in the inertial xyz frame.
type Orientation struct {
	Phi   float64 // azimuth of the long (min-moment) axis in the xy plane
	Theta float64 // polar angle of the short (max-moment) axis from z
	BPhi  float64 // azimuth of the short axis in the xy plane
}

// Orient derives Euler-like angles from the principal axes.
func Orient(f Frame) Orientation {
	return Orientation{
		Phi:   math.Atan2(f.Min.Y, f.Min.X),
		Theta: math.Acos(vec.Clamp(f.Max.Z)),
		BPhi:  math.Atan2(f.Max.Y, f.Max.X),
	}
}

// Asphericity are shape parameters from the principal moments.
type Asphericity struct {
	Gamma float64 `json:"gamma"` // (B-A)/C
	Alpha float64 `json:"alpha"` // sqrt(3(B-A)/C), libration
	QEff  float64 `json:"qeff"`  // [C-(A+B)/2]/C, wobble
}

// AsphericityOf takes the principal moments ordered i3 >= i2 >= i1.
func AsphericityOf(i3, i2, i1 float64) Asphericity {
	gam := (i2 - i1) / i3
	return Asphericity{
		Gamma: gam,
		Alpha: math.Sqrt(3 * gam),
		QEff:  (i3 - (i1+i2)/2) / i3,
	}
}
