package rigid

import (
	"math"

	"github.com/san-kum/orbspin/internal/dynamo"
)

// SpinRates are Andoyer-Deprit precession and rotation rates averaged over
// the fast angle l. They are not derivatives of any single-sample quantity.
type SpinRates struct {
	GDot       float64
	LDot       float64
	Lambda1Dot float64
}

// RatesFrom evaluates the averaged rates for moments I3 >= I2 >= I1, angular
// momentum magnitude G and cosJ, the cosine between L and the max axis.
func RatesFrom(i3, i2, i1, G, cosJ float64) SpinRates {
	L := math.Abs(G * cosJ)
	invMed := 0.5 * (1/i1 + 1/i2)
	gdot := G * invMed
	ldot := L/i3 - L*invMed
	return SpinRates{
		GDot:       gdot,
		LDot:       ldot,
		Lambda1Dot: L/i3 + G*invMed - L*invMed,
	}
}

// Rates evaluates RatesFrom for sample s in frame f.
func Rates(s dynamo.Sample, f Frame) SpinRates {
	G := s.L.Len()
	cosJ := f.Max.Dot(s.L.Unit())
	return RatesFrom(f.I3, f.I2, f.I1, G, cosJ)
}
