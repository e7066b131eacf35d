package series

import (
	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/rigid"
)

// Tilts is the aggregated rotational diagnostics, one entry per sampled step.
type Tilts struct {
	Time       []float64 `json:"time"`
	SpinMax    []float64 `json:"spin_max"`
	LMax       []float64 `json:"l_max"`
	SpinMin    []float64 `json:"spin_min"`
	LMin       []float64 `json:"l_min"`
	SpinMed    []float64 `json:"spin_med"`
	LMed       []float64 `json:"l_med"`
	Conjugate  []float64 `json:"conjugate"`
	GDot       []float64 `json:"gdot"`
	LDot       []float64 `json:"ldot"`
	Lambda1Dot []float64 `json:"lambda1dot"`
	Spin       []float64 `json:"spin"`
}

func newTilts(n int) *Tilts {
	return &Tilts{
		Time:       make([]float64, n),
		SpinMax:    make([]float64, n),
		LMax:       make([]float64, n),
		SpinMin:    make([]float64, n),
		LMin:       make([]float64, n),
		SpinMed:    make([]float64, n),
		LMed:       make([]float64, n),
		Conjugate:  make([]float64, n),
		GDot:       make([]float64, n),
		LDot:       make([]float64, n),
		Lambda1Dot: make([]float64, n),
		Spin:       make([]float64, n),
	}
}

func (t *Tilts) Len() int { return len(t.Time) }

// Aggregate evaluates tilts, the conjugate angle and spin rates at every
// k-th step of r. The result has floor(N/k) entries. A step with zero spin
// or angular momentum aborts with a *dynamo.SampleError.
func Aggregate(r *dynamo.ResolvedSeries, k int) (*Tilts, error) {
	if k < 1 {
		return nil, ErrStride
	}
	idx := Indices(r.Len(), k)
	out := newTilts(len(idx))

	for i, j := range idx {
		s := r.Samples[j]
		if err := rigid.CheckSpin(s); err != nil {
			return nil, &dynamo.SampleError{Index: j, Time: r.Time[j], Wrapped: err}
		}
		f, err := rigid.PrincipalFrame(s.I)
		if err != nil {
			return nil, &dynamo.SampleError{Index: j, Time: r.Time[j], Wrapped: err}
		}

		tl := rigid.Tilt(s, f)
		rt := rigid.Rates(s, f)

		out.Time[i] = r.Time[j]
		out.SpinMax[i] = tl.SpinMax
		out.LMax[i] = tl.LMax
		out.SpinMin[i] = tl.SpinMin
		out.LMin[i] = tl.LMin
		out.SpinMed[i] = tl.SpinMed
		out.LMed[i] = tl.LMed
		out.Conjugate[i] = rigid.ConjugateAngle(s.L, f)
		out.GDot[i] = rt.GDot
		out.LDot[i] = rt.LDot
		out.Lambda1Dot[i] = rt.Lambda1Dot
		out.Spin[i] = s.Omega.Len()
	}
	return out, nil
}

// Downsample returns r sampled at stride k.
func Downsample(r *dynamo.ResolvedSeries, k int) dynamo.ResolvedSeries {
	return dynamo.ResolvedSeries{
		Time:     Pick(r.Time, k),
		Samples:  Pick(r.Samples, k),
		KERot:    Pick(r.KERot, k),
		PESpring: Pick(r.PESpring, k),
		PEGrav:   Pick(r.PEGrav, k),
		ETot:     Pick(r.ETot, k),
		DEDt:     Pick(r.DEDt, k),
	}
}
