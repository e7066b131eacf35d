package viz

import (
	"fmt"
	"math"

	"github.com/san-kum/orbspin/internal/analysis"
	"github.com/san-kum/orbspin/internal/kepler"
	"github.com/san-kum/orbspin/internal/pipeline"
)

type Kind int

const (
	KindLine Kind = iota
	KindScatter
)

type Series struct {
	Name string
	Y    []float64
}

// Panel is one chart of the figure. Column 0 is the left column. A fixed
// y range is used when YMax > YMin.
type Panel struct {
	Title      string
	Column     int
	Kind       Kind
	Time       []float64
	Series     []Series
	YMin, YMax float64
}

type PanelOptions struct {
	TMin, TMax  float64 // TMax <= 0 means the end of the run
	ResJ, ResDJ int
	MedianBox   int
	J2          float64 // primary oblateness for the precession frequency ratio
	RPlus       float64 // primary radius
	MaxSemiAxis float64 // orbits beyond this are left out of the a-e panel
}

func DefaultPanelOptions() PanelOptions {
	return PanelOptions{
		ResJ:        2,
		ResDJ:       1,
		MedianBox:   101,
		J2:          0.03,
		RPlus:       1.5,
		MaxSemiAxis: 300,
	}
}

const deg = 180 / math.Pi

func scaled(xs []float64, k float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x * k
	}
	return out
}

func field(els []kepler.OrbitalElements, f func(kepler.OrbitalElements) float64) []float64 {
	out := make([]float64, len(els))
	for i, el := range els {
		out[i] = f(el)
	}
	return out
}

func semiAxis(el kepler.OrbitalElements) float64 { return el.SemiMajorAxis }
func eccentricity(el kepler.OrbitalElements) float64 { return el.Eccentricity }
func longNode(el kepler.OrbitalElements) float64 { return el.LongNode }

func bodyName(i int) string {
	if i == 0 {
		return "resolved"
	}
	return fmt.Sprintf("pm%d", i)
}

// BuildPanels derives the figure panels from an analysis bundle, restricted
// to the time window of o. Panels relating two orbits need at least one
// point mass besides the centre.
func BuildPanels(res *pipeline.Result, o PanelOptions) ([]Panel, error) {
	if res.Len() == 0 || len(res.Elements) == 0 {
		return nil, fmt.Errorf("viz: empty result")
	}
	t := res.Time
	E := res.Elements
	multi := len(E) > 1
	lam := make([][]float64, len(E))
	for i := range E {
		lam[i] = analysis.MeanLongitude(E[i])
	}
	node0 := field(E[0], longNode)
	line := func(title string, col int, ss ...Series) Panel {
		return Panel{Title: title, Column: col, Kind: KindLine, Time: t, Series: ss}
	}
	angles := func(title string, col int, top float64, ss ...Series) Panel {
		return Panel{Title: title, Column: col, Kind: KindScatter, Time: t, Series: ss, YMin: 0, YMax: top}
	}

	var panels []Panel

	panels = append(panels, line("obliquity", 0, Series{"obliquity", res.Obliquity}))

	var ae []Series
	for i, els := range E {
		a := field(els, semiAxis)
		if top := maxOf(a); !(top < o.MaxSemiAxis) {
			continue
		}
		e := field(els, eccentricity)
		lo, hi := make([]float64, len(a)), make([]float64, len(a))
		for k := range a {
			lo[k], hi[k] = a[k]*(1-e[k]), a[k]*(1+e[k])
		}
		ae = append(ae, Series{"a " + bodyName(i), a}, Series{"a(1-e)", lo}, Series{"a(1+e)", hi})
	}
	panels = append(panels, line("a e", 0, ae...))

	dedt, err := logDissipation(res.DEDt, E[0], o.MedianBox)
	if err != nil {
		return nil, err
	}
	panels = append(panels, line("log10 dE/dt", 0, dedt...))

	panels = append(panels, line("J (deg)", 0, Series{"J", scaled(res.Tilt, deg)}))

	var inc []Series
	for i, els := range E {
		inc = append(inc, Series{bodyName(i), scaled(field(els, func(el kepler.OrbitalElements) float64 { return el.Inclination }), deg)})
	}
	panels = append(panels, line("inclinations (deg)", 0, inc...))

	if multi {
		panels = append(panels, angles("spin-orbit angles", 0, 2*math.Pi,
			Series{"φEu-λ0+λ1", analysis.Combine([]float64{1, -1, 1}, res.PhiEu, lam[0], lam[1])},
			Series{"φEu-2λ0+λ1", analysis.Combine([]float64{1, -2, 1}, res.PhiEu, lam[0], lam[1])},
		))
		j, dj := float64(o.ResJ), float64(o.ResDJ)
		panels = append(panels, angles(fmt.Sprintf("resonant angle %d:%d", o.ResJ, o.ResJ-o.ResDJ), 0, 2*math.Pi,
			Series{"φ", analysis.ResonantAngle(j, dj, E[0], E[1])},
		))
	}

	nres := analysis.MeanMotion(res.GM, E[0])
	var spin []Series
	for k, ln := range analysis.SpinResonances(nres, res.Spin) {
		spin = append(spin, Series{fmt.Sprintf("%d n/2", k), ln})
	}
	spin = append(spin, Series{"spin", res.Spin})
	panels = append(panels, line("spin", 1, spin...))

	panels = append(panels, angles("Ωs-Ω", 1, 2*math.Pi,
		Series{"Ω", analysis.Wrap2PiAll(node0)},
		Series{"Ωs", analysis.Wrap2PiAll(res.Precession)},
		Series{"bφEu-Ω", analysis.Combine([]float64{1, -1}, res.BPhiEu, node0)},
		Series{"Ωs-Ω", analysis.Combine([]float64{1, -1}, res.Precession, node0)},
	))

	rate, err := analysis.PrecessionRate(t, analysis.Unwrap(res.Precession), o.MedianBox)
	if err != nil {
		return nil, err
	}
	panels = append(panels, line("precession rate", 1, Series{"dΩs/dt", rate}))

	theta := make([]float64, len(res.ThetaEu))
	for i, v := range res.ThetaEu {
		theta[i] = math.Mod(analysis.Wrap2Pi(v), math.Pi)
	}
	panels = append(panels, angles("φEu-λ, θEu", 1, math.Pi,
		Series{"θEu", theta},
		Series{"φEu-λ", analysis.Combine([]float64{1, -1}, res.PhiEu, lam[0])},
	))

	if multi {
		var pr []Series
		for i := 1; i < len(E); i++ {
			pr = append(pr, Series{fmt.Sprintf("P%d/P%d", i, i-1), analysis.PeriodRatio(res.Masses[0], res.Masses[i], E[i], E[i-1])})
		}
		panels = append(panels, line("period ratio", 1, pr...))
	}

	var ecc []Series
	for i, els := range E {
		ecc = append(ecc, Series{bodyName(i), field(els, eccentricity)})
	}
	panels = append(panels, line("eccentricities", 1, ecc...))

	m0 := res.Masses[0]
	mm0 := analysis.MeanMotion(res.GravConst*(m0+res.ResolvedMass), E[0])
	mm := []Series{
		{"n0", mm0},
		{"prf", analysis.PrecessionFrequencyRatio(o.J2, o.RPlus, E[0])},
	}
	if multi {
		mm1 := analysis.MeanMotion(res.GravConst*(m0+res.Masses[1]), E[1])
		ratio := make([]float64, len(mm1))
		for i := range ratio {
			ratio[i] = mm1[i] / mm0[i]
		}
		mm = append(mm, Series{"n1/n0", ratio})
	}
	qeff := make([]float64, len(t))
	for i := range qeff {
		qeff[i] = res.Asphericity.Last.QEff
	}
	mm = append(mm, Series{"qeff", qeff})
	panels = append(panels, line("mean motion", 1, mm...))

	lo, hi := analysis.Window(t, o.TMin, o.TMax)
	for i := range panels {
		panels[i] = panels[i].slice(lo, hi)
	}
	return panels, nil
}

// logDissipation is log10 of the median-filtered dE/dt, with the filter's
// edge region blanked on long series, plus the same shifted by 7.5 log10 a.
func logDissipation(dedt []float64, els []kepler.OrbitalElements, box int) ([]Series, error) {
	smooth, err := analysis.MedianFilter(dedt, box)
	if err != nil {
		return nil, err
	}
	n := len(smooth)
	i0, i1 := 0, n
	if n > 500 {
		i0, i1 = 200, n-box
	}
	lg := make([]float64, n)
	shifted := make([]float64, n)
	for i, v := range smooth {
		if i < i0 || i >= i1 {
			lg[i], shifted[i] = math.NaN(), math.NaN()
			continue
		}
		lg[i] = math.Log10(v + 1e-10)
		shifted[i] = lg[i] + 7.5*math.Log10(math.Abs(els[i].SemiMajorAxis))
	}
	return []Series{{"log10 dE/dt", lg}, {"+7.5 log10 a", shifted}}, nil
}

func (p Panel) slice(lo, hi int) Panel {
	p.Time = p.Time[lo:hi]
	ss := make([]Series, len(p.Series))
	for i, s := range p.Series {
		end := min(hi, len(s.Y))
		ss[i] = Series{Name: s.Name, Y: s.Y[min(lo, end):end]}
	}
	p.Series = ss
	return p
}

func maxOf(xs []float64) float64 {
	m := math.Inf(-1)
	for _, x := range xs {
		m = math.Max(m, x)
	}
	return m
}
