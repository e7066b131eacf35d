package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/orbspin/internal/kepler"
	"github.com/san-kum/orbspin/internal/pipeline"
)

type column struct {
	name string
	at   func(i int) float64
}

func columns(res *pipeline.Result) []column {
	idx := func(name string, xs []float64) column {
		return column{name, func(i int) float64 { return xs[i] }}
	}
	cols := []column{
		idx("time", res.Time),
		idx("obliquity", res.Obliquity),
		idx("spin", res.Spin),
		idx("tilt", res.Tilt),
		idx("precession", res.Precession),
		idx("phi_eu", res.PhiEu),
		idx("theta_eu", res.ThetaEu),
		idx("bphi_eu", res.BPhiEu),
		idx("etot", res.ETot),
		idx("dedt", res.DEDt),
	}
	for b, els := range res.Elements {
		el := func(name string, f func(kepler.OrbitalElements) float64) column {
			return column{fmt.Sprintf("%s%d", name, b), func(i int) float64 { return f(els[i]) }}
		}
		cols = append(cols,
			el("a", func(e kepler.OrbitalElements) float64 { return e.SemiMajorAxis }),
			el("e", func(e kepler.OrbitalElements) float64 { return e.Eccentricity }),
			el("inc", func(e kepler.OrbitalElements) float64 { return e.Inclination }),
			el("node", func(e kepler.OrbitalElements) float64 { return e.LongNode }),
			el("peri", func(e kepler.OrbitalElements) float64 { return e.ArgPeri }),
			el("mean", func(e kepler.OrbitalElements) float64 { return e.MeanAnomaly }),
		)
	}
	if t := res.Tilts; t != nil {
		cols = append(cols,
			idx("spin_max", t.SpinMax), idx("l_max", t.LMax),
			idx("spin_min", t.SpinMin), idx("l_min", t.LMin),
			idx("spin_med", t.SpinMed), idx("l_med", t.LMed),
			idx("conjugate", t.Conjugate),
			idx("gdot", t.GDot), idx("ldot", t.LDot), idx("lambda1dot", t.Lambda1Dot),
		)
	}
	return cols
}

// Header lists the CSV column names for res.
func Header(res *pipeline.Result) []string { return names(columns(res)) }

func names(cols []column) []string {
	h := make([]string, len(cols))
	for i, c := range cols {
		h[i] = c.name
	}
	return h
}

// WriteCSV writes one row per sampled time. NaN is written as "NaN".
func WriteCSV(w io.Writer, res *pipeline.Result) error {
	cols := columns(res)
	cw := csv.NewWriter(w)
	if err := cw.Write(names(cols)); err != nil {
		return err
	}
	row := make([]string, len(cols))
	for i := 0; i < res.Len(); i++ {
		for j, c := range cols {
			row[j] = strconv.FormatFloat(c.at(i), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func CSVFile(path string, res *pipeline.Result) error {
	return toFile(path, func(w io.Writer) error { return WriteCSV(w, res) })
}
