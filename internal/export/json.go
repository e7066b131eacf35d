// Package export writes an analysis result as JSON, CSV or an SVG figure.
package export

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/san-kum/orbspin/internal/pipeline"
	"github.com/san-kum/orbspin/internal/series"
)

// Numbers is a series in which NaN and infinities are encoded as null,
// since JSON has no literal for them.
type Numbers []*float64

func nullable(xs []float64) Numbers {
	if xs == nil {
		return nil
	}
	out := make(Numbers, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
			continue
		}
		v := xs[i]
		out[i] = &v
	}
	return out
}

// Orbit is one body's element series in columnar form.
type Orbit struct {
	SemiMajorAxis Numbers `json:"a"`
	Eccentricity  Numbers `json:"e"`
	Inclination   Numbers `json:"i"`
	LongNode      Numbers `json:"long_node"`
	ArgPeri       Numbers `json:"arg_peri"`
	MeanAnomaly   Numbers `json:"mean_anomaly"`
}

type TiltSeries struct {
	SpinMax    Numbers `json:"spin_max"`
	LMax       Numbers `json:"l_max"`
	SpinMin    Numbers `json:"spin_min"`
	LMin       Numbers `json:"l_min"`
	SpinMed    Numbers `json:"spin_med"`
	LMed       Numbers `json:"l_med"`
	Conjugate  Numbers `json:"conjugate"`
	GDot       Numbers `json:"gdot"`
	LDot       Numbers `json:"ldot"`
	Lambda1Dot Numbers `json:"lambda1dot"`
}

// Document is the JSON layout of a result.
type Document struct {
	Source       string                   `json:"source,omitempty"`
	Samples      int                      `json:"samples"`
	Stride       int                      `json:"stride"`
	GravConst    float64                  `json:"grav_const"`
	GM           float64                  `json:"gm"`
	ResolvedMass float64                  `json:"resolved_mass"`
	Masses       []float64                `json:"masses"`
	Moments      pipeline.Moments         `json:"moments"`
	Asphericity  pipeline.AsphericityPair `json:"asphericity"`
	Time         Numbers                  `json:"time"`
	Obliquity    Numbers                  `json:"obliquity"`
	Spin         Numbers                  `json:"spin"`
	Tilt         Numbers                  `json:"tilt"`
	Precession   Numbers                  `json:"precession"`
	PhiEu        Numbers                  `json:"phi_eu"`
	ThetaEu      Numbers                  `json:"theta_eu"`
	BPhiEu       Numbers                  `json:"bphi_eu"`
	ETot         Numbers                  `json:"etot"`
	DEDt         Numbers                  `json:"dedt"`
	Orbits       []Orbit                  `json:"orbits"`
	Tilts        *TiltSeries              `json:"tilts,omitempty"`
	Metrics      map[string]float64       `json:"metrics,omitempty"`
}

func NewDocument(source string, res *pipeline.Result) Document {
	doc := Document{
		Source:       source,
		Samples:      res.Len(),
		Stride:       res.Stride,
		GravConst:    res.GravConst,
		GM:           res.GM,
		ResolvedMass: res.ResolvedMass,
		Masses:       res.Masses,
		Moments:      res.Moments,
		Asphericity:  res.Asphericity,
		Time:         nullable(res.Time),
		Obliquity:    nullable(res.Obliquity),
		Spin:         nullable(res.Spin),
		Tilt:         nullable(res.Tilt),
		Precession:   nullable(res.Precession),
		PhiEu:        nullable(res.PhiEu),
		ThetaEu:      nullable(res.ThetaEu),
		BPhiEu:       nullable(res.BPhiEu),
		ETot:         nullable(res.ETot),
		DEDt:         nullable(res.DEDt),
		Metrics:      res.Metrics,
	}
	for _, els := range res.Elements {
		var o orbitColumns
		for _, el := range els {
			o.add(el.SemiMajorAxis, el.Eccentricity, el.Inclination, el.LongNode, el.ArgPeri, el.MeanAnomaly)
		}
		doc.Orbits = append(doc.Orbits, o.orbit())
	}
	if res.Tilts != nil {
		doc.Tilts = tiltSeries(res.Tilts)
	}
	return doc
}

type orbitColumns [6][]float64

func (c *orbitColumns) add(vs ...float64) {
	for i, v := range vs {
		c[i] = append(c[i], v)
	}
}

func (c *orbitColumns) orbit() Orbit {
	return Orbit{
		SemiMajorAxis: nullable(c[0]),
		Eccentricity:  nullable(c[1]),
		Inclination:   nullable(c[2]),
		LongNode:      nullable(c[3]),
		ArgPeri:       nullable(c[4]),
		MeanAnomaly:   nullable(c[5]),
	}
}

func tiltSeries(t *series.Tilts) *TiltSeries {
	return &TiltSeries{
		SpinMax:    nullable(t.SpinMax),
		LMax:       nullable(t.LMax),
		SpinMin:    nullable(t.SpinMin),
		LMin:       nullable(t.LMin),
		SpinMed:    nullable(t.SpinMed),
		LMed:       nullable(t.LMed),
		Conjugate:  nullable(t.Conjugate),
		GDot:       nullable(t.GDot),
		LDot:       nullable(t.LDot),
		Lambda1Dot: nullable(t.Lambda1Dot),
	}
}

// WriteJSON encodes res as an indented Document.
func WriteJSON(w io.Writer, source string, res *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(source, res))
}

func JSONFile(path, source string, res *pipeline.Result) error {
	return toFile(path, func(w io.Writer) error { return WriteJSON(w, source, res) })
}

func toFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
