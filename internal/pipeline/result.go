package pipeline

import (
	"github.com/san-kum/orbspin/internal/kepler"
	"github.com/san-kum/orbspin/internal/rigid"
	"github.com/san-kum/orbspin/internal/series"
)

// Moments are the ordered principal moments I3 >= I2 >= I1.
type Moments struct {
	I3 float64 `json:"i3"`
	I2 float64 `json:"i2"`
	I1 float64 `json:"i1"`
}

type AsphericityPair struct {
	First rigid.Asphericity `json:"first"`
	Last  rigid.Asphericity `json:"last"`
}

// Result is the analysis bundle. Every per-sample slice has the length of
// Time. Elements[0] is the resolved body's orbit about the central mass and
// Elements[i] that of point mass i.
type Result struct {
	Time         []float64                  `json:"time"`
	Masses       []float64                  `json:"masses"`
	GravConst    float64                    `json:"grav_const"`
	GM           float64                    `json:"gm"` // G times the central mass
	ResolvedMass float64                    `json:"resolved_mass"`
	Elements     [][]kepler.OrbitalElements `json:"elements"`
	Obliquity    []float64                  `json:"obliquity"`
	Spin         []float64                  `json:"spin"`
	Tilt         []float64                  `json:"tilt"` // J, radians
	Precession   []float64                  `json:"precession"`
	PhiEu        []float64                  `json:"phi_eu"`
	ThetaEu      []float64                  `json:"theta_eu"`
	BPhiEu       []float64                  `json:"bphi_eu"`
	ETot         []float64                  `json:"etot"`
	DEDt         []float64                  `json:"dedt"`
	Moments      Moments                    `json:"moments"`
	Asphericity  AsphericityPair            `json:"asphericity"`
	Tilts        *series.Tilts              `json:"tilts"`
	Stride       int                        `json:"stride"`
	Metrics      map[string]float64         `json:"metrics,omitempty"`
}

func (r *Result) Len() int { return len(r.Time) }

// NumBodies counts the resolved body row plus every point mass but the centre.
func (r *Result) NumBodies() int { return len(r.Elements) }
