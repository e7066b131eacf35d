// Package pipeline runs the full spin and orbit analysis of one N-body
// run and bundles every derived series for plotting and export.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/kepler"
	"github.com/san-kum/orbspin/internal/orbit"
	"github.com/san-kum/orbspin/internal/rigid"
	"github.com/san-kum/orbspin/internal/series"
	"github.com/san-kum/orbspin/internal/vec"
)

// Stage names reported to the observer.
const (
	StageLoad        = "load"
	StageOrbits      = "orbits"
	StageObliquity   = "obliquity"
	StageTilts       = "tilts"
	StageOrientation = "orientation"
	StagePrecession  = "precession"
)

type runner struct {
	opts Options
}

func (r *runner) stage(ctx context.Context, name string, fn func() (int, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	n, err := fn()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	r.opts.Observer.OnStage(name, n, elapsed)
	r.opts.Logger.Debug("stage complete", "stage", name, "samples", n, "elapsed", elapsed)
	return nil
}

// Run loads src and computes the analysis bundle. Load failures and
// zero-spin samples abort the run; a cancelled ctx returns ctx.Err().
func Run(ctx context.Context, src Source, opts Options) (*Result, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	r := &runner{opts: opts}
	log := opts.Logger

	var coll *dynamo.Collection
	err = r.stage(ctx, StageLoad, func() (int, error) {
		c, err := src.Load(ctx)
		if err != nil {
			return 0, err
		}
		if err := c.Validate(); err != nil {
			return 0, fmt.Errorf("pipeline: %w", err)
		}
		coll = c
		return c.Resolved.Len() * (1 + len(c.Points)), nil
	})
	if err != nil {
		return nil, err
	}

	cen := coll.Central()
	k := series.Stride(cen.Len(), opts.MaxPoints)
	log.Info("sampling", "steps", cen.Len(), "stride", k, "points", series.Count(cen.Len(), k))

	ds := series.Downsample(&coll.Resolved, k)
	res := &Result{
		Time:         ds.Time,
		Masses:       coll.Masses(),
		GravConst:    opts.GravConst,
		GM:           opts.GravConst * cen.Mass,
		ResolvedMass: opts.ResolvedMass,
		ETot:         ds.ETot,
		DEDt:         ds.DEDt,
		Stride:       k,
	}

	rel := orbit.OfResolved(&coll.Resolved, cen, k)
	err = r.stage(ctx, StageOrbits, func() (int, error) {
		res.Elements = make([][]kepler.OrbitalElements, len(coll.Points))
		els, err := orbit.Build(opts.GravConst*(cen.Mass+opts.ResolvedMass), rel)
		if err != nil {
			return 0, fmt.Errorf("pipeline: resolved body: %w", err)
		}
		res.Elements[0] = els
		for i := 1; i < len(coll.Points); i++ {
			p := &coll.Points[i]
			els, err := orbit.Build(opts.GravConst*(cen.Mass+p.Mass), orbit.OfPoint(p, cen, k))
			if err != nil {
				return 0, fmt.Errorf("pipeline: point mass %d: %w", i, err)
			}
			res.Elements[i] = els
		}
		return len(rel) * len(coll.Points), nil
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(ctx, StageObliquity, func() (int, error) {
		res.Obliquity = make([]float64, len(rel))
		for i, s := range rel {
			nl := ds.Samples[i].L.Unit()
			res.Obliquity[i] = vec.Angle(s.Normal(), nl) * opts.AngleScale
		}
		return len(rel), nil
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(ctx, StageTilts, func() (int, error) {
		tl, err := series.Aggregate(&ds, 1)
		if err != nil {
			return 0, inputStep(err, k)
		}
		res.Tilts = tl
		res.Spin = tl.Spin
		res.Tilt = tl.LMax
		return tl.Len(), nil
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(ctx, StageOrientation, func() (int, error) {
		return orient(&ds, k, res, opts.TrackAxes)
	})
	if err != nil {
		return nil, err
	}
	log.Info("principal moments", "i3", res.Moments.I3, "i2", res.Moments.I2, "i1", res.Moments.I1)
	for _, a := range []struct {
		at string
		v  rigid.Asphericity
	}{{"first", res.Asphericity.First}, {"last", res.Asphericity.Last}} {
		log.Info("asphericity", "at", a.at, "alpha", a.v.Alpha, "qeff", a.v.QEff, "gamma", a.v.Gamma)
	}

	err = r.stage(ctx, StagePrecession, func() (int, error) {
		ex, ey, err := precessionFrame(opts, &ds, rel)
		if err != nil {
			return 0, err
		}
		res.Precession = make([]float64, ds.Len())
		for i, s := range ds.Samples {
			res.Precession[i] = PrecessionAngle(s.L, ex, ey)
		}
		return ds.Len(), nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// inputStep rescales the index of a *dynamo.SampleError raised on the
// series sampled at stride k back to the step of the input files.
func inputStep(err error, k int) error {
	var se *dynamo.SampleError
	if errors.As(err, &se) {
		se.Index *= k
	}
	return err
}

// orient fills the Euler-like angles, the last-sample moments and the
// first/last asphericity. ds is the input sampled at stride k.
func orient(ds *dynamo.ResolvedSeries, k int, res *Result, track bool) (int, error) {
	n := ds.Len()
	res.PhiEu = make([]float64, n)
	res.ThetaEu = make([]float64, n)
	res.BPhiEu = make([]float64, n)

	var prev rigid.Frame
	for i, s := range ds.Samples {
		f, err := rigid.PrincipalFrame(s.I)
		if err != nil {
			return 0, &dynamo.SampleError{Index: i * k, Time: ds.Time[i], Wrapped: err}
		}
		if track && i > 0 {
			f = rigid.Align(prev, f)
		}
		prev = f

		o := rigid.Orient(f)
		res.PhiEu[i] = o.Phi
		res.ThetaEu[i] = o.Theta
		res.BPhiEu[i] = o.BPhi

		if i == 0 {
			res.Asphericity.First = rigid.AsphericityOf(f.I3, f.I2, f.I1)
		}
		if i == n-1 {
			res.Asphericity.Last = rigid.AsphericityOf(f.I3, f.I2, f.I1)
			res.Moments = Moments{I3: f.I3, I2: f.I2, I1: f.I1}
		}
	}
	return n, nil
}

// PrecessionAngle is atan2(L·ey, L·ex).
func PrecessionAngle(L, ex, ey vec.Vec3) float64 {
	return math.Atan2(L.Dot(ey), L.Dot(ex))
}

func precessionFrame(opts Options, ds *dynamo.ResolvedSeries, rel []orbit.Relative) (ex, ey vec.Vec3, err error) {
	switch opts.PrecessionFrame {
	case FrameTotal:
		if len(rel) == 0 {
			return vec.Vec3{}, vec.Vec3{}, dynamo.ErrEmptySeries
		}
		lo := rel[0].Pos.Cross(rel[0].Vel).Scale(opts.ResolvedMass)
		nt := ds.Samples[0].L.Add(lo).Unit()
		if !nt.IsFinite() {
			return vec.Vec3{}, vec.Vec3{}, rigid.ErrZeroAngMom
		}
		ex, ey = TotalFrame(nt)
		return ex, ey, nil
	default:
		return vec.New(1, 0, 0), vec.New(0, 1, 0), nil
	}
}

// TotalFrame returns the unit pair (ex, ey) spanning the plane normal to nt,
// ex being the part of x perpendicular to nt. For nt along x, y is used.
func TotalFrame(nt vec.Vec3) (ex, ey vec.Vec3) {
	ex = vec.Perp(vec.New(1, 0, 0), nt).Unit()
	if !ex.IsFinite() {
		ex = vec.Perp(vec.New(0, 1, 0), nt).Unit()
	}
	ey = vec.CrossUnit(nt, ex)
	return ex, ey
}
