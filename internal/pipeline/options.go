package pipeline

import (
	"context"
	"io"
	"log/slog"
	"math"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/series"
)

// Precession reference frames.
const (
	FrameXY    = "xy"    // ex = x, ey = y
	FrameTotal = "total" // plane normal to the initial total angular momentum
)

// Source loads one run's bodies. dataio.Dir is the file-backed source.
type Source interface {
	Load(ctx context.Context) (*dynamo.Collection, error)
}

type Options struct {
	MaxPoints       int     // cap on sampled points, stride = max(1, N/MaxPoints)
	GravConst       float64 // G, multiplies every mass to give GM
	ResolvedMass    float64 // mass of the resolved body in mass units, 1 when zero
	AngleScale      float64 // obliquity multiplier, degrees by default
	PrecessionFrame string
	TrackAxes       bool // sign-align principal axes between steps
	Observer        dynamo.Observer
	Logger          *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		MaxPoints:       series.DefaultMaxPoints,
		GravConst:       1,
		ResolvedMass:    1,
		AngleScale:      180 / math.Pi,
		PrecessionFrame: FrameXY,
	}
}

func (o Options) withDefaults() (Options, error) {
	if o.MaxPoints == 0 {
		o.MaxPoints = series.DefaultMaxPoints
	}
	if o.MaxPoints < 0 {
		return o, ErrMaxPoints
	}
	if o.GravConst == 0 {
		o.GravConst = 1
	}
	if o.ResolvedMass == 0 {
		o.ResolvedMass = 1
	}
	if o.AngleScale == 0 {
		o.AngleScale = 180 / math.Pi
	}
	switch o.PrecessionFrame {
	case "":
		o.PrecessionFrame = FrameXY
	case FrameXY, FrameTotal:
	default:
		return o, ErrFrame
	}
	if o.Observer == nil {
		o.Observer = dynamo.NopObserver{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o, nil
}
