// Package dynamo provides the data model for N-body output analysis.
//
// The package defines the per-step types read from simulation output and the
// aggregates the analysis pipeline consumes:
//
//   - [Sample]: position, velocity, spin and inertia of the resolved body at one step
//   - [ResolvedSeries]: the resolved body's time series and energies
//   - [PointMass]: one point-mass trajectory and its mass
//   - [Collection]: the resolved body plus point masses, point 0 being the centre
//   - [Observer]: hook notified after each pipeline stage
//
// # Example
//
//	coll, _ := dataio.Dir{Root: "run1", NumPoints: 2}.Load(ctx)
//	if err := coll.Validate(); err != nil {
//		return err
//	}
//	centre := coll.Central()
//
// # Thread Safety
//
// Values are never mutated after loading and may be shared between readers.
package dynamo
