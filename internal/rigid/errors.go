package rigid

import "errors"

var (
	// ErrEigen indicates the inertia tensor could not be factorized (NaN or Inf components).
	ErrEigen = errors.New("rigid: eigendecomposition of inertia tensor failed")

	// ErrZeroSpin indicates a sample with zero angular velocity.
	ErrZeroSpin = errors.New("rigid: zero angular velocity")

	// ErrZeroAngMom indicates a sample with zero spin angular momentum.
	ErrZeroAngMom = errors.New("rigid: zero spin angular momentum")
)
