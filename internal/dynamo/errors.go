package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for the body data model.
var (
	// ErrLengthMismatch indicates per-step series of one or more bodies disagree in length.
	ErrLengthMismatch = errors.New("dynamo: series length mismatch")

	// ErrNoCentralMass indicates a collection without point mass 0.
	ErrNoCentralMass = errors.New("dynamo: collection has no central point mass")

	// ErrEmptySeries indicates a body with no output steps.
	ErrEmptySeries = errors.New("dynamo: empty time series")
)

// SampleError wraps an error with the step that produced it.
type SampleError struct {
	Index   int
	Time    float64
	Wrapped error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Index, e.Time, e.Wrapped)
}

func (e *SampleError) Unwrap() error {
	return e.Wrapped
}
