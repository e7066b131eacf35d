package pipeline

import "errors"

var (
	// ErrFrame indicates an unknown precession reference frame.
	ErrFrame = errors.New("pipeline: unknown precession frame")

	// ErrMaxPoints indicates a non-positive point cap.
	ErrMaxPoints = errors.New("pipeline: max points must be positive")
)
