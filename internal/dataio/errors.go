package dataio

import (
	"errors"
	"fmt"
)

var (
	// ErrColumns indicates a data row with the wrong number of fields.
	ErrColumns = errors.New("dataio: wrong column count")

	// ErrNumber indicates a field that does not parse as a float.
	ErrNumber = errors.New("dataio: malformed number")

	// ErrNoPoints indicates a directory reader asked for zero point masses.
	ErrNoPoints = errors.New("dataio: at least one point mass file required")
)

// LoadError locates a parse failure inside an input file.
type LoadError struct {
	File    string
	Line    int
	Wrapped error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Wrapped)
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}
