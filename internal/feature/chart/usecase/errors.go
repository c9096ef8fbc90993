// Package usecase holds the chart core: scale mapping, path and axis
// derivation, the hover state machine and the layout observer.
package usecase

import "errors"

var (
	// ErrIndexOutOfRange is returned when a hover targets a sample that does not exist.
	ErrIndexOutOfRange = errors.New("sample index out of range")

	// ErrInvalidDimensions is returned for negative or non-finite surface sizes.
	ErrInvalidDimensions = errors.New("invalid dimensions")
)
