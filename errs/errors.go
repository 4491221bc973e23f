// Package errs defines the sentinel errors returned by the isodist packages.
//
// All errors are precondition or domain violations: they are deterministic
// for a given input and never worth retrying. Callers should match them
// with errors.Is; use sites wrap them with fmt.Errorf("%w: ...") to attach
// context.
package errs

import "errors"

var (
	// ErrUnsupportedMode is returned when a computation mode that is
	// intentionally not implemented is requested, such as averagine
	// estimation without sulphur.
	ErrUnsupportedMode = errors.New("unsupported mode")

	// ErrDegenerateConvolution is returned when a convolution result has no
	// positive maximum, so it cannot be normalized or pruned. This happens
	// only when an input envelope carries an all-zero intensity pattern.
	ErrDegenerateConvolution = errors.New("degenerate convolution")

	// ErrInvalidExponent is returned when an envelope is convolved with
	// itself a non-positive number of times.
	ErrInvalidExponent = errors.New("invalid exponent")

	// ErrInvalidCharge is returned when a mass is computed from an m/z value
	// with zero charge.
	ErrInvalidCharge = errors.New("invalid charge")

	// ErrNegativeAtomCount is returned when an elemental composition carries
	// a negative atom count, typically because the averagine hydrogen
	// correction was applied to a mass outside the model's valid range.
	ErrNegativeAtomCount = errors.New("negative atom count")

	// ErrUnknownElement is returned when a composition or ratio table refers
	// to an element symbol that is missing from the isotope table.
	ErrUnknownElement = errors.New("unknown element")

	// ErrInvalidPruneThreshold is returned when a prune threshold outside
	// the open interval (0, 1) is configured.
	ErrInvalidPruneThreshold = errors.New("invalid prune threshold")
)
