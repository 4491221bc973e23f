package envelope

import (
	"fmt"

	"github.com/arloliu/isodist/errs"
)

// Envelope is a discretized isotope distribution.
//
// MonoMass is the mass of the lightest (monoisotopic) peak in Da.
// Intensities[i] is the relative abundance of the isotopologue i Da heavier
// than MonoMass. PeakCount is the number of leading entries that are
// significant; the slice may be longer, and entries at index PeakCount and
// beyond are pruned residue that callers must ignore.
type Envelope struct {
	MonoMass    float64
	PeakCount   int
	Intensities []float64
}

// Identity returns the neutral envelope: zero mass, a single peak of
// intensity 1. It represents a species of zero atoms and is the identity
// element of convolution.
func Identity() *Envelope {
	return &Envelope{
		MonoMass:    0,
		PeakCount:   1,
		Intensities: []float64{1.0},
	}
}

// Copy returns an independent deep copy of the envelope. The copy shares
// no storage with the original, so mutating one never affects the other.
func (e *Envelope) Copy() *Envelope {
	intensities := make([]float64, len(e.Intensities))
	copy(intensities, e.Intensities)

	return &Envelope{
		MonoMass:    e.MonoMass,
		PeakCount:   e.PeakCount,
		Intensities: intensities,
	}
}

// Add convolves e with other in place, turning e into the isotope pattern
// of the combined species. The monoisotopic masses add; the intensity
// vectors convolve, are re-normalized to a maximum of 1.0, and the trailing
// peaks below the prune threshold are dropped from PeakCount.
//
// other is never modified, and e receives a freshly allocated intensity
// vector. Convolving an envelope with itself (e.Add(e)) is allowed.
//
// Returns errs.ErrDegenerateConvolution when the convolved pattern has no
// positive maximum, and errs.ErrInvalidPruneThreshold when an option
// carries a threshold outside (0, 1).
func (e *Envelope) Add(other *Envelope, opts ...ConvolveOption) error {
	cfg, err := newConvolveConfig(opts...)
	if err != nil {
		return err
	}

	return e.convolve(other, cfg.pruneThreshold)
}

// Mult returns a new envelope equal to convolving e with itself n times,
// i.e. the isotope pattern of n identical copies of the species e
// represents. e itself is not modified.
//
// The naive approach needs n-1 convolutions; Mult needs O(log n) by
// decomposing n into its binary digits and repeatedly squaring a running
// envelope, which is valid because convolution is associative and
// commutative.
//
// n must be positive; n <= 0 returns errs.ErrInvalidExponent.
func (e *Envelope) Mult(n int, opts ...ConvolveOption) (*Envelope, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: exponent must be positive, got %d", errs.ErrInvalidExponent, n)
	}
	if n == 1 {
		return e.Copy(), nil
	}

	acc := Identity()
	square := e.Copy()

	for m := uint(n); ; {
		if m&1 == 1 {
			if err := acc.Add(square, opts...); err != nil {
				return nil, err
			}
		}

		m >>= 1
		if m == 0 {
			break
		}

		// Square to double the exponent carried by the next bit.
		if err := square.Add(square, opts...); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
