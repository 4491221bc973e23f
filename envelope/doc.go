// Package envelope implements the isotope-envelope value type and the
// convolution algebra on it.
//
// An Envelope is a discretized isotope distribution: the mass of its
// monoisotopic peak plus a vector of relative intensities at one-dalton
// spacing. Combining two chemical species multiplies their independent
// isotope probability distributions, which on the discretized form is a
// polynomial convolution of the intensity vectors. The package provides:
//
//   - Add: pairwise convolution with normalization and tail pruning
//   - Mult: n-fold self-convolution in O(log n) convolutions via binary
//     exponentiation
//   - FromComposition: folding a whole elemental composition into one
//     molecule-level envelope
//
// Intensities are kept max-normalized: after every convolution the largest
// significant peak is exactly 1.0, and trailing peaks below the prune
// threshold (default 1e-6, configurable with WithPruneThreshold) are
// dropped from PeakCount. The backing slice may stay longer than
// PeakCount; only the first PeakCount entries are significant.
//
// Envelopes are value-like. Copy returns an independent deep copy, and a
// convolution always materializes a fresh intensity vector, so no two
// envelopes share mutable storage. Nothing in the package is safe for
// concurrent mutation of a single envelope, but distinct envelopes can be
// processed on distinct goroutines freely.
package envelope
