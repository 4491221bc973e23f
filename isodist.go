// Package isodist computes theoretical isotope-abundance distributions for
// peptides and other molecules.
//
// Given only a bulk mass, the averagine model estimates an approximate
// elemental composition, and repeated convolution of per-element isotope
// patterns turns that composition into a molecule-level isotope envelope:
//
//	dist, err := isodist.MassToDistribution(1000.0)
//	for i, m := range dist.Masses {
//	    fmt.Printf("%.4f Da  %.6f\n", m, dist.Intensities[i])
//	}
//
// A companion helper converts a measured m/z and charge back to an
// uncharged precursor mass:
//
//	mass, err := isodist.MassFromMZ(501.0, 2)
//
// This package provides convenient top-level wrappers bound to the packaged
// reference data (chem.DefaultTable, averagine.DefaultRatios). For explicit
// control over the chemical tables or the pruning threshold, use the
// envelope and averagine packages directly, or the With-suffixed variants
// here.
//
// Everything in this module is pure, synchronous computation: no I/O, no
// goroutines, no shared mutable state. Batching calls across goroutines is
// safe as long as each envelope and each DistCache stays on one goroutine.
package isodist

import (
	"fmt"
	"math"

	"github.com/arloliu/isodist/averagine"
	"github.com/arloliu/isodist/chem"
	"github.com/arloliu/isodist/envelope"
	"github.com/arloliu/isodist/errs"
)

// Distribution is a computed isotope distribution: parallel slices of
// absolute isotopologue masses in Da and their relative intensities.
// The intensities are max-normalized; the largest peak is 1.0. Only
// significant peaks are included.
type Distribution struct {
	Masses      []float64
	Intensities []float64
}

// MassToDistribution computes the theoretical isotope distribution of a
// molecule from its bulk mass, using the packaged averagine ratios and
// isotope table.
//
// Returns errs.ErrNegativeAtomCount when the mass is outside the averagine
// model's valid range (near zero or negative).
func MassToDistribution(mass float64, opts ...envelope.ConvolveOption) (Distribution, error) {
	return MassToDistributionWith(mass, averagine.DefaultRatios, chem.DefaultTable, opts...)
}

// MassToDistributionWith is MassToDistribution with explicit averagine
// ratios and an explicit isotope table.
func MassToDistributionWith(mass float64, ratios map[string]float64, table chem.IsotopeTable, opts ...envelope.ConvolveOption) (Distribution, error) {
	comp, err := averagine.Formula(mass, ratios, table, true)
	if err != nil {
		return Distribution{}, fmt.Errorf("estimating averagine formula: %w", err)
	}

	env, err := envelope.FromComposition(comp, table, opts...)
	if err != nil {
		return Distribution{}, fmt.Errorf("folding composition %s: %w", comp.Formula(), err)
	}

	return fromEnvelope(env), nil
}

// MassFromMZ converts a monoisotopic m/z value and a charge state to the
// uncharged precursor mass: monoMZ*|charge| - charge*chem.ProtonMass.
// The charge sign encodes polarity; negative charges add proton masses.
//
// charge must be non-zero; charge == 0 returns errs.ErrInvalidCharge.
func MassFromMZ(monoMZ float64, charge int) (float64, error) {
	if charge == 0 {
		return 0, fmt.Errorf("%w: charge must be non-zero", errs.ErrInvalidCharge)
	}

	fCharge := float64(charge)

	return monoMZ*math.Abs(fCharge) - fCharge*chem.ProtonMass, nil
}

// fromEnvelope flattens an envelope into absolute masses and intensities,
// keeping only the significant peaks. Isotopologue peaks sit at one-dalton
// spacing above the monoisotopic mass.
func fromEnvelope(env *envelope.Envelope) Distribution {
	masses := make([]float64, env.PeakCount)
	intensities := make([]float64, env.PeakCount)
	for i := 0; i < env.PeakCount; i++ {
		masses[i] = env.MonoMass + float64(i)
		intensities[i] = env.Intensities[i]
	}

	return Distribution{Masses: masses, Intensities: intensities}
}
