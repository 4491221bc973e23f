// Package averagine estimates an elemental composition for a peptide from
// its bulk mass alone, using the averagine model: a statistical "average
// amino-acid residue" whose per-element atom ratios were derived from
// large protein databases.
//
// The estimator scales the ratios to the target mass, rounds each element
// to a whole atom count, and reconciles the rounding error by adjusting
// the hydrogen count, hydrogen having the smallest mass granularity.
package averagine

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/isodist/chem"
	"github.com/arloliu/isodist/errs"
)

// UnitMass is the average mass of one averagine residue in Da.
const UnitMass = 111.1254

// DefaultRatios holds the average number of atoms of each element per
// averagine residue. Treat as read-only.
var DefaultRatios = map[string]float64{
	"C": 4.9384,
	"H": 7.7583,
	"N": 1.3577,
	"O": 1.4773,
	"S": 0.0417,
}

// Formula estimates the elemental composition of a molecule of the given
// bulk mass.
//
// Each element's count is round(mass/UnitMass * ratio). The residual
// between the target mass and the rounded composition's monoisotopic mass
// is converted to whole hydrogen atoms and added to the hydrogen count;
// the correction may be negative.
//
// The sulphur-free variant of the model is intentionally unsupported:
// sulphur == false returns errs.ErrUnsupportedMode. A mass small enough to
// drive the corrected hydrogen count negative is outside the model's valid
// range and returns errs.ErrNegativeAtomCount. A ratio element missing
// from the isotope table returns errs.ErrUnknownElement.
func Formula(mass float64, ratios map[string]float64, table chem.IsotopeTable, sulphur bool) (chem.Composition, error) {
	if !sulphur {
		return nil, fmt.Errorf("%w: averagine without sulphur is not implemented", errs.ErrUnsupportedMode)
	}

	units := mass / UnitMass

	// Sorted fold order keeps the accumulated mass, and with it the
	// hydrogen correction, deterministic.
	syms := make([]string, 0, len(ratios))
	for sym := range ratios {
		syms = append(syms, sym)
	}
	slices.Sort(syms)

	comp := make(chem.Composition, len(ratios))
	var total float64
	for _, sym := range syms {
		iso, ok := table[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %s", errs.ErrUnknownElement, sym)
		}

		count := int(math.Round(units * ratios[sym]))
		comp[sym] = count
		total += float64(count) * iso.MonoMass
	}

	hydrogen, ok := table["H"]
	if !ok {
		return nil, fmt.Errorf("%w: H", errs.ErrUnknownElement)
	}

	correction := int(math.Round((mass - total) / hydrogen.MonoMass))
	comp["H"] += correction

	for sym, count := range comp {
		if count < 0 {
			return nil, fmt.Errorf("%w: element %s has count %d for mass %g",
				errs.ErrNegativeAtomCount, sym, count, mass)
		}
	}

	return comp, nil
}
