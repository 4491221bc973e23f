package envelope

import (
	"fmt"

	"github.com/arloliu/isodist/chem"
	"github.com/arloliu/isodist/errs"
)

// FromComposition folds an elemental composition into a single envelope
// representing the isotope pattern of the whole molecule.
//
// For each element with a non-zero count, the element's single-atom
// pattern is taken from the table, raised to the atom count with Mult,
// and convolved into the running total. Elements are folded in canonical
// order (chem.Composition.Elements), so equal compositions always produce
// bitwise-equal envelopes. Elements with a zero count contribute the
// identity and are skipped.
//
// Returns errs.ErrUnknownElement when a symbol is missing from the table
// and errs.ErrNegativeAtomCount when the composition carries a negative
// count.
func FromComposition(comp chem.Composition, table chem.IsotopeTable, opts ...ConvolveOption) (*Envelope, error) {
	dist := Identity()

	for _, sym := range comp.Elements() {
		count := comp[sym]
		if count < 0 {
			return nil, fmt.Errorf("%w: element %s has count %d", errs.ErrNegativeAtomCount, sym, count)
		}

		iso, ok := table[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %s", errs.ErrUnknownElement, sym)
		}

		// Convolving the identity with the raw table pattern normalizes
		// and prunes it before exponentiation.
		atom := Identity()
		if err := atom.Add(fromIsotope(iso), opts...); err != nil {
			return nil, fmt.Errorf("element %s: %w", sym, err)
		}

		element, err := atom.Mult(count, opts...)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", sym, err)
		}

		if err := dist.Add(element, opts...); err != nil {
			return nil, fmt.Errorf("element %s: %w", sym, err)
		}
	}

	return dist, nil
}

// fromIsotope wraps a table entry as an envelope without copying its
// abundance vector. The result is read-only input for Add, which never
// mutates its argument.
func fromIsotope(iso chem.Isotope) *Envelope {
	return &Envelope{
		MonoMass:    iso.MonoMass,
		PeakCount:   len(iso.Abundances),
		Intensities: iso.Abundances,
	}
}
