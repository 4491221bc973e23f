package chem

import (
	"slices"
	"strconv"
	"strings"
)

// ProtonMass is the mass of a proton in Da, used to convert between m/z
// values and uncharged masses.
const ProtonMass = 1.00727646688

// Isotope describes the natural isotope pattern of a single atom of one
// element.
//
// MonoMass is the mass of the lightest (monoisotopic) form. Abundances[i]
// is the relative natural abundance of the form i mass units heavier than
// MonoMass; isotopes that do not occur in nature hold a zero entry so the
// index always equals the neutron offset.
type Isotope struct {
	MonoMass   float64
	Abundances []float64
}

// IsotopeTable maps an element symbol to its natural isotope pattern.
type IsotopeTable map[string]Isotope

// Composition maps an element symbol to its atom count in a molecule.
type Composition map[string]int

// Elements returns the element symbols of the composition in canonical
// order: carbon first, hydrogen second, then the remaining symbols
// alphabetically (Hill order). Symbols with a zero count are skipped.
//
// The fixed order makes every computation that folds over a composition
// deterministic regardless of map iteration order.
func (c Composition) Elements() []string {
	syms := make([]string, 0, len(c))
	for sym, count := range c {
		if count == 0 {
			continue
		}
		syms = append(syms, sym)
	}
	slices.SortFunc(syms, compareHill)

	return syms
}

// Formula renders the composition as a canonical formula string in Hill
// order, e.g. "C44H70N12O14S1". Zero counts are omitted; counts are always
// written, including 1, so the string is unambiguous as a cache key.
func (c Composition) Formula() string {
	var sb strings.Builder
	for _, sym := range c.Elements() {
		sb.WriteString(sym)
		sb.WriteString(strconv.Itoa(c[sym]))
	}

	return sb.String()
}

// MonoMass returns the total monoisotopic mass of the composition in Da,
// looking each element up in the given table. The second return value is
// false when a symbol is missing from the table.
func (c Composition) MonoMass(table IsotopeTable) (float64, bool) {
	var total float64
	for sym, count := range c {
		iso, ok := table[sym]
		if !ok {
			return 0, false
		}
		total += float64(count) * iso.MonoMass
	}

	return total, true
}

// compareHill orders element symbols with C first, H second, and everything
// else alphabetically.
func compareHill(a, b string) int {
	ra, rb := hillRank(a), hillRank(b)
	if ra != rb {
		return ra - rb
	}

	return strings.Compare(a, b)
}

func hillRank(sym string) int {
	switch sym {
	case "C":
		return 0
	case "H":
		return 1
	default:
		return 2
	}
}
