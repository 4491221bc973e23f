package hash

import "github.com/cespare/xxhash/v2"

// FormulaID computes the xxHash64 of a canonical molecular formula string.
// Equal formulas always map to equal IDs, so the ID can key a cache of
// computed isotope distributions.
func FormulaID(formula string) uint64 {
	return xxhash.Sum64String(formula)
}
