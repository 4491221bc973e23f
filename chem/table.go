package chem

// DefaultTable holds the natural-abundance isotope patterns for the
// averagine element set. Monoisotopic masses are in Da; abundance vectors
// are indexed by neutron offset from the monoisotopic form, with explicit
// zeros for offsets that do not occur in nature (e.g. 35S).
var DefaultTable = IsotopeTable{
	"C": {
		MonoMass:   12.0,
		Abundances: []float64{0.9893, 0.0107},
	},
	"H": {
		MonoMass:   1.00782503207,
		Abundances: []float64{0.999885, 0.000115},
	},
	"N": {
		MonoMass:   14.0030740048,
		Abundances: []float64{0.99636, 0.00364},
	},
	"O": {
		MonoMass:   15.9949146196,
		Abundances: []float64{0.99757, 0.00038, 0.00205},
	},
	"S": {
		MonoMass:   31.97207100,
		Abundances: []float64{0.9499, 0.0075, 0.0425, 0.0, 0.0001},
	},
}
