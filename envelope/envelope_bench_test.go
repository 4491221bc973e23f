package envelope

import (
	"testing"

	"github.com/arloliu/isodist/chem"
)

func benchAtom(b *testing.B, sym string) *Envelope {
	b.Helper()

	atom := Identity()
	if err := atom.Add(fromIsotope(chem.DefaultTable[sym])); err != nil {
		b.Fatal(err)
	}

	return atom
}

func BenchmarkAdd(b *testing.B) {
	carbon := benchAtom(b, "C")
	wide, err := carbon.Mult(50)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc := wide.Copy()
		if err := acc.Add(wide); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMult(b *testing.B) {
	carbon := benchAtom(b, "C")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := carbon.Mult(500); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromComposition(b *testing.B) {
	// Averagine-scale peptide composition near 1000 Da.
	comp := chem.Composition{"C": 44, "H": 70, "N": 12, "O": 14, "S": 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FromComposition(comp, chem.DefaultTable); err != nil {
			b.Fatal(err)
		}
	}
}
