package envelope

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const maxGenPeaks = 6

// genEnvelope generates well-formed envelopes: 1 to maxGenPeaks peaks,
// max-normalized intensities comfortably above the default prune threshold,
// and a positive monoisotopic mass.
func genEnvelope() gopter.Gen {
	return gopter.CombineGens(
		gen.SliceOfN(maxGenPeaks, gen.Float64Range(1e-4, 1.0)),
		gen.IntRange(1, maxGenPeaks),
		gen.Float64Range(1.0, 5000.0),
	).Map(func(vals []interface{}) *Envelope {
		intensities := vals[0].([]float64)
		count := vals[1].(int)
		mass := vals[2].(float64)

		return makeNormalized(intensities[:count], mass)
	})
}

func makeNormalized(intensities []float64, mass float64) *Envelope {
	var maxIntensity float64
	for _, v := range intensities {
		if v > maxIntensity {
			maxIntensity = v
		}
	}

	normalized := make([]float64, len(intensities))
	for i, v := range intensities {
		normalized[i] = v / maxIntensity
	}

	return &Envelope{MonoMass: mass, PeakCount: len(normalized), Intensities: normalized}
}

func envelopesApproxEqual(a, b *Envelope, tol float64) bool {
	if a.PeakCount != b.PeakCount {
		return false
	}
	if math.Abs(a.MonoMass-b.MonoMass) > tol {
		return false
	}
	for i := 0; i < a.PeakCount; i++ {
		if math.Abs(a.Intensities[i]-b.Intensities[i]) > tol {
			return false
		}
	}

	return true
}

func TestConvolution_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("identity convolution preserves the envelope", prop.ForAll(
		func(e *Envelope) bool {
			got := e.Copy()
			if err := got.Add(Identity()); err != nil {
				return false
			}

			return envelopesApproxEqual(e, got, 1e-12)
		},
		genEnvelope(),
	))

	properties.Property("convolution is commutative", prop.ForAll(
		func(a, b *Envelope) bool {
			ab := a.Copy()
			if err := ab.Add(b); err != nil {
				return false
			}

			ba := b.Copy()
			if err := ba.Add(a); err != nil {
				return false
			}

			return envelopesApproxEqual(ab, ba, 1e-12)
		},
		genEnvelope(),
		genEnvelope(),
	))

	properties.Property("monoisotopic masses add exactly", prop.ForAll(
		func(a, b *Envelope) bool {
			want := a.MonoMass + b.MonoMass

			ab := a.Copy()
			if err := ab.Add(b); err != nil {
				return false
			}

			return ab.MonoMass == want
		},
		genEnvelope(),
		genEnvelope(),
	))

	properties.Property("convolution keeps intensities max-normalized", prop.ForAll(
		func(a, b *Envelope) bool {
			ab := a.Copy()
			if err := ab.Add(b); err != nil {
				return false
			}

			var maxIntensity float64
			for i := 0; i < ab.PeakCount; i++ {
				if ab.Intensities[i] > maxIntensity {
					maxIntensity = ab.Intensities[i]
				}
			}

			return math.Abs(maxIntensity-1.0) <= 1e-12
		},
		genEnvelope(),
		genEnvelope(),
	))

	properties.TestingRun(t)
}

func TestMult_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("binary exponentiation matches naive repeated convolution", prop.ForAll(
		func(e *Envelope, n int) bool {
			fast, err := e.Mult(n)
			if err != nil {
				return false
			}

			naive := e.Copy()
			for i := 1; i < n; i++ {
				if err := naive.Add(e); err != nil {
					return false
				}
			}

			return envelopesApproxEqual(naive, fast, 1e-9)
		},
		genEnvelope(),
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}
