package envelope

import (
	"fmt"

	"github.com/arloliu/isodist/errs"
	"github.com/arloliu/isodist/internal/options"
)

// DefaultPruneThreshold is the relative intensity below which trailing
// isotope peaks are dropped after a convolution.
const DefaultPruneThreshold = 1e-6

// convolveConfig holds the tunables of a single convolution.
type convolveConfig struct {
	pruneThreshold float64
}

// ConvolveOption configures a convolution. Options apply per call; the
// envelope itself carries no configuration.
type ConvolveOption = options.Option[*convolveConfig]

// WithPruneThreshold sets the relative intensity below which trailing
// peaks are pruned. The threshold must be in the open interval (0, 1);
// values outside it fail with errs.ErrInvalidPruneThreshold when the
// convolution runs.
//
// Lower thresholds keep longer isotope tails at the cost of wider
// follow-up convolutions.
func WithPruneThreshold(threshold float64) ConvolveOption {
	return options.New(func(cfg *convolveConfig) error {
		if threshold <= 0 || threshold >= 1 {
			return fmt.Errorf("%w: must be in (0, 1), got %g", errs.ErrInvalidPruneThreshold, threshold)
		}
		cfg.pruneThreshold = threshold

		return nil
	})
}

func newConvolveConfig(opts ...ConvolveOption) (*convolveConfig, error) {
	cfg := &convolveConfig{pruneThreshold: DefaultPruneThreshold}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// convolve replaces e with the convolution of e and other, pruning at the
// given relative threshold.
//
// The raw convolution is the standard discrete polynomial product:
// raw[k] = Σ_{i+j=k} e[i]·other[j], over the significant entries of both
// inputs. The result is normalized by its maximum, so the invariant
// max(Intensities[:PeakCount]) == 1 holds on return.
func (e *Envelope) convolve(other *Envelope, pruneThreshold float64) error {
	d0, d1 := e.PeakCount, other.PeakCount

	raw := make([]float64, d0+d1-1)
	for i := 0; i < d0; i++ {
		for j := 0; j < d1; j++ {
			raw[i+j] += e.Intensities[i] * other.Intensities[j]
		}
	}

	var maxIntensity float64
	for _, v := range raw {
		if v > maxIntensity {
			maxIntensity = v
		}
	}
	if !(maxIntensity > 0) {
		return fmt.Errorf("%w: convolved pattern has no positive maximum", errs.ErrDegenerateConvolution)
	}

	for k := range raw {
		raw[k] /= maxIntensity
	}

	// Drop the trailing peaks below the threshold. The maximum entry is
	// exactly 1, so the scan always stops at a valid index; the count
	// check guards the all-subthreshold case rather than underflowing.
	count := len(raw)
	for count > 0 && raw[count-1] < pruneThreshold {
		count--
	}
	if count == 0 {
		return fmt.Errorf("%w: every peak is below the prune threshold %g", errs.ErrDegenerateConvolution, pruneThreshold)
	}

	e.MonoMass += other.MonoMass
	e.PeakCount = count
	e.Intensities = raw

	return nil
}
