package calib

import (
	"math"

	"github.com/helenejund/crossCalib/dsp/spectrum"
)

const (
	defaultNormFreq = 1.0   // Hz
	defaultMinFreq  = 0.001 // Hz
)

// ParamConfig holds parameter-extraction settings.
type ParamConfig struct {
	// NormFreq is the normalization frequency in Hz at which sensitivity
	// is read and the amplitude curve is normalized to unity. Zero
	// selects 1 Hz, the usual choice for broadband sensors.
	NormFreq float64

	// MinFreq is the lower bound in Hz of the corner-frequency search.
	// Zero selects 1 mHz. Raise it when low-frequency noise corrupts the
	// search window.
	MinFreq float64
}

// Params are the physical instrument parameters extracted from a
// transfer function.
type Params struct {
	CornerFreq  float64 // natural frequency in Hz
	Damping     float64 // dimensionless damping ratio
	Sensitivity float64 // |H| at the normalization frequency
}

func normalizeParamConfig(cfg ParamConfig) ParamConfig {
	if cfg.NormFreq == 0 {
		cfg.NormFreq = defaultNormFreq
	}

	if cfg.MinFreq == 0 {
		cfg.MinFreq = defaultMinFreq
	}

	return cfg
}

// Parameters extracts corner frequency, damping ratio, and sensitivity
// from a transfer function.
//
// The corner is located inside [MinFreq, NormFreq) at the bin where H is
// most nearly purely imaginary (phase closest to ±90°), the landmark of a
// second-order seismometer's natural frequency. Damping follows from the
// normalized amplitude at that bin as 1/(2·Amp); the formula is tied to
// the velocity-scaled H convention (H·2πif) of the calibration driver.
// Sensitivity is the raw magnitude at the normalization frequency.
//
// Non-finite H bins inside the search window propagate into the result
// rather than failing. An empty search window (MinFreq resolving at or
// above NormFreq on this axis) returns ErrInvalidRange.
func Parameters(h []complex128, freq []float64, cfg ParamConfig) (Params, error) {
	if len(h) == 0 {
		return Params{}, ErrEmptyTransfer
	}

	if len(h) != len(freq) {
		return Params{}, ErrLengthMismatch
	}

	cfg = normalizeParamConfig(cfg)

	inorm := nearestIndex(freq, cfg.NormFreq)
	imin := nearestIndex(freq, cfg.MinFreq)

	if imin >= inorm {
		return Params{}, ErrInvalidRange
	}

	indx := imin
	best := math.Inf(1)

	for i := imin; i < inorm; i++ {
		re := math.Abs(real(h[i]))
		if re < best {
			best = re
			indx = i
		}
	}

	mag := spectrum.Magnitude(h)
	sensitivity := mag[inorm]
	amp := mag[indx] / sensitivity

	return Params{
		CornerFreq:  freq[indx],
		Damping:     1 / (2 * amp),
		Sensitivity: sensitivity,
	}, nil
}

// Bode returns the amplitude and phase arrays of a transfer function for
// plotting: |H| normalized to unity at the normalization frequency, and
// the phase in degrees. Rendering is the caller's business.
func Bode(h []complex128, freq []float64, cfg ParamConfig) (amp, phaseDeg []float64, err error) {
	if len(h) == 0 {
		return nil, nil, ErrEmptyTransfer
	}

	if len(h) != len(freq) {
		return nil, nil, ErrLengthMismatch
	}

	cfg = normalizeParamConfig(cfg)
	inorm := nearestIndex(freq, cfg.NormFreq)

	amp = spectrum.Magnitude(h)

	norm := amp[inorm]
	for i := range amp {
		amp[i] /= norm
	}

	return amp, spectrum.PhaseDeg(h), nil
}

// nearestIndex returns the index of the frequency bin closest to target
// by absolute difference, first occurrence on ties.
func nearestIndex(freq []float64, target float64) int {
	idx := 0
	best := math.Inf(1)

	for i, f := range freq {
		d := math.Abs(f - target)
		if d < best {
			best = d
			idx = i
		}
	}

	return idx
}
