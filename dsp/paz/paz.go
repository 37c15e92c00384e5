package paz

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/helenejund/crossCalib/dsp/spectrum"
	"github.com/helenejund/crossCalib/dsp/trace"
)

// Errors returned by poles/zeros operations.
var (
	ErrNoPoles         = errors.New("paz: model has no poles")
	ErrInvalidGain     = errors.New("paz: normalization factor must be non-zero")
	ErrInvalidWaterLvl = errors.New("paz: water level must be positive")
)

// Default water level for response inversion, in dB below the response
// maximum. Deep enough that only exact spectral zeros are regularized.
const DefaultWaterLevelDB = 600.0

// Model is a poles/zeros description of an instrument's analog response.
//
// The response in the Laplace domain is
//
//	H(s) = Gain * Π(s - zᵢ) / Π(s - pⱼ) * Sensitivity,  s = 2πi·f
//
// where Gain is the A0 normalization factor and Sensitivity the overall
// instrument gain (counts per ground-motion unit). A zero Sensitivity is
// treated as 1.
type Model struct {
	Poles       []complex128
	Zeros       []complex128
	Gain        float64
	Sensitivity float64
}

// Validate checks that the model can be evaluated and inverted.
func (m *Model) Validate() error {
	if len(m.Poles) == 0 {
		return ErrNoPoles
	}

	if m.Gain == 0 {
		return ErrInvalidGain
	}

	return nil
}

// Response evaluates the model at the given frequency in Hz.
func (m *Model) Response(freqHz float64) complex128 {
	s := complex(0, 2*math.Pi*freqHz)

	h := complex(m.Gain, 0)
	for _, z := range m.Zeros {
		h *= s - z
	}

	for _, p := range m.Poles {
		h /= s - p
	}

	sens := m.Sensitivity
	if sens == 0 {
		sens = 1
	}

	return h * complex(sens, 0)
}

// RemoveConfig configures response removal.
type RemoveConfig struct {
	// WaterLevelDB is the spectral water level in dB below the response
	// maximum used to regularize the inversion. Zero selects
	// DefaultWaterLevelDB.
	WaterLevelDB float64
}

// Remove deconvolves the instrument response described by the model from
// the trace, in place, converting it from instrument units to ground
// motion units.
//
// The trace spectrum is divided by the model response evaluated on the
// trace's own frequency bins, with water-level regularization of
// near-zero response bins. No taper and no mean removal are applied; the
// caller is responsible for detrending and tapering beforehand.
func Remove(tr *trace.Trace, m *Model, cfg RemoveConfig) error {
	if err := tr.Validate(); err != nil {
		return err
	}

	if err := m.Validate(); err != nil {
		return err
	}

	wl := cfg.WaterLevelDB
	if wl == 0 {
		wl = DefaultWaterLevelDB
	}

	if wl < 0 {
		return ErrInvalidWaterLvl
	}

	n := tr.Len()

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("paz: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range tr.Data {
		in[i] = complex(v, 0)
	}

	spec := make([]complex128, n)
	if err := plan.Forward(spec, in); err != nil {
		return fmt.Errorf("paz: forward FFT failed: %w", err)
	}

	freqs := spectrum.Frequencies(n, tr.SampleRate)

	resp := make([]complex128, n)
	for i, f := range freqs {
		resp[i] = m.Response(f)
	}

	invertWaterLevel(resp, wl)

	for i := range spec {
		spec[i] *= resp[i]
	}

	out := make([]complex128, n)
	if err := plan.Inverse(out, spec); err != nil {
		return fmt.Errorf("paz: inverse FFT failed: %w", err)
	}

	for i := range tr.Data {
		tr.Data[i] = real(out[i])
	}

	return nil
}

// invertWaterLevel replaces each response bin with its regularized
// reciprocal. Bins whose magnitude falls below the water level (relative
// to the response maximum) are raised to the water level with their phase
// preserved before inversion; exact zeros invert to zero.
func invertWaterLevel(resp []complex128, waterLevelDB float64) {
	maxMag := 0.0
	for _, h := range resp {
		mag := cmplx.Abs(h)
		if mag > maxMag {
			maxMag = mag
		}
	}

	if maxMag == 0 {
		for i := range resp {
			resp[i] = 0
		}

		return
	}

	swamp := maxMag * math.Pow(10, -waterLevelDB/20)

	for i, h := range resp {
		mag := cmplx.Abs(h)

		switch {
		case mag == 0:
			resp[i] = 0
		case mag < swamp:
			resp[i] = 1 / (h * complex(swamp/mag, 0))
		default:
			resp[i] = 1 / h
		}
	}
}
