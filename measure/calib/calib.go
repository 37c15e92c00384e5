package calib

import (
	"errors"

	"github.com/helenejund/crossCalib/dsp/paz"
	"github.com/helenejund/crossCalib/dsp/spectrum"
	"github.com/helenejund/crossCalib/dsp/trace"
)

// Errors returned by calibration functions.
var (
	// ErrNoPolesZeros reports that deconvolution was requested without an
	// instrument model. Cross still returns a usable transfer function
	// computed from the raw monitor trace; the caller decides whether the
	// degraded result is acceptable.
	ErrNoPolesZeros = errors.New("calib: deconvolution requested without a poles/zeros model")

	ErrEmptyTransfer  = errors.New("calib: transfer function is empty")
	ErrLengthMismatch = errors.New("calib: transfer function and frequency axis lengths differ")
	ErrInvalidRange   = errors.New("calib: parameter search window is empty")
)

// Highpass order applied by Cross before spectral comparison. The filter
// runs zero-phase, so the effective rolloff is twice this.
const crossFilterOrder = 4

// Fraction of the available bins used for the default smoothing window.
const defaultSmoothFraction = 0.0001

// Config holds white-noise calibration parameters.
type Config struct {
	// Smooth is the moving-average window length applied to the transfer
	// function. Zero selects the default of 0.01% of the available bins
	// (which degenerates to no smoothing for short records).
	Smooth int
}

// Result is an estimated transfer function: the complex ratio H of the
// response spectrum over the monitor spectrum and its frequency axis, in
// FFT bin order.
//
// len(H) == len(Freq) always. Bins where the monitor spectrum has zero
// magnitude divide to Inf/NaN and propagate silently; callers inspecting
// degenerate input should check for non-finite values themselves.
type Result struct {
	H    []complex128
	Freq []float64

	// Reconciled reports that the two frequency axes disagreed in length
	// or values and were trimmed to a common support. Best-effort
	// alignment, not resampling; see spectrum.Align.
	Reconciled bool

	// Deconvolved reports that the monitor trace had an instrument
	// response removed before division.
	Deconvolved bool
}

// White estimates the transfer function of an instrument from a known
// excitation signal (monitor) and the instrument's recorded response.
//
// Both spectra are computed over the full trace length, aligned onto a
// common frequency support if their axes disagree, divided bin by bin,
// and smoothed with a complex moving average. Caller-owned traces are
// never mutated.
func White(monitor, response trace.Trace, cfg Config) (Result, error) {
	if err := monitor.Validate(); err != nil {
		return Result{}, err
	}

	if err := response.Validate(); err != nil {
		return Result{}, err
	}

	mSpec, f1, err := spectrum.Compute(monitor.Data, monitor.SampleRate)
	if err != nil {
		return Result{}, err
	}

	rSpec, f2, err := spectrum.Compute(response.Data, response.SampleRate)
	if err != nil {
		return Result{}, err
	}

	f1, mSpec, _, rSpec, reconciled := spectrum.Align(f1, mSpec, f2, rSpec)

	h := make([]complex128, len(f1))
	for i := range h {
		h[i] = rSpec[i] / mSpec[i]
	}

	window := cfg.Smooth
	if window <= 0 {
		window = int(defaultSmoothFraction * float64(len(f1)))
	}

	h = spectrum.SmoothComplex(h, window)

	return Result{H: h, Freq: f1, Reconciled: reconciled}, nil
}

// CrossConfig holds colocated-sensor calibration parameters.
type CrossConfig struct {
	// Filter, when positive, is the corner frequency in Hz of a
	// zero-phase Butterworth highpass applied identically to both traces
	// before comparison.
	Filter float64

	// Deconvolve requests removal of the reference instrument's response
	// from the monitor trace, converting it to ground motion. Requires
	// PAZ.
	Deconvolve bool

	// PAZ is the reference instrument's poles/zeros model.
	PAZ *paz.Model

	// WaterLevelDB overrides the deconvolution water level; zero keeps
	// the paz package default.
	WaterLevelDB float64

	// Smooth is forwarded to White.
	Smooth int
}

// Cross estimates the transfer function of a sensor against a colocated
// reference sensor.
//
// Both traces are copied, optionally highpass filtered, and the reference
// (monitor) trace is optionally deconvolved to ground motion before the
// spectral division of White. If deconvolution is requested without a
// model, Cross computes the transfer function from the raw monitor trace
// and returns it together with ErrNoPolesZeros; the result is valid but
// expressed relative to the reference instrument's output rather than
// true ground motion.
func Cross(monitor, response trace.Trace, cfg CrossConfig) (Result, error) {
	if err := monitor.Validate(); err != nil {
		return Result{}, err
	}

	if err := response.Validate(); err != nil {
		return Result{}, err
	}

	m := monitor.Copy()
	r := response.Copy()

	if cfg.Filter > 0 {
		if err := m.Highpass(cfg.Filter, crossFilterOrder); err != nil {
			return Result{}, err
		}

		if err := r.Highpass(cfg.Filter, crossFilterOrder); err != nil {
			return Result{}, err
		}
	}

	var softErr error

	deconvolved := false

	if cfg.Deconvolve {
		if cfg.PAZ != nil {
			err := paz.Remove(&m, cfg.PAZ, paz.RemoveConfig{WaterLevelDB: cfg.WaterLevelDB})
			if err != nil {
				return Result{}, err
			}

			deconvolved = true
		} else {
			softErr = ErrNoPolesZeros
		}
	}

	res, err := White(m, r, Config{Smooth: cfg.Smooth})
	if err != nil {
		return res, err
	}

	res.Deconvolved = deconvolved

	return res, softErr
}
