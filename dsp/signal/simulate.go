package signal

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/helenejund/crossCalib/dsp/spectrum"
)

// SimulateSecondOrder filters data through a second-order seismometer
// response with natural frequency f0 (Hz), damping ratio ζ, and passband
// gain, returning a new slice of the same length.
//
// The filtering runs in the frequency domain over the full record, which
// keeps the simulated response exactly consistent with the transfer
// function the calibration routines estimate.
func SimulateSecondOrder(data []float64, sampleRate, f0, damping, gain float64) ([]float64, error) {
	spec, freqs, err := spectrum.Compute(data, sampleRate)
	if err != nil {
		return nil, err
	}

	spec = ApplySecondOrder(spec, freqs, f0, damping, gain)

	plan, err := algofft.NewPlan64(len(spec))
	if err != nil {
		return nil, fmt.Errorf("signal: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, len(spec))
	if err := plan.Inverse(out, spec); err != nil {
		return nil, fmt.Errorf("signal: inverse FFT failed: %w", err)
	}

	result := make([]float64, len(out))
	for i, c := range out {
		result[i] = real(c)
	}

	return result, nil
}
