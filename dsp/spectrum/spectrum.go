package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectrum functions.
var (
	ErrEmptyInput        = errors.New("spectrum: input is empty")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
)

// Compute returns the full-length complex spectrum of data together with
// its frequency axis in FFT bin order.
//
// No windowing, normalization, or smoothing is applied; the spectrum has
// exactly len(data) bins so that downstream index-based searches line up
// with [Frequencies].
func Compute(data []float64, sampleRate float64) ([]complex128, []float64, error) {
	if len(data) == 0 {
		return nil, nil, ErrEmptyInput
	}

	if sampleRate <= 0 {
		return nil, nil, ErrInvalidSampleRate
	}

	n := len(data)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range data {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)

	err = plan.Forward(out, in)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return out, Frequencies(n, sampleRate), nil
}

// Frequencies returns the frequency axis for an n-point spectrum at the
// given sample rate, in FFT bin order: DC first, ascending positive
// frequencies, then negative frequencies descending in magnitude.
//
// The axis is deliberately not sorted; the calibration parameter search
// depends on bin order matching the spectrum.
func Frequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}

	f := make([]float64, n)
	df := sampleRate / float64(n)

	half := (n-1)/2 + 1
	for i := 0; i < half; i++ {
		f[i] = float64(i) * df
	}

	for i := half; i < n; i++ {
		f[i] = float64(i-n) * df
	}

	return f
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// The magnitude is computed through the SIMD-optimized vecmath kernel
// when available (AVX2, SSE2, NEON).
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	n := len(in)
	re := make([]float64, n)
	im := make([]float64, n)

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)

	return out
}

// PhaseDeg returns arg(X[k]) for each complex spectrum bin in degrees.
func PhaseDeg(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c) * 180 / math.Pi
	}

	return out
}
