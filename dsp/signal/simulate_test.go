package signal

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestSimulateSecondOrderMatchesAnalyticResponse(t *testing.T) {
	const (
		rate = 100.0
		n    = 4096
		f0   = 0.1
		h    = 0.707
		gain = 3.0
	)

	// 12.5 Hz is bin-aligned at this length, so the output is exactly
	// the input sine scaled and phase-shifted by H(12.5).
	const freq = 12.5

	g := NewGenerator(rate)

	in, err := g.Sine(freq, 1, n)
	if err != nil {
		t.Fatal(err)
	}

	out, err := SimulateSecondOrder(in, rate, f0, h, gain)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != n {
		t.Fatalf("length = %d, want %d", len(out), n)
	}

	resp := SecondOrderResponse(freq, f0, h, gain)
	amp := cmplx.Abs(resp)
	phase := cmplx.Phase(resp)
	step := 2 * math.Pi * freq / rate

	maxErr := 0.0
	for i := range out {
		want := amp * math.Sin(step*float64(i)+phase)
		if d := math.Abs(out[i] - want); d > maxErr {
			maxErr = d
		}
	}

	if maxErr > 1e-9 {
		t.Errorf("max deviation from analytic response %e", maxErr)
	}
}

func TestSimulateSecondOrderAttenuatesBelowCorner(t *testing.T) {
	const (
		rate = 100.0
		n    = 8192
	)

	// Bin 8 sits a decade below the 1 Hz corner; expect ~40 dB of
	// attenuation there.
	freq := 8 * rate / n

	g := NewGenerator(rate)

	in, err := g.Sine(freq, 1, n)
	if err != nil {
		t.Fatal(err)
	}

	out, err := SimulateSecondOrder(in, rate, 1, 0.707, 1)
	if err != nil {
		t.Fatal(err)
	}

	if peak := maxAbsSignal(out); peak > 0.05 {
		t.Errorf("sub-corner peak %f, want strong attenuation", peak)
	}
}

func TestSimulateSecondOrderValidation(t *testing.T) {
	if _, err := SimulateSecondOrder(nil, 100, 1, 0.7, 1); err == nil {
		t.Error("expected error for empty input")
	}

	if _, err := SimulateSecondOrder([]float64{1, 2}, 0, 1, 0.7, 1); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func maxAbsSignal(data []float64) float64 {
	m := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > m {
			m = av
		}
	}

	return m
}
