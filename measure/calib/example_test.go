package calib_test

import (
	"fmt"

	"github.com/helenejund/crossCalib/dsp/signal"
	"github.com/helenejund/crossCalib/dsp/spectrum"
	"github.com/helenejund/crossCalib/dsp/trace"
	"github.com/helenejund/crossCalib/measure/calib"
)

func ExampleWhite() {
	// An impulse has a flat unit spectrum, so a scaled impulse response
	// gives a constant transfer function.
	monitor := make([]float64, 256)
	response := make([]float64, 256)
	monitor[0] = 1
	response[0] = 3.5

	res, err := calib.White(trace.New(monitor, 100), trace.New(response, 100), calib.Config{})
	if err != nil {
		panic(err)
	}

	fmt.Printf("bins=%d H=%.1f\n", len(res.H), real(res.H[0]))

	// Output:
	// bins=256 H=3.5
}

func ExampleParameters() {
	freq := spectrum.Frequencies(8192, 100)

	h := make([]complex128, len(freq))
	for i := range h {
		h[i] = signal.SecondOrderResponse(freq[i], 1, 0.6, 50)
	}

	p, err := calib.Parameters(h, freq, calib.ParamConfig{NormFreq: 20, MinFreq: 0.05})
	if err != nil {
		panic(err)
	}

	fmt.Printf("corner=%.1f Hz damping=%.1f sensitivity=%.1f\n", p.CornerFreq, p.Damping, p.Sensitivity)

	// Output:
	// corner=1.0 Hz damping=0.6 sensitivity=50.0
}
