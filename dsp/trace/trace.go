package trace

import (
	"errors"
	"math"

	"github.com/helenejund/crossCalib/dsp/filter"
)

// Errors returned by trace operations.
var (
	ErrEmptyTrace        = errors.New("trace: trace is empty")
	ErrInvalidSampleRate = errors.New("trace: sample rate must be positive")
	ErrInvalidFrequency  = errors.New("trace: frequency must be positive and below Nyquist")
	ErrInvalidOrder      = errors.New("trace: filter order must be positive")
	ErrInvalidRatio      = errors.New("trace: taper ratio must be in [0, 1]")
)

// Trace is an ordered sequence of real-valued samples with a sample rate.
//
// The calibration routines never mutate a caller's trace; every operation
// that changes samples works on a copy obtained via [Trace.Copy].
type Trace struct {
	Data       []float64
	SampleRate float64
}

// New creates a trace from samples and a sample rate. The slice is not
// copied; use [Trace.Copy] to detach from caller-owned data.
func New(data []float64, sampleRate float64) Trace {
	return Trace{Data: data, SampleRate: sampleRate}
}

// Validate checks the trace invariants.
func (t *Trace) Validate() error {
	if len(t.Data) == 0 {
		return ErrEmptyTrace
	}

	if t.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	return nil
}

// Len returns the number of samples.
func (t *Trace) Len() int { return len(t.Data) }

// Copy returns a deep copy of the trace.
func (t *Trace) Copy() Trace {
	data := make([]float64, len(t.Data))
	copy(data, t.Data)

	return Trace{Data: data, SampleRate: t.SampleRate}
}

// Scale multiplies every sample by k in place.
func (t *Trace) Scale(k float64) {
	for i, v := range t.Data {
		t.Data[i] = v * k
	}
}

// Demean removes the arithmetic mean from the samples in place.
func (t *Trace) Demean() {
	if len(t.Data) == 0 {
		return
	}

	var mean float64
	for _, v := range t.Data {
		mean += v
	}

	mean /= float64(len(t.Data))
	for i := range t.Data {
		t.Data[i] -= mean
	}
}

// Taper applies a cosine taper to both ends of the trace in place.
//
// ratio is the total fraction of the trace length shaped by the two
// half-cosine ramps (ratio/2 on each side). A ratio of 1 degenerates to
// a full Hann window; 0 is a no-op. The default used by the calibration
// driver is 0.05.
func (t *Trace) Taper(ratio float64) error {
	if ratio < 0 || ratio > 1 {
		return ErrInvalidRatio
	}

	n := len(t.Data)
	if n < 2 || ratio == 0 {
		return nil
	}

	edge := int(math.Floor(ratio * float64(n) / 2))
	if edge < 1 {
		return nil
	}

	for i := 0; i < edge; i++ {
		w := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(edge)))
		t.Data[i] *= w
		t.Data[n-1-i] *= w
	}

	return nil
}

// Highpass applies a zero-phase Butterworth highpass in place.
//
// The cascade of the given order is run forward and backward, so the
// effective rolloff is twice the design order while the phase response
// stays flat.
func (t *Trace) Highpass(freqHz float64, order int) error {
	if err := t.Validate(); err != nil {
		return err
	}

	if order <= 0 {
		return ErrInvalidOrder
	}

	if freqHz <= 0 || freqHz >= t.SampleRate/2 {
		return ErrInvalidFrequency
	}

	filter.ZeroPhase(filter.ButterworthHP(freqHz, order, t.SampleRate), t.Data)

	return nil
}
