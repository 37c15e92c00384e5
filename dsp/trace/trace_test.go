package trace

import (
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tr      Trace
		wantErr error
	}{
		{"valid", New([]float64{1, 2, 3}, 100), nil},
		{"empty", New(nil, 100), ErrEmptyTrace},
		{"zero rate", New([]float64{1}, 0), ErrInvalidSampleRate},
		{"negative rate", New([]float64{1}, -50), ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tr.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCopyDetachesData(t *testing.T) {
	orig := New([]float64{1, 2, 3}, 100)
	cp := orig.Copy()

	cp.Data[0] = 42
	cp.Scale(2)

	if orig.Data[0] != 1 || orig.Data[1] != 2 {
		t.Errorf("copy mutation leaked into original: %v", orig.Data)
	}

	if cp.SampleRate != orig.SampleRate {
		t.Errorf("copy sample rate = %f, want %f", cp.SampleRate, orig.SampleRate)
	}
}

func TestScale(t *testing.T) {
	tr := New([]float64{1, -2, 3}, 100)
	tr.Scale(-1)

	want := []float64{-1, 2, -3}
	for i := range want {
		if tr.Data[i] != want[i] {
			t.Errorf("sample %d = %f, want %f", i, tr.Data[i], want[i])
		}
	}
}

func TestDemean(t *testing.T) {
	tr := New([]float64{1, 2, 3, 4, 5}, 100)
	tr.Demean()

	var sum float64
	for _, v := range tr.Data {
		sum += v
	}

	if math.Abs(sum) > 1e-12 {
		t.Errorf("residual mean %e after demean", sum/5)
	}
}

func TestTaperShapesEdges(t *testing.T) {
	n := 100

	data := make([]float64, n)
	for i := range data {
		data[i] = 1
	}

	tr := New(data, 100)
	if err := tr.Taper(0.1); err != nil {
		t.Fatal(err)
	}

	if tr.Data[0] != 0 || tr.Data[n-1] != 0 {
		t.Errorf("taper endpoints = %f / %f, want 0", tr.Data[0], tr.Data[n-1])
	}

	// Interior samples are untouched.
	if tr.Data[n/2] != 1 {
		t.Errorf("interior sample = %f, want 1", tr.Data[n/2])
	}

	// The ramp is monotone.
	for i := 1; i < 5; i++ {
		if tr.Data[i] < tr.Data[i-1] {
			t.Errorf("taper ramp not monotone at %d: %f < %f", i, tr.Data[i], tr.Data[i-1])
		}
	}
}

func TestTaperInvalidRatio(t *testing.T) {
	tr := New([]float64{1, 2, 3}, 100)

	if err := tr.Taper(-0.1); err != ErrInvalidRatio {
		t.Errorf("negative ratio: err = %v, want %v", err, ErrInvalidRatio)
	}

	if err := tr.Taper(1.5); err != ErrInvalidRatio {
		t.Errorf("ratio > 1: err = %v, want %v", err, ErrInvalidRatio)
	}
}

func TestHighpassValidation(t *testing.T) {
	tr := New(make([]float64, 64), 100)

	if err := tr.Highpass(1, 0); err != ErrInvalidOrder {
		t.Errorf("order 0: err = %v, want %v", err, ErrInvalidOrder)
	}

	if err := tr.Highpass(60, 4); err != ErrInvalidFrequency {
		t.Errorf("above Nyquist: err = %v, want %v", err, ErrInvalidFrequency)
	}

	empty := New(nil, 100)
	if err := empty.Highpass(1, 4); err != ErrEmptyTrace {
		t.Errorf("empty: err = %v, want %v", err, ErrEmptyTrace)
	}
}

func TestHighpassRemovesOffset(t *testing.T) {
	n := 4096

	data := make([]float64, n)
	for i := range data {
		data[i] = 3 + math.Sin(2*math.Pi*10*float64(i)/100)
	}

	tr := New(data, 100)
	if err := tr.Highpass(1, 4); err != nil {
		t.Fatal(err)
	}

	var mean float64
	for _, v := range tr.Data[n/4 : 3*n/4] {
		mean += v
	}

	mean /= float64(n / 2)
	if math.Abs(mean) > 1e-2 {
		t.Errorf("residual offset %.6f after highpass", mean)
	}
}
