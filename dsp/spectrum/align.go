package spectrum

import "math"

// Align reconciles two (frequency axis, spectrum) pairs so they are
// pairwise comparable by index.
//
// If the axes are already identical in length and value, the inputs are
// returned unchanged and reconciled is false. Otherwise both pairs are cut
// to the common frequency support |f| < min(max|f1|, max|f2|), and if the
// lengths still differ the longer pair repeatedly loses its current
// maximum-frequency bin and then its current minimum-frequency bin until
// the lengths match. The extreme positive and negative bins are the usual
// source of the mismatch when sampling rates or durations differ.
//
// This is a best-effort alignment, not a resampling: after reconciliation
// the axes have equal length but their values are not guaranteed to be
// pairwise equal.
func Align(f1 []float64, s1 []complex128, f2 []float64, s2 []complex128) (
	of1 []float64, os1 []complex128, of2 []float64, os2 []complex128, reconciled bool,
) {
	if axesEqual(f1, f2) {
		return f1, s1, f2, s2, false
	}

	fmax := math.Min(maxAbs(f1), maxAbs(f2))
	f1, s1 = keepBelow(f1, s1, fmax)
	f2, s2 = keepBelow(f2, s2, fmax)

	for len(f1) != len(f2) {
		if len(f1) > len(f2) {
			f1, s1 = trimEdges(f1, s1, len(f2))
		} else {
			f2, s2 = trimEdges(f2, s2, len(f1))
		}
	}

	return f1, s1, f2, s2, true
}

func axesEqual(f1, f2 []float64) bool {
	if len(f1) != len(f2) {
		return false
	}

	for i := range f1 {
		if f1[i] != f2[i] {
			return false
		}
	}

	return true
}

func maxAbs(f []float64) float64 {
	m := 0.0
	for _, v := range f {
		av := math.Abs(v)
		if av > m {
			m = av
		}
	}

	return m
}

// keepBelow filters the axis to |f| < fmax, removing the same indices
// from the paired spectrum.
func keepBelow(f []float64, s []complex128, fmax float64) ([]float64, []complex128) {
	of := make([]float64, 0, len(f))
	os := make([]complex128, 0, len(s))

	for i, v := range f {
		if math.Abs(v) < fmax {
			of = append(of, v)
			os = append(os, s[i])
		}
	}

	return of, os
}

// trimEdges drops the maximum-frequency bin and then the minimum-frequency
// bin, stopping early once the target length is reached.
func trimEdges(f []float64, s []complex128, target int) ([]float64, []complex128) {
	if len(f) > target && len(f) > 0 {
		f, s = deleteAt(f, s, argMax(f))
	}

	if len(f) > target && len(f) > 0 {
		f, s = deleteAt(f, s, argMin(f))
	}

	return f, s
}

func deleteAt(f []float64, s []complex128, i int) ([]float64, []complex128) {
	of := make([]float64, 0, len(f)-1)
	of = append(of, f[:i]...)
	of = append(of, f[i+1:]...)

	os := make([]complex128, 0, len(s)-1)
	os = append(os, s[:i]...)
	os = append(os, s[i+1:]...)

	return of, os
}

func argMax(f []float64) int {
	idx := 0
	for i, v := range f {
		if v > f[idx] {
			idx = i
		}
	}

	return idx
}

func argMin(f []float64) int {
	idx := 0
	for i, v := range f {
		if v < f[idx] {
			idx = i
		}
	}

	return idx
}
