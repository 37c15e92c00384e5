package spectrum

// SmoothComplex applies a moving average of the given window size to a
// complex-valued array and returns a new slice of the same length.
//
// The averaging operates on the combined complex values, not on real and
// imaginary parts in isolation. Near the edges the window is truncated to
// the available samples. A window of 0 or 1 returns an unmodified copy.
func SmoothComplex(in []complex128, window int) []complex128 {
	out := make([]complex128, len(in))

	if window <= 1 {
		copy(out, in)
		return out
	}

	half := window / 2
	for i := range in {
		lo := i - half
		if lo < 0 {
			lo = 0
		}

		hi := i - half + window
		if hi > len(in) {
			hi = len(in)
		}

		var sum complex128
		for j := lo; j < hi; j++ {
			sum += in[j]
		}

		out[i] = sum / complex(float64(hi-lo), 0)
	}

	return out
}
