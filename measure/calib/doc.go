// Package calib estimates the frequency-domain transfer function of a
// broadband seismometer and extracts its physical parameters.
//
// Two estimation modes are supported. White compares a known white-noise
// excitation (the monitor) against the instrument's electrical response.
// Cross compares two colocated sensors' recordings, optionally
// deconvolving the reference sensor to ground motion through its
// poles/zeros model first. Both produce a complex transfer function H
// over an FFT-order frequency axis.
//
// Parameters locates the corner frequency as the phase landmark where H
// is most nearly purely imaginary and derives the damping ratio and
// sensitivity of the standard second-order seismometer model from the
// amplitude curve.
//
// A typical white-noise calibration run:
//
//	res, err := calib.White(monitor, response, calib.Config{})
//	if err != nil {
//		return err
//	}
//	// velocity convention: scale H by 2πif before extraction
//	for i := range res.H {
//		res.H[i] *= complex(0, 2*math.Pi*res.Freq[i])
//	}
//	p, err := calib.Parameters(res.H, res.Freq, calib.ParamConfig{})
package calib
