// Package trace provides the time-series container consumed by the
// calibration routines: an ordered sample sequence plus a sample rate,
// with copy semantics and the in-place preprocessing operations the
// calibration driver needs (demean, cosine taper, polarity/gain scaling,
// zero-phase highpass).
package trace
