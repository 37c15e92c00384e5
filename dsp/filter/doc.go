// Package filter provides biquad second-order sections, Butterworth
// cascade design, and zero-phase (forward-backward) block filtering.
//
// The calibration pipeline uses it for the zero-phase highpass that
// removes long-period drift from colocated-sensor recordings before
// spectral comparison.
package filter
