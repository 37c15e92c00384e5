// Package spectrum computes full-length FFT spectra with their FFT-order
// frequency axes and provides the spectrum-domain utilities the transfer
// function estimate is built from: frequency-axis alignment of mismatched
// spectra, complex moving-average smoothing, and magnitude/phase
// extraction.
//
// Frequency axes follow the standard FFT bin convention (DC, ascending
// positive frequencies, then negative frequencies descending in
// magnitude) and are never re-sorted, since the calibration parameter
// search is index-based.
package spectrum
