// Package paz models instrument responses as poles/zeros systems and
// removes them from recorded traces by water-level-regularized spectral
// division. Models can be constructed directly or loaded from YAML files.
//
// Deconvolving the reference sensor of a colocated pair turns its
// recording back into ground motion, so the spectral ratio against the
// sensor under test yields that sensor's absolute transfer function.
package paz
