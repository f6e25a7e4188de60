// Package biquad provides the second-order-section (SOS) filter runtime.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain]; [Filter] runs a complete cascade over a signal with fresh state and
// is the forward-only counterpart of scipy's sosfilt.
//
// Coefficient design (Butterworth low/high/band-pass/band-stop) lives in
// dsp/filter/design.
package biquad
