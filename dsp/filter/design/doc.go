// Package design turns a user-level filter request into second-order
// section coefficients consumable by dsp/filter/biquad.
//
// A [Spec] names the band type, cutoff frequencies in Hz and the order.
// [Butterworth] validates the request against the Nyquist frequency implied
// by the signal's sample interval, normalizes and sorts band edges, and
// delegates the coefficient math to the pass sub-package.
package design
