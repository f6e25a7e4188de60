// Package pass designs Butterworth low-pass, high-pass, band-pass and
// band-stop filters as cascades of second-order sections.
//
// All designs use the bilinear transform with frequency pre-warping at the
// cutoff(s), so the digital magnitude response is exactly -3 dB at each
// cutoff frequency. Invalid parameters yield a nil cascade; parameter
// validation with descriptive errors lives in the parent design package.
package pass
