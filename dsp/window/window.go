// Package window provides the tapers applied to a record before its
// spectrum is taken.
package window

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// ErrUnknownType is returned by [ParseType] for unrecognized names.
var ErrUnknownType = errors.New("window: unknown type")

var errMismatchedLength = errors.New("window: samples and coefficients must have same length")

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeFlatTop
)

var typeNames = [...]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
	TypeFlatTop:     "flattop",
}

// Cosine-sum coefficients a0, a1, ... per type.
var cosineTerms = map[Type][]float64{
	TypeHann:     {0.5, 0.5},
	TypeHamming:  {0.54, 0.46},
	TypeBlackman: {0.42, 0.5, 0.08},
	TypeFlatTop:  {0.21557895, 0.41663158, 0.277263158, 0.083578947, 0.006947368},
}

// Types lists all supported window types.
func Types() []Type {
	return []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeFlatTop}
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// ParseType accepts the names returned by [Type.String], case-insensitively.
// "none" and "boxcar" select the rectangular window.
func ParseType(s string) (Type, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "", "none", "boxcar":
		return TypeRectangular, nil
	case "hanning":
		return TypeHann, nil
	case "flat-top", "flat_top":
		return TypeFlatTop, nil
	default:
		for i, n := range typeNames {
			if n == name {
				return Type(i), nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}

	*t = v

	return nil
}

// Generate returns length periodic window coefficients, the form suited to
// FFT analysis. It returns nil for length <= 0.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)

	terms, ok := cosineTerms[t]
	if !ok {
		for i := range out {
			out[i] = 1
		}

		return out
	}

	for i := range out {
		out[i] = cosineSum(float64(i)/float64(length), terms)
	}

	return out
}

// Apply returns samples multiplied by the selected window. The input is not
// modified.
func Apply(t Type, samples []float64) []float64 {
	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out
	}

	vecmath.MulBlock(out, samples, Generate(t, len(samples)))

	return out
}

// ApplyCoefficientsInPlace multiplies samples with coeffs in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain returns the mean of coeffs, the factor by which a windowed
// sinusoid's peak bin is attenuated.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}

// EquivalentNoiseBandwidth returns the ENBW of coeffs in bins.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errors.New("window: coefficients must not be empty")
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errors.New("window: coherent gain is zero")
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

func cosineSum(x float64, terms []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	sign := 1.0

	for k, a := range terms {
		sum += sign * a * math.Cos(float64(k)*phase)
		sign = -sign
	}

	return sum
}
