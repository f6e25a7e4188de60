package spectrum

import (
	"errors"
	"fmt"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrUnknownBackend is returned by [ParseBackend] for an unrecognized name.
var ErrUnknownBackend = errors.New("spectrum: unknown FFT backend")

// Backend selects the FFT engine used by [RFFT].
type Backend int

const (
	// BackendGonum uses gonum's real FFT. Works for any N.
	BackendGonum Backend = iota
	// BackendPlan uses an algo-fft complex plan on zero-imaginary input.
	BackendPlan
	// BackendGoDSP uses go-dsp's FFTReal.
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendGonum: "gonum",
	BackendPlan:  "plan",
	BackendGoDSP: "godsp",
}

func (b Backend) String() string {
	if s, ok := backendNames[b]; ok {
		return s
	}

	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend maps a case-insensitive name to a Backend. The empty string
// selects the default.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gonum", "default":
		return BackendGonum, nil
	case "plan", "algo-fft", "algofft":
		return BackendPlan, nil
	case "godsp", "go-dsp":
		return BackendGoDSP, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	if _, ok := backendNames[b]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(b))
	}

	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backend) UnmarshalText(text []byte) error {
	parsed, err := ParseBackend(string(text))
	if err != nil {
		return err
	}

	*b = parsed

	return nil
}

// RFFT returns the one-sided DFT of y: bins 0..N/2 inclusive, unnormalized,
// in the same layout as numpy.fft.rfft.
func RFFT(y []float64, backend Backend) ([]complex128, error) {
	n := len(y)
	if n == 0 {
		return nil, ErrInvalidInput
	}

	switch backend {
	case BackendGonum:
		return fourier.NewFFT(n).Coefficients(nil, y), nil
	case BackendPlan:
		return planRFFT(y)
	case BackendGoDSP:
		full := dspfft.FFTReal(y)
		out := make([]complex128, n/2+1)
		copy(out, full)

		return out, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(backend))
}

func planRFFT(y []float64) ([]complex128, error) {
	n := len(y)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan for %d points: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range y {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: fft forward: %w", err)
	}

	return out[:n/2+1], nil
}
