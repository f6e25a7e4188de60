package analysis

import (
	"errors"

	"github.com/cwbudde/algo-sigview/dsp/filter/design"
	"github.com/cwbudde/algo-sigview/dsp/spectrum"
	timestats "github.com/cwbudde/algo-sigview/stats/time"
)

// Kind classifies pipeline failures.
type Kind int

const (
	// InvalidInput covers malformed or mismatched arrays and bad filter parameters
	// other than the cutoff.
	InvalidInput Kind = iota + 1
	// InsufficientSamples means fewer than two data points.
	InsufficientSamples
	// InvalidCutoff means a cutoff outside (0, Nyquist).
	InvalidCutoff
	// EmptyInput means statistics were requested for no samples.
	EmptyInput
)

// Sentinels matched by errors.Is against an [*Error] of the same kind.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientSamples = errors.New("insufficient samples")
	ErrInvalidCutoff       = errors.New("invalid cutoff")
	ErrEmptyInput          = errors.New("empty input")
)

func (k Kind) sentinel() error {
	switch k {
	case InvalidInput:
		return ErrInvalidInput
	case InsufficientSamples:
		return ErrInsufficientSamples
	case InvalidCutoff:
		return ErrInvalidCutoff
	case EmptyInput:
		return ErrEmptyInput
	}

	return nil
}

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}

	return "unknown"
}

// Error is the single error type returned by the pipeline.
type Error struct {
	Op   string // "load", "filter" or "stats"
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf returns the kind of err, or 0 when err is not an [*Error].
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

// wrap tags err with op and the kind derived from the package sentinel it wraps.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}

	return &Error{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, spectrum.ErrInsufficientSamples):
		return InsufficientSamples
	case errors.Is(err, design.ErrInvalidCutoff):
		return InvalidCutoff
	case errors.Is(err, timestats.ErrEmptyInput):
		return EmptyInput
	default:
		return InvalidInput
	}
}
