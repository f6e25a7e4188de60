// Package signal generates deterministic test and example signals.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/cwbudde/algo-sigview/dsp/core"
)

// ErrUnknownExample is returned by [Example] for an unregistered preset name.
var ErrUnknownExample = errors.New("signal: unknown example")

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a generator with processor and signal options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Config returns the generator configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// TimeAxis returns the configured number of sample instants starting at 0.
func (g *Generator) TimeAxis() []float64 {
	dt := g.cfg.SampleInterval()

	out := make([]float64, g.cfg.Length)
	for i := range out {
		out[i] = float64(i) * dt
	}

	return out
}

// Tone is one sinusoidal component of a [Generator.MultiTone] signal.
type Tone struct {
	Frequency float64 // Hz
	Amplitude float64
	Phase     float64 // radians
}

// Sine generates amplitude*sin(2*pi*freqHz*t).
func (g *Generator) Sine(freqHz, amplitude float64) ([]float64, error) {
	return g.MultiTone(Tone{Frequency: freqHz, Amplitude: amplitude})
}

// MultiTone generates the sum of the given tones.
func (g *Generator) MultiTone(tones ...Tone) ([]float64, error) {
	if len(tones) == 0 {
		return nil, errors.New("signal: at least one tone required")
	}

	nyquist := g.cfg.SampleRate / 2

	for _, tone := range tones {
		if tone.Frequency < 0 || tone.Frequency >= nyquist {
			return nil, fmt.Errorf("signal: tone %g Hz outside [0, %g)", tone.Frequency, nyquist)
		}
	}

	out := make([]float64, g.cfg.Length)
	for _, tone := range tones {
		step := 2 * math.Pi * tone.Frequency / g.cfg.SampleRate
		for i := range out {
			out[i] += tone.Amplitude * math.Sin(step*float64(i)+tone.Phase)
		}
	}

	return out, nil
}

// WhiteNoise generates uniform noise in [-amplitude, amplitude).
func (g *Generator) WhiteNoise(amplitude float64) ([]float64, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, g.cfg.Length)
	rng := rand.New(rand.NewSource(g.seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

type preset func(g *Generator) ([]float64, error)

var presets = map[string]preset{
	"sine10": func(g *Generator) ([]float64, error) {
		return g.Sine(10, 1)
	},
	"two-tone": func(g *Generator) ([]float64, error) {
		return g.MultiTone(Tone{Frequency: 2, Amplitude: 1}, Tone{Frequency: 10, Amplitude: 1})
	},
	"noisy-sine": func(g *Generator) ([]float64, error) {
		s, err := g.Sine(5, 1)
		if err != nil {
			return nil, err
		}

		n, err := g.WhiteNoise(0.5)
		if err != nil {
			return nil, err
		}

		for i := range s {
			s[i] += n[i]
		}

		return s, nil
	},
}

// Examples lists the preset names accepted by [Generator.Example], sorted.
func Examples() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Example generates a named preset signal and its time axis.
//
//	sine10      10 Hz unit sine
//	two-tone    2 Hz plus 10 Hz unit sines
//	noisy-sine  5 Hz unit sine plus uniform noise of amplitude 0.5
func (g *Generator) Example(name string) (x, y []float64, err error) {
	p, ok := presets[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownExample, name, Examples())
	}

	y, err = p(g)
	if err != nil {
		return nil, nil, err
	}

	return g.TimeAxis(), y, nil
}
