// Package config loads the YAML settings of the sigview command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sigview/dsp/filter/design"
	"github.com/cwbudde/algo-sigview/dsp/spectrum"
	"github.com/cwbudde/algo-sigview/dsp/window"
	"github.com/cwbudde/algo-sigview/internal/logging"
)

// Config is the root of the YAML document.
type Config struct {
	Filter FilterConfig `yaml:"filter"`
	FFT    FFTConfig    `yaml:"fft"`
	Log    LogConfig    `yaml:"log"`
}

// FilterConfig describes an optional filter. An empty Type disables filtering.
type FilterConfig struct {
	Type       string  `yaml:"type"`
	Cutoff     float64 `yaml:"cutoff"`
	CutoffHigh float64 `yaml:"cutoff_high"`
	Order      int     `yaml:"order"`
}

// FFTConfig selects the spectrum backend and taper.
type FFTConfig struct {
	Backend string `yaml:"backend"`
	Window  string `yaml:"window"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Filter: FilterConfig{
			Cutoff:     0.1,
			CutoffHigh: 10,
			Order:      4,
		},
		FFT: FFTConfig{
			Backend: spectrum.BackendGonum.String(),
			Window:  window.TypeRectangular.String(),
		},
		Log: LogConfig{Level: "info", Format: logging.FormatConsole},
	}
}

// Load reads filename over the defaults and validates the result.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}

	return cfg, nil
}

// Validate checks names and ranges. Cutoffs are only checked against
// Nyquist once a signal is known.
func (c *Config) Validate() error {
	if c.Filter.Type != "" {
		if _, err := design.ParseType(c.Filter.Type); err != nil {
			return fmt.Errorf("filter.type: %w", err)
		}

		if c.Filter.Order < 0 {
			return fmt.Errorf("filter.order must be >= 0, got %d", c.Filter.Order)
		}

		if c.Filter.Cutoff <= 0 {
			return fmt.Errorf("filter.cutoff must be > 0, got %g", c.Filter.Cutoff)
		}
	}

	if _, err := spectrum.ParseBackend(c.FFT.Backend); err != nil {
		return fmt.Errorf("fft.backend: %w", err)
	}

	if _, err := window.ParseType(c.FFT.Window); err != nil {
		return fmt.Errorf("fft.window: %w", err)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch c.Log.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("log.format must be %q or %q, got %q", logging.FormatConsole, logging.FormatJSON, c.Log.Format)
	}

	return nil
}

// FilterSpec returns the requested filter, or ok=false when filtering is off.
func (c *Config) FilterSpec() (spec design.Spec, ok bool, err error) {
	if c.Filter.Type == "" {
		return design.Spec{}, false, nil
	}

	typ, err := design.ParseType(c.Filter.Type)
	if err != nil {
		return design.Spec{}, false, err
	}

	return design.Spec{
		Type:       typ,
		CutoffLow:  c.Filter.Cutoff,
		CutoffHigh: c.Filter.CutoffHigh,
		Order:      c.Filter.Order,
	}, true, nil
}

// Backend returns the parsed FFT backend.
func (c *Config) Backend() (spectrum.Backend, error) {
	return spectrum.ParseBackend(c.FFT.Backend)
}

// Window returns the parsed spectral window.
func (c *Config) Window() (window.Type, error) {
	return window.ParseType(c.FFT.Window)
}
