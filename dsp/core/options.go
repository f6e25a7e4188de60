// Package core holds configuration and numeric helpers shared by the dsp
// packages.
package core

// ProcessorConfig defines common signal generation settings.
type ProcessorConfig struct {
	SampleRate float64
	Length     int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 100 Hz sampling and 500 samples (5 s).
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 100,
		Length:     500,
	}
}

// SampleInterval returns 1/SampleRate.
func (c ProcessorConfig) SampleInterval() float64 {
	return 1 / c.SampleRate
}

// WithSampleRate sets the sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithLength sets the number of generated samples. Non-positive values are ignored.
func WithLength(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.Length = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
