package core

// KeyingConfig defines the timing shared by samplers, keyers and classifiers.
type KeyingConfig struct {
	// SampleIntervalMs is the time between two baseband samples.
	SampleIntervalMs float64
	// SpeedWPM is the keying speed in words per minute.
	SpeedWPM float64
}

// KeyingOption mutates a KeyingConfig.
type KeyingOption func(*KeyingConfig)

// DefaultKeyingConfig returns an 8 ms sample grid at 12 WPM.
func DefaultKeyingConfig() KeyingConfig {
	return KeyingConfig{
		SampleIntervalMs: 8,
		SpeedWPM:         12,
	}
}

// WithSampleInterval sets the sample interval in milliseconds. The value is
// stored as given; Validate rejects values that are not positive.
func WithSampleInterval(ms float64) KeyingOption {
	return func(cfg *KeyingConfig) {
		cfg.SampleIntervalMs = ms
	}
}

// WithSpeed sets the keying speed in words per minute. The value is stored
// as given; Validate rejects values that are not positive.
func WithSpeed(wpm float64) KeyingOption {
	return func(cfg *KeyingConfig) {
		cfg.SpeedWPM = wpm
	}
}

// ApplyKeyingOptions applies zero or more options to the default config.
func ApplyKeyingOptions(opts ...KeyingOption) KeyingConfig {
	cfg := DefaultKeyingConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether the configuration describes a usable sample grid.
func (c KeyingConfig) Validate() error {
	_, err := SamplesPerDit(c.SampleIntervalMs, c.SpeedWPM)
	return err
}

// SamplesPerDit returns the number of samples per dit for this configuration.
func (c KeyingConfig) SamplesPerDit() (float64, error) {
	return SamplesPerDit(c.SampleIntervalMs, c.SpeedWPM)
}
