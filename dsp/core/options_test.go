package core

import (
	"errors"
	"math"
	"testing"
)

func TestApplyKeyingOptions(t *testing.T) {
	cfg := ApplyKeyingOptions(WithSampleInterval(5), WithSpeed(20))
	if cfg.SampleIntervalMs != 5 {
		t.Fatalf("sample interval = %v, want 5", cfg.SampleIntervalMs)
	}
	if cfg.SpeedWPM != 20 {
		t.Fatalf("speed = %v, want 20", cfg.SpeedWPM)
	}
}

func TestInvalidOptionsFailValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []KeyingOption
		want error
	}{
		{name: "zero speed", opts: []KeyingOption{WithSpeed(0)}, want: ErrInvalidSpeed},
		{name: "negative speed", opts: []KeyingOption{WithSpeed(-3)}, want: ErrInvalidSpeed},
		{name: "NaN speed", opts: []KeyingOption{WithSpeed(math.NaN())}, want: ErrInvalidSpeed},
		{name: "zero interval", opts: []KeyingOption{WithSampleInterval(0)}, want: ErrInvalidSampleInterval},
		{name: "negative interval", opts: []KeyingOption{WithSampleInterval(-1), nil}, want: ErrInvalidSampleInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ApplyKeyingOptions(tt.opts...)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestKeyingConfigValidate(t *testing.T) {
	if err := DefaultKeyingConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if err := (KeyingConfig{SampleIntervalMs: 8}).Validate(); err != ErrInvalidSpeed {
		t.Fatalf("zero speed: err = %v, want ErrInvalidSpeed", err)
	}
	if err := (KeyingConfig{SpeedWPM: 12}).Validate(); err != ErrInvalidSampleInterval {
		t.Fatalf("zero interval: err = %v, want ErrInvalidSampleInterval", err)
	}
}
