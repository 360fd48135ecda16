package core

import (
	"errors"
	"math"
)

// DitUnitMs is the PARIS timing constant: one dit lasts DitUnitMs/WPM ms.
const DitUnitMs = 1200.0

// Errors returned by timing functions and KeyingConfig.Validate.
var (
	ErrInvalidSpeed          = errors.New("core: keying speed must be positive and finite")
	ErrInvalidSampleInterval = errors.New("core: sample interval must be positive and finite")
)

// DitDuration returns the dit length in milliseconds at the given speed.
func DitDuration(wpm float64) (float64, error) {
	if !positiveFinite(wpm) {
		return 0, ErrInvalidSpeed
	}
	return DitUnitMs / wpm, nil
}

// SamplesPerDit returns how many samples of intervalMs fit into one dit at
// wpm. The result is fractional in general.
func SamplesPerDit(intervalMs, wpm float64) (float64, error) {
	dit, err := DitDuration(wpm)
	if err != nil {
		return 0, err
	}
	if !positiveFinite(intervalMs) {
		return 0, ErrInvalidSampleInterval
	}
	return dit / intervalMs, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
