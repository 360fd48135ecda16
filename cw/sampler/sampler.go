// Package sampler expands a Morse code word into timed on/off baseband
// samples on an arbitrary sample grid.
//
// The number of samples per dit is generally fractional. Instead of
// rounding per dit, the sampler accumulates dits-per-sample in floating
// point and moves to the next dit slot whenever the truncated accumulator
// crosses an integer, so the dit boundaries never drift over a symbol.
package sampler

import (
	"github.com/cwbudde/algo-cw/cw/morse"
	"github.com/cwbudde/algo-cw/dsp/core"
)

const msbMask = morse.CodeWord(1) << (morse.CodeWidth - 1)

// Sampler produces the sample sequence of one code word. The zero value is
// exhausted; call Reset to load a symbol.
type Sampler struct {
	code          morse.CodeWord
	codeLen       int
	samplesPerDit float64
	ditsPerSample float64
	frac          float64
	whole         int
	remaining     int
}

// New returns an exhausted Sampler.
func New() *Sampler {
	return &Sampler{}
}

// Reset loads code for sampling at intervalMs per sample and speed wpm.
// A zero code yields an empty symbol. On error the sampler is exhausted.
func (s *Sampler) Reset(intervalMs, wpm float64, code morse.CodeWord) error {
	*s = Sampler{}

	spd, err := core.SamplesPerDit(intervalMs, wpm)
	if err != nil {
		return err
	}

	s.code = code
	s.codeLen = morse.CodeWidth
	for s.code&msbMask == 0 && s.codeLen > 0 {
		s.code <<= 1
		s.codeLen--
	}

	s.samplesPerDit = spd
	s.ditsPerSample = 1 / spd
	s.remaining = int(float64(s.codeLen) * spd)
	return nil
}

// ResetConfig is Reset with the timing taken from cfg.
func (s *Sampler) ResetConfig(cfg core.KeyingConfig, code morse.CodeWord) error {
	return s.Reset(cfg.SampleIntervalMs, cfg.SpeedWPM, code)
}

// SamplesRemaining returns how many samples are left in the symbol.
func (s *Sampler) SamplesRemaining() int {
	return s.remaining
}

// Len returns the number of dit slots of the loaded code word.
func (s *Sampler) Len() int {
	return s.codeLen
}

// SamplesPerDit returns the sample-grid ratio set by the last Reset.
func (s *Sampler) SamplesPerDit() float64 {
	return s.samplesPerDit
}

// Sample returns the next sample: 1 while keyed, 0 while silent. Once the
// symbol is exhausted it returns 0 without changing state.
func (s *Sampler) Sample() byte {
	if s.remaining == 0 {
		return 0
	}
	var out byte
	if s.code&msbMask != 0 {
		out = 1
	}
	s.frac += s.ditsPerSample
	if s.whole != int(s.frac) {
		s.whole++
		s.code <<= 1
	}
	s.remaining--
	return out
}

// Render drains the remaining samples and appends them to dst.
func (s *Sampler) Render(dst []byte) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, s.remaining)...)
	for i := start; i < len(dst); i++ {
		dst[i] = s.Sample()
	}
	return dst
}
