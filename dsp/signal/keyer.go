// Package signal renders text into keyed on/off sample streams, the
// sending-side counterpart of the classifier.
package signal

import (
	"errors"
	"fmt"
	"math/rand"
	"unicode"

	"github.com/cwbudde/algo-cw/cw/morse"
	"github.com/cwbudde/algo-cw/cw/sampler"
	"github.com/cwbudde/algo-cw/dsp/core"
)

// WordGapDits is the silence added for a space on top of the 3-dit gap that
// ends every symbol, giving the 7-dit word space.
const WordGapDits = 4

// ErrUnknownSymbol is returned when a rune has no dictionary entry.
var ErrUnknownSymbol = errors.New("signal: symbol not in dictionary")

// Keyer creates deterministic keyed streams from a shared configuration.
type Keyer struct {
	cfg  core.KeyingConfig
	dict *morse.Dictionary
	s    *sampler.Sampler
	seed int64
}

// Option configures a Keyer.
type Option func(*Keyer)

// WithSeed sets the deterministic random seed for Impair.
func WithSeed(seed int64) Option {
	return func(k *Keyer) {
		k.seed = seed
	}
}

// WithDictionary replaces the standard dictionary.
func WithDictionary(d *morse.Dictionary) Option {
	return func(k *Keyer) {
		if d != nil {
			k.dict = d
		}
	}
}

// NewKeyer creates a Keyer using the standard dictionary.
func NewKeyer(opts ...core.KeyingOption) (*Keyer, error) {
	return NewKeyerWithOptions(opts)
}

// NewKeyerWithOptions creates a Keyer with keyer-specific options.
func NewKeyerWithOptions(coreOpts []core.KeyingOption, opts ...Option) (*Keyer, error) {
	k := &Keyer{
		cfg:  core.ApplyKeyingOptions(coreOpts...),
		dict: morse.Standard(),
		s:    sampler.New(),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(k)
		}
	}
	if err := k.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	return k, nil
}

// Config returns the keying configuration.
func (k *Keyer) Config() core.KeyingConfig {
	return k.cfg
}

// Code renders a single code word.
func (k *Keyer) Code(code morse.CodeWord) ([]byte, error) {
	return k.appendCode(nil, code)
}

// Symbol renders the dictionary entry for r. Letters are matched without
// regard to case.
func (k *Keyer) Symbol(r rune) ([]byte, error) {
	e, err := k.lookup(r)
	if err != nil {
		return nil, err
	}
	return k.appendCode(nil, e.Code)
}

// Text renders a string. Spaces become word gaps; any other rune must be in
// the dictionary.
func (k *Keyer) Text(text string) ([]byte, error) {
	spd, err := k.cfg.SamplesPerDit()
	if err != nil {
		return nil, err
	}
	gap := int(WordGapDits * spd)

	var out []byte
	for _, r := range text {
		if unicode.IsSpace(r) {
			out = append(out, make([]byte, gap)...)
			continue
		}
		e, err := k.lookup(r)
		if err != nil {
			return nil, err
		}
		if out, err = k.appendCode(out, e.Code); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Impair returns a copy of samples with each sample inverted with
// probability p, modelling keying errors and noise hits.
func (k *Keyer) Impair(samples []byte, p float64) ([]byte, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("signal: impairment probability must be in [0, 1]: %f", p)
	}
	rng := rand.New(rand.NewSource(k.seed))
	out := make([]byte, len(samples))
	for i, v := range samples {
		if v != 0 {
			v = 1
		}
		if rng.Float64() < p {
			v ^= 1
		}
		out[i] = v
	}
	return out, nil
}

// Baseband converts an on/off stream into float64 samples at the given
// level.
func Baseband(samples []byte, level float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, errors.New("signal: baseband input must not be empty")
	}
	out := make([]float64, len(samples))
	for i, v := range samples {
		if v != 0 {
			out[i] = level
		}
	}
	return out, nil
}

func (k *Keyer) lookup(r rune) (morse.Entry, error) {
	if e, ok := k.dict.Lookup(r); ok {
		return e, nil
	}
	if e, ok := k.dict.Lookup(unicode.ToUpper(r)); ok {
		return e, nil
	}
	return morse.Entry{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
}

func (k *Keyer) appendCode(dst []byte, code morse.CodeWord) ([]byte, error) {
	if err := k.s.ResetConfig(k.cfg, code); err != nil {
		return nil, err
	}
	return k.s.Render(dst), nil
}
