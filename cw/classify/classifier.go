package classify

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-cw/cw/morse"
	"github.com/cwbudde/algo-cw/cw/sampler"
	"github.com/cwbudde/algo-cw/dsp/buffer"
	"github.com/cwbudde/algo-cw/dsp/core"
)

// Errors returned by the classifier.
var (
	ErrEmptyDictionary = errors.New("classify: dictionary is empty")
	ErrNoMatch         = errors.New("classify: no dictionary entry fits the buffered samples")
)

// Match is the score of one dictionary entry.
type Match struct {
	Entry   morse.Entry
	Error   float64
	Samples int
}

func (m Match) String() string {
	return fmt.Sprintf("%c err=%.5f n=%d", m.Entry.Symbol, m.Error, m.Samples)
}

type config struct {
	keying     core.KeyingConfig
	permissive bool
}

// Option configures a Classifier.
type Option func(*config)

// WithKeying sets the sample grid and the assumed keying speed.
func WithKeying(opts ...core.KeyingOption) Option {
	return func(cfg *config) {
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg.keying)
			}
		}
	}
}

// WithSampleInterval sets the sample interval of the buffered stream in ms.
func WithSampleInterval(ms float64) Option {
	return WithKeying(core.WithSampleInterval(ms))
}

// WithAssumedSpeed sets the speed at which reference waveforms are sampled.
func WithAssumedSpeed(wpm float64) Option {
	return WithKeying(core.WithSpeed(wpm))
}

// WithPermissive compares candidates longer than the buffered data against
// trailing zeros instead of skipping them.
func WithPermissive(permissive bool) Option {
	return func(cfg *config) {
		cfg.permissive = permissive
	}
}

// Classifier matches buffered samples against a dictionary. It reuses one
// sampler and a template cache, so it is not safe for concurrent use.
type Classifier struct {
	dict      *morse.Dictionary
	cfg       config
	sampler   *sampler.Sampler
	templates map[templateKey]*Templates
	scratch   *buffer.Pool
}

// New returns a Classifier for dict.
func New(dict *morse.Dictionary, opts ...Option) (*Classifier, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	cfg := config{keying: core.DefaultKeyingConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.keying.Validate(); err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	return &Classifier{
		dict:      dict,
		cfg:       cfg,
		sampler:   sampler.New(),
		templates: make(map[templateKey]*Templates),
		scratch:   buffer.NewPool(),
	}, nil
}

// Keying returns the timing the classifier samples references with.
func (c *Classifier) Keying() core.KeyingConfig {
	return c.cfg.keying
}

// Dictionary returns the dictionary the classifier matches against.
func (c *Classifier) Dictionary() *morse.Dictionary {
	return c.dict
}

// Classify returns the dictionary entry with the lowest error against the
// unread samples of buf. buf is left unchanged.
func (c *Classifier) Classify(buf *buffer.FIFO) (Match, error) {
	var best Match
	found := false
	err := c.each(buf, func(m Match) {
		if !found || m.Error < best.Error {
			best = m
			found = true
		}
	})
	if err != nil {
		return Match{}, err
	}
	if !found {
		return Match{}, ErrNoMatch
	}
	return best, nil
}

// Rank scores every comparable entry and returns them sorted by ascending
// error. Equal errors keep dictionary order.
func (c *Classifier) Rank(buf *buffer.FIFO) ([]Match, error) {
	matches := make([]Match, 0, c.dict.Len())
	err := c.each(buf, func(m Match) {
		matches = append(matches, m)
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoMatch
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Error < matches[j].Error
	})
	return matches, nil
}

func (c *Classifier) each(buf *buffer.FIFO, yield func(Match)) error {
	avail := buf.Available()
	for i := 0; i < c.dict.Len(); i++ {
		e := c.dict.Entry(i)
		if err := c.sampler.ResetConfig(c.cfg.keying, e.Code); err != nil {
			return fmt.Errorf("classify: %w", err)
		}
		n := c.sampler.SamplesRemaining()
		if n > avail && !c.cfg.permissive {
			tracer().Debugf("skip %q: needs %d samples, %d buffered", e.Symbol, n, avail)
			continue
		}
		score, err := compare(buf, c.sampler, n)
		if err != nil {
			return err
		}
		yield(Match{Entry: e, Error: score, Samples: n})
	}
	return nil
}

// Classify matches buf against dict with references sampled at intervalMs
// and wpm, using the default strict length policy.
func Classify(buf *buffer.FIFO, dict *morse.Dictionary, intervalMs, wpm float64) (Match, error) {
	c, err := New(dict, WithSampleInterval(intervalMs), WithAssumedSpeed(wpm))
	if err != nil {
		return Match{}, err
	}
	return c.Classify(buf)
}
