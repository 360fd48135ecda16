package classify

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cw/cw/morse"
	"github.com/cwbudde/algo-cw/cw/sampler"
	"github.com/cwbudde/algo-cw/dsp/buffer"
	"github.com/cwbudde/algo-cw/dsp/core"
)

type templateKey struct {
	intervalMs float64
	wpm        float64
	dict       uint64
}

// Templates holds the reference waveform of every dictionary entry,
// rendered once for a fixed sample grid and speed.
type Templates struct {
	dict   *morse.Dictionary
	waves  [][]float64
	maxLen int
}

// NewTemplates renders the waveforms of dict at the given timing.
func NewTemplates(dict *morse.Dictionary, cfg core.KeyingConfig) (*Templates, error) {
	s := sampler.New()
	t := &Templates{
		dict:  dict,
		waves: make([][]float64, dict.Len()),
	}
	var raw []byte
	for i := range t.waves {
		if err := s.ResetConfig(cfg, dict.Entry(i).Code); err != nil {
			return nil, fmt.Errorf("classify: %w", err)
		}
		raw = s.Render(raw[:0])
		wave := make([]float64, len(raw))
		for j, v := range raw {
			wave[j] = float64(v)
		}
		t.waves[i] = wave
		t.maxLen = max(t.maxLen, len(wave))
	}
	return t, nil
}

// Len returns the number of templates.
func (t *Templates) Len() int {
	return len(t.waves)
}

// Wave returns the reference waveform of the i-th dictionary entry.
func (t *Templates) Wave(i int) []float64 {
	return t.waves[i]
}

func (c *Classifier) templatesFor() (*Templates, error) {
	key := templateKey{
		intervalMs: c.cfg.keying.SampleIntervalMs,
		wpm:        c.cfg.keying.SpeedWPM,
		dict:       c.dict.Fingerprint(),
	}
	if t, ok := c.templates[key]; ok {
		return t, nil
	}
	tracer().Debugf("render templates: %d entries at %.3g ms, %.3g wpm",
		c.dict.Len(), key.intervalMs, key.wpm)
	t, err := NewTemplates(c.dict, c.cfg.keying)
	if err != nil {
		return nil, err
	}
	c.templates[key] = t
	return t, nil
}

// ClassifyBlock is Classify computed on cached float64 templates with
// block kernels. It reads buf once and returns the same match as Classify.
func (c *Classifier) ClassifyBlock(buf *buffer.FIFO) (Match, error) {
	t, err := c.templatesFor()
	if err != nil {
		return Match{}, err
	}

	avail := buf.Available()
	sc := c.scratch.Get(max(avail, t.maxLen))
	defer c.scratch.Put(sc)
	if err := snapshot(buf, sc.Live[:avail]); err != nil {
		return Match{}, err
	}

	var best Match
	found := false
	for i, wave := range t.waves {
		n := len(wave)
		if n > avail && !c.cfg.permissive {
			continue
		}
		e := blockError(sc.Diff[:n], sc.Live[:n], wave)
		if !found || e < best.Error {
			best = Match{Entry: t.dict.Entry(i), Error: e, Samples: n}
			found = true
		}
	}
	if !found {
		return Match{}, ErrNoMatch
	}
	return best, nil
}

// snapshot copies the unread samples of buf into dst without consuming them.
func snapshot(buf *buffer.FIFO, dst []float64) error {
	buf.SaveReadPoint()
	for i := range dst {
		dst[i] = float64(buf.Read())
	}
	return buf.ReturnToReadPoint()
}

// blockError returns the score of live against ref; diff is scratch space
// of the same length.
func blockError(diff, live, ref []float64) float64 {
	// diff = live - ref
	vecmath.ScaleBlock(diff, ref, -1)
	vecmath.AddBlockInPlace(diff, live)
	return score(vecmath.DotProduct(diff, diff), len(diff))
}
