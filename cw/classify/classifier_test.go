package classify

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-cw/cw/morse"
	"github.com/cwbudde/algo-cw/dsp/buffer"
	"github.com/cwbudde/algo-cw/dsp/core"
	"github.com/cwbudde/algo-cw/internal/testutil"
)

func newClassifier(t *testing.T, dict *morse.Dictionary, opts ...Option) *Classifier {
	t.Helper()
	c, err := New(dict, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestClassifyAcrossSpeeds(t *testing.T) {
	// "5" keyed at 12 wpm, references assumed at 12.5 wpm.
	live := testutil.KeyedSymbol(t, 8, 12, '5')

	for _, permissive := range []bool{false, true} {
		buf := testutil.Filled(t, 512, live)
		c := newClassifier(t, morse.Standard(),
			WithSampleInterval(8), WithAssumedSpeed(12.5), WithPermissive(permissive))

		m, err := c.Classify(buf)
		if err != nil {
			t.Fatalf("permissive=%v: Classify: %v", permissive, err)
		}
		if m.Entry.Symbol != '5' {
			t.Fatalf("permissive=%v: got %v, want 5", permissive, m)
		}
		if buf.Available() != len(live) {
			t.Fatalf("permissive=%v: Classify consumed samples", permissive)
		}

		ranked, err := c.Rank(buf)
		if err != nil {
			t.Fatalf("Rank: %v", err)
		}
		if ranked[0] != m {
			t.Fatalf("Rank()[0] = %v, Classify = %v", ranked[0], m)
		}
		if permissive && len(ranked) != 41 {
			t.Fatalf("permissive Rank has %d entries, want 41", len(ranked))
		}
		for i := 1; i < len(ranked); i++ {
			if ranked[i].Error < ranked[i-1].Error {
				t.Fatalf("Rank not sorted at %d", i)
			}
		}
	}
}

func TestClassifySameSpeedIsExact(t *testing.T) {
	for _, sym := range []rune{'A', 'F', 'Q', '0', '?', '-'} {
		live := testutil.KeyedSymbol(t, 8, 12, sym)
		m, err := Classify(testutil.Filled(t, 512, live), morse.Standard(), 8, 12)
		if err != nil {
			t.Fatalf("%q: Classify: %v", sym, err)
		}
		if m.Entry.Symbol != sym || m.Error != 0 {
			t.Fatalf("%q: got %v", sym, m)
		}
	}
}

func TestClassifyFirstMinimumWinsTies(t *testing.T) {
	// Against silence, 1000 scores sqrt(1)/4 and 11110000 scores sqrt(4)/8.
	short := morse.Entry{Code: 0b1000, Symbol: 'x'}
	long := morse.Entry{Code: 0b11110000, Symbol: 'y'}

	for _, order := range [][]morse.Entry{{short, long}, {long, short}} {
		dict, err := morse.NewDictionary(order)
		if err != nil {
			t.Fatal(err)
		}
		c := newClassifier(t, dict, WithSampleInterval(100), WithAssumedSpeed(12))

		buf := testutil.Filled(t, 8, testutil.Silence(8))
		m, err := c.Classify(buf)
		if err != nil {
			t.Fatalf("Classify: %v", err)
		}
		if m.Entry != order[0] || m.Error != 0.25 {
			t.Fatalf("got %v, want %c with 0.25", m, order[0].Symbol)
		}

		ranked, err := c.Rank(buf)
		if err != nil {
			t.Fatalf("Rank: %v", err)
		}
		if ranked[0].Entry != order[0] || ranked[1].Entry != order[1] {
			t.Fatalf("Rank did not keep dictionary order on tie: %v", ranked)
		}
	}
}

func TestClassifySkipsLongCandidates(t *testing.T) {
	buf := testutil.Filled(t, 8, testutil.KeyedSymbol(t, 100, 12, 'E'))
	c := newClassifier(t, morse.Standard(), WithSampleInterval(100), WithAssumedSpeed(12))

	ranked, err := c.Rank(buf)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	// Only E (4 slots) fits into four buffered samples.
	if len(ranked) != 1 || ranked[0].Entry.Symbol != 'E' {
		t.Fatalf("Rank = %v", ranked)
	}
}

func TestClassifyNoMatch(t *testing.T) {
	buf := testutil.Filled(t, 8, []byte{1, 0})
	c := newClassifier(t, morse.Standard(), WithSampleInterval(100), WithAssumedSpeed(12))

	if _, err := c.Classify(buf); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("Classify err = %v, want ErrNoMatch", err)
	}
	if _, err := c.Rank(buf); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("Rank err = %v, want ErrNoMatch", err)
	}
	if _, err := c.ClassifyBlock(buf); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("ClassifyBlock err = %v, want ErrNoMatch", err)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("nil dict: err = %v", err)
	}
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{name: "zero speed", opts: []Option{WithAssumedSpeed(0)}, want: core.ErrInvalidSpeed},
		{name: "negative speed", opts: []Option{WithAssumedSpeed(-3)}, want: core.ErrInvalidSpeed},
		{name: "negative interval", opts: []Option{WithSampleInterval(-1)}, want: core.ErrInvalidSampleInterval},
		{name: "zero interval via keying", opts: []Option{WithKeying(core.WithSampleInterval(0))}, want: core.ErrInvalidSampleInterval},
		{name: "both invalid", opts: []Option{WithAssumedSpeed(0), WithSampleInterval(-1)}, want: core.ErrInvalidSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(morse.Standard(), tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if c != nil {
				t.Fatalf("New returned a classifier with keying %#v", c.Keying())
			}
		})
	}
}

func TestClassifyFuncValidates(t *testing.T) {
	buf := testutil.Filled(t, 8, []byte{1})
	if _, err := Classify(buf, morse.Standard(), 0, 12); !errors.Is(err, core.ErrInvalidSampleInterval) {
		t.Fatalf("err = %v", err)
	}
	if _, err := Classify(buf, morse.Standard(), 8, -3); !errors.Is(err, core.ErrInvalidSpeed) {
		t.Fatalf("err = %v", err)
	}
}

func TestOptions(t *testing.T) {
	c := newClassifier(t, morse.Standard(), WithSampleInterval(5), WithAssumedSpeed(25), nil)
	want := core.KeyingConfig{SampleIntervalMs: 5, SpeedWPM: 25}
	if c.Keying() != want {
		t.Fatalf("Keying() = %#v, want %#v", c.Keying(), want)
	}
	if c.Dictionary() != morse.Standard() {
		t.Fatal("Dictionary() mismatch")
	}
}

func BenchmarkClassify(b *testing.B) {
	live := testutil.KeyedSymbol(b, 8, 12, '5')
	buf, _ := buffer.NewFIFO(512)
	buf.WriteSlice(live)
	c, _ := New(morse.Standard(), WithSampleInterval(8), WithAssumedSpeed(12.5))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = c.Classify(buf)
	}
}
