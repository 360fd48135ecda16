package classify

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-cw/cw/morse"
	"github.com/cwbudde/algo-cw/dsp/signal"
	"github.com/cwbudde/algo-cw/internal/testutil"
)

// noisy inverts samples of live with probability p using a seeded keyer.
func noisy(t *testing.T, seed int64, live []byte, p float64) []byte {
	t.Helper()
	k, err := signal.NewKeyerWithOptions(nil, signal.WithSeed(seed))
	if err != nil {
		t.Fatalf("NewKeyerWithOptions: %v", err)
	}
	out, err := k.Impair(live, p)
	if err != nil {
		t.Fatalf("Impair: %v", err)
	}
	return out
}

func TestClassifyBlockMatchesClassify(t *testing.T) {
	tests := []struct {
		name       string
		live       []byte
		wpm        float64
		permissive bool
	}{
		{name: "5 faster", live: testutil.KeyedSymbol(t, 8, 12, '5'), wpm: 12.5},
		{name: "5 faster permissive", live: testutil.KeyedSymbol(t, 8, 12, '5'), wpm: 12.5, permissive: true},
		{name: "Q slower", live: testutil.KeyedSymbol(t, 8, 12, 'Q'), wpm: 11},
		{name: "noisy K", live: noisy(t, 3, testutil.KeyedSymbol(t, 8, 12, 'K'), 0.05), wpm: 12},
		{name: "noisy 0 permissive", live: noisy(t, 9, testutil.KeyedSymbol(t, 8, 15, '0'), 0.1), wpm: 14, permissive: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := testutil.Filled(t, 1024, tt.live)
			c := newClassifier(t, morse.Standard(),
				WithSampleInterval(8), WithAssumedSpeed(tt.wpm), WithPermissive(tt.permissive))

			want, err := c.Classify(buf)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			got, err := c.ClassifyBlock(buf)
			if err != nil {
				t.Fatalf("ClassifyBlock: %v", err)
			}
			if got != want {
				t.Fatalf("ClassifyBlock = %v, Classify = %v", got, want)
			}
			if buf.Available() != len(tt.live) {
				t.Fatal("ClassifyBlock consumed samples")
			}
		})
	}
}

func TestTemplatesCached(t *testing.T) {
	buf := testutil.Filled(t, 512, testutil.KeyedSymbol(t, 8, 12, 'F'))
	c := newClassifier(t, morse.Standard(), WithSampleInterval(8), WithAssumedSpeed(12))

	for i := 0; i < 3; i++ {
		m, err := c.ClassifyBlock(buf)
		if err != nil {
			t.Fatalf("ClassifyBlock: %v", err)
		}
		if m.Entry.Symbol != 'F' || m.Error != 0 {
			t.Fatalf("got %v", m)
		}
	}
	if len(c.templates) != 1 {
		t.Fatalf("template cache has %d entries, want 1", len(c.templates))
	}
}

func TestNewTemplates(t *testing.T) {
	c := newClassifier(t, morse.Standard())
	tpl, err := NewTemplates(morse.Standard(), c.Keying())
	if err != nil {
		t.Fatalf("NewTemplates: %v", err)
	}
	if tpl.Len() != 41 {
		t.Fatalf("Len() = %d, want 41", tpl.Len())
	}
	f, _ := morse.Standard().Lookup('F')
	for i := 0; i < tpl.Len(); i++ {
		if morse.Standard().Entry(i) != f {
			continue
		}
		want := testutil.Keyed(t, 8, 12, f.Code)
		wave := tpl.Wave(i)
		if len(wave) != len(want) {
			t.Fatalf("wave len = %d, want %d", len(wave), len(want))
		}
		for j := range want {
			if wave[j] != float64(want[j]) {
				t.Fatalf("wave[%d] = %v, want %d", j, wave[j], want[j])
			}
		}
	}
}

func TestBlockError(t *testing.T) {
	live := []float64{1, 0, 3, 0}
	ref := []float64{1, 1, 1, 0}
	diff := make([]float64, len(live))

	// Differences 0, -1, 2, 0 square to 5.
	got := blockError(diff, live, ref)
	if want := math.Sqrt(5) / 4; got != want {
		t.Fatalf("blockError = %v, want %v", got, want)
	}
	testutil.RequireSliceNearlyEqual(t, live, []float64{1, 0, 3, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, ref, []float64{1, 1, 1, 0}, 0)

	if got := blockError(diff[:0], live[:0], ref[:0]); got != 0 {
		t.Fatalf("empty blockError = %v, want 0", got)
	}
}

func BenchmarkClassifyBlock(b *testing.B) {
	live := testutil.KeyedSymbol(b, 8, 12, '5')
	buf := testutil.Filled(b, 512, live)
	c, _ := New(morse.Standard(), WithSampleInterval(8), WithAssumedSpeed(12.5))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = c.ClassifyBlock(buf)
	}
}
