package testutil

import (
	"testing"

	"github.com/cwbudde/algo-cw/cw/morse"
	"github.com/cwbudde/algo-cw/cw/sampler"
	"github.com/cwbudde/algo-cw/dsp/buffer"
)

// Keyed renders code at the given timing, failing t on invalid timing.
func Keyed(t testing.TB, intervalMs, wpm float64, code morse.CodeWord) []byte {
	t.Helper()
	s := sampler.New()
	if err := s.Reset(intervalMs, wpm, code); err != nil {
		t.Fatalf("sampler.Reset(%v, %v, %s): %v", intervalMs, wpm, code, err)
	}
	return s.Render(nil)
}

// KeyedSymbol renders the standard dictionary entry for symbol.
func KeyedSymbol(t testing.TB, intervalMs, wpm float64, symbol rune) []byte {
	t.Helper()
	e, ok := morse.Standard().Lookup(symbol)
	if !ok {
		t.Fatalf("no standard entry for %q", symbol)
	}
	return Keyed(t, intervalMs, wpm, e.Code)
}

// Silence returns n zero samples.
func Silence(n int) []byte {
	return make([]byte, n)
}

// Filled returns a FIFO of the given capacity holding the concatenated
// streams.
func Filled(t testing.TB, capacity int, streams ...[]byte) *buffer.FIFO {
	t.Helper()
	f, err := buffer.NewFIFO(capacity)
	if err != nil {
		t.Fatalf("buffer.NewFIFO(%d): %v", capacity, err)
	}
	for _, s := range streams {
		f.WriteSlice(s)
	}
	return f
}
