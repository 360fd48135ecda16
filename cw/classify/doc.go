// Package classify identifies a buffered Morse symbol by comparing it
// against the expected waveform of every entry of a dictionary.
//
// The score of a candidate is sqrt(sum of squared per-sample differences)
// divided by the number of compared samples; the lowest score wins and the
// earlier dictionary entry wins a tie. Comparisons replay the buffer through
// its saved read point, so classifying never consumes buffered samples.
//
// By default a candidate whose waveform is longer than the buffered data is
// skipped. The permissive mode instead compares it against the buffer's
// "no data" sentinel zeros past the end of the data.
package classify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cw'
func tracer() tracing.Trace {
	return tracing.Select("cw")
}
