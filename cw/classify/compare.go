package classify

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-cw/cw/sampler"
	"github.com/cwbudde/algo-cw/dsp/buffer"
)

// ErrInsufficientSamples is returned by Compare when the buffer holds fewer
// samples than the sampler will produce.
var ErrInsufficientSamples = errors.New("classify: sampler needs more samples than buffered")

// Compare scores the remaining samples of s against the unread samples of
// buf. It drains s but leaves buf as it found it. Compare uses the buffer's
// saved read point, replacing any point saved by the caller.
//
// If s needs more samples than buf holds, Compare returns
// ErrInsufficientSamples; see ComparePermissive.
func Compare(buf *buffer.FIFO, s *sampler.Sampler) (float64, error) {
	n := s.SamplesRemaining()
	if avail := buf.Available(); n > avail {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrInsufficientSamples, n, avail)
	}
	return compare(buf, s, n)
}

// ComparePermissive is Compare without the length check: once buf runs
// empty each further buffer sample reads as 0.
func ComparePermissive(buf *buffer.FIFO, s *sampler.Sampler) (float64, error) {
	return compare(buf, s, s.SamplesRemaining())
}

func compare(buf *buffer.FIFO, s *sampler.Sampler, n int) (float64, error) {
	buf.SaveReadPoint()
	var sum float64
	for i := 0; i < n; i++ {
		d := float64(buf.Read()) - float64(s.Sample())
		sum += d * d
	}
	if err := buf.ReturnToReadPoint(); err != nil {
		return 0, err
	}
	return score(sum, n), nil
}

func score(sumSquares float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Sqrt(sumSquares) / float64(n)
}
