// Package buffer provides the fixed-capacity circular sample FIFO used to
// hold a received on/off stream, and a pool of float64 scratch blocks for
// the block-oriented comparators.
//
// A FIFO overwrites its oldest sample when written while full and supports
// a single saved read point, so the same data can be replayed against many
// candidate waveforms without being consumed. A FIFO is not safe for
// concurrent use.
package buffer
