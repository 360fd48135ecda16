package buffer

import (
	"sync"

	"github.com/cwbudde/algo-cw/dsp/core"
)

// Scratch holds the working blocks of one block comparison: the live
// samples as float64 and the per-sample error against a reference.
type Scratch struct {
	Live []float64
	Diff []float64
}

func (s *Scratch) resize(n int) {
	s.Live = core.EnsureLen(s.Live, n)
	s.Diff = core.EnsureLen(s.Diff, n)
	clear(s.Live)
	clear(s.Diff)
}

// Pool provides sync.Pool-based Scratch reuse so repeated classification
// does not allocate per candidate.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Scratch{}
			},
		},
	}
}

// Get returns a Scratch whose blocks have length n and are zeroed.
// Callers must return it via Put when done.
func (p *Pool) Get(n int) *Scratch {
	s := p.pool.Get().(*Scratch)
	s.resize(n)
	return s
}

// Put returns a Scratch to the pool for reuse.
// The caller must not use the scratch after calling Put.
func (p *Pool) Put(s *Scratch) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
