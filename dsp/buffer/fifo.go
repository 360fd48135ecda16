package buffer

import "errors"

// Errors returned by FIFO construction and read point handling.
var (
	ErrInvalidCapacity = errors.New("buffer: capacity must be > 0")
	ErrNoReadPoint     = errors.New("buffer: no saved read point")
)

type readPoint struct {
	read int
	full bool
}

// FIFO is a circular sample store with overwrite-on-full semantics.
type FIFO struct {
	samples []byte
	read    int
	write   int
	full    bool
	saved   *readPoint
}

// NewFIFO returns an empty FIFO holding up to capacity samples.
func NewFIFO(capacity int) (*FIFO, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &FIFO{samples: make([]byte, capacity)}, nil
}

// Cap returns the fixed capacity.
func (f *FIFO) Cap() int {
	return len(f.samples)
}

// Clear empties the FIFO. A saved read point is kept.
func (f *FIFO) Clear() {
	f.read = 0
	f.write = 0
	f.full = false
}

// Write stores one sample. When the FIFO is full the oldest unread sample
// is dropped first.
func (f *FIFO) Write(sample byte) {
	if f.full {
		f.read = f.advance(f.read)
	}
	f.samples[f.write] = sample
	f.write = f.advance(f.write)
	f.full = f.write == f.read
}

// WriteSlice writes every sample in src in order.
func (f *FIFO) WriteSlice(src []byte) {
	for _, s := range src {
		f.Write(s)
	}
}

// Available returns the number of unread samples.
func (f *FIFO) Available() int {
	if f.full {
		return len(f.samples)
	}
	if f.read <= f.write {
		return f.write - f.read
	}
	return len(f.samples) - f.read + f.write
}

// Read returns the oldest unread sample. An empty FIFO returns 0 and is
// left unchanged.
func (f *FIFO) Read() byte {
	if f.read == f.write && !f.full {
		return 0
	}
	s := f.samples[f.read]
	f.read = f.advance(f.read)
	f.full = false
	return s
}

// ReadInto reads up to len(dst) samples and returns how many were read.
// It stops early when the FIFO runs empty.
func (f *FIFO) ReadInto(dst []byte) int {
	n := min(len(dst), f.Available())
	for i := 0; i < n; i++ {
		dst[i] = f.Read()
	}
	return n
}

// SaveReadPoint records the read position. Only one read point exists;
// saving again replaces it.
func (f *FIFO) SaveReadPoint() {
	f.saved = &readPoint{read: f.read, full: f.full}
}

// ReturnToReadPoint rewinds the read position to the last saved point.
// The write position and stored samples are not touched.
func (f *FIFO) ReturnToReadPoint() error {
	if f.saved == nil {
		return ErrNoReadPoint
	}
	f.read = f.saved.read
	f.full = f.saved.full
	return nil
}

func (f *FIFO) advance(i int) int {
	return (i + 1) % len(f.samples)
}
