package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse for offline rendering loops.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer with the requested shape.
// Callers must return it via Put when done.
func (p *Pool) Get(channels, frames int) *Buffer {
	b := p.pool.Get().(*Buffer)
	if len(b.channels) != channels || b.backing == nil {
		nb := New(channels, frames)
		return nb
	}
	b.Resize(frames)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
