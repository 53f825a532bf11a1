package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Buffer is a planar block of samples: one row per channel, all rows the
// same length.
type Buffer struct {
	backing  []float64
	channels [][]float64
	frames   int
	capacity int
}

// New returns a zero-filled Buffer with the given channel count and frame
// length. The frame length also becomes the capacity.
func New(channels, frames int) *Buffer {
	if channels < 0 {
		channels = 0
	}
	if frames < 0 {
		frames = 0
	}
	b := &Buffer{
		backing:  make([]float64, channels*frames),
		channels: make([][]float64, channels),
		capacity: frames,
	}
	b.reslice(frames)
	return b
}

// FromChannels wraps existing channel slices without copying. All slices
// must have equal length. Mutations are visible through the Buffer and vice
// versa.
func FromChannels(channels [][]float64) (*Buffer, error) {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}
	for ch, row := range channels {
		if len(row) != frames {
			return nil, fmt.Errorf("buffer: channel %d has %d frames, want %d", ch, len(row), frames)
		}
	}
	return &Buffer{channels: channels, frames: frames, capacity: frames}, nil
}

// Channels returns the channel count.
func (b *Buffer) Channels() int {
	return len(b.channels)
}

// Len returns the current number of frames per channel.
func (b *Buffer) Len() int {
	return b.frames
}

// Cap returns the largest frame count reachable without reallocation.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Channel returns the samples of channel ch.
func (b *Buffer) Channel(ch int) []float64 {
	return b.channels[ch]
}

// Resize sets the frame length to n, reusing existing capacity when possible.
// Frames beyond the previous length are zeroed. Wrapped buffers (see
// FromChannels) can shrink but not grow.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n > b.capacity {
		if b.backing == nil && len(b.channels) > 0 {
			panic(fmt.Sprintf("buffer: cannot grow wrapped buffer to %d frames (cap %d)", n, b.capacity))
		}
		b.grow(n)
	}
	old := b.frames
	b.reslice(n)
	for _, row := range b.channels {
		for i := old; i < n; i++ {
			row[i] = 0
		}
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for _, row := range b.channels {
		for i := range row {
			row[i] = 0
		}
	}
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	c := New(len(b.channels), b.frames)
	for ch, row := range b.channels {
		copy(c.channels[ch], row)
	}
	return c
}

// Mono writes the average of all channels into dst, which must be Len()
// samples long.
func (b *Buffer) Mono(dst []float64) {
	if len(dst) != b.frames {
		panic(fmt.Sprintf("buffer: mono destination has %d frames, want %d", len(dst), b.frames))
	}
	for i := range dst {
		dst[i] = 0
	}
	if len(b.channels) == 0 {
		return
	}
	for _, row := range b.channels {
		vecmath.AddBlockInPlace(dst, row)
	}
	vecmath.ScaleBlockInPlace(dst, 1/float64(len(b.channels)))
}

// Interleave writes the buffer as interleaved float32 frames into dst,
// growing it if needed, and returns the filled slice.
func (b *Buffer) Interleave(dst []float32) []float32 {
	n := b.frames * len(b.channels)
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]
	stride := len(b.channels)
	for ch, row := range b.channels {
		for i, v := range row {
			dst[i*stride+ch] = float32(v)
		}
	}
	return dst
}

// Deinterleave builds a Buffer from interleaved float32 frames.
func Deinterleave(data []float32, channels int) (*Buffer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("buffer: channel count must be > 0: %d", channels)
	}
	if len(data)%channels != 0 {
		return nil, fmt.Errorf("buffer: %d samples is not a whole number of %d-channel frames", len(data), channels)
	}
	b := New(channels, len(data)/channels)
	for ch, row := range b.channels {
		for i := range row {
			row[i] = float64(data[i*channels+ch])
		}
	}
	return b, nil
}

func (b *Buffer) grow(n int) {
	backing := make([]float64, len(b.channels)*n)
	for ch, row := range b.channels {
		copy(backing[ch*n:], row)
	}
	b.backing = backing
	b.capacity = n
}

func (b *Buffer) reslice(n int) {
	b.frames = n
	if b.backing == nil {
		for ch, row := range b.channels {
			b.channels[ch] = row[:n]
		}
		return
	}
	for ch := range b.channels {
		start := ch * b.capacity
		b.channels[ch] = b.backing[start : start+n : start+b.capacity]
	}
}
