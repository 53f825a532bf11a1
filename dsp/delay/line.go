package delay

import (
	"fmt"

	"github.com/cwbudde/algo-echo/dsp/buffer"
	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Line is a multi-channel ring of samples with a shared write cursor.
type Line struct {
	history *buffer.Buffer
	size    int
	cursor  int

	// ramp holds per-sample gains for the block being copied.
	ramp []float64
}

// New returns a zeroed line with the given channel count and ring size.
// maxBlock is the longest block WriteBlock and ReadBlock will accept; it
// must not exceed size.
func New(channels, size, maxBlock int) (*Line, error) {
	if channels < 0 {
		return nil, fmt.Errorf("delay channel count must be >= 0: %d", channels)
	}
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	if maxBlock <= 0 {
		return nil, fmt.Errorf("delay max block must be > 0: %d", maxBlock)
	}
	if maxBlock > size {
		return nil, fmt.Errorf("delay max block %d exceeds ring size %d", maxBlock, size)
	}
	return &Line{
		history: buffer.New(channels, size),
		size:    size,
		ramp:    make([]float64, maxBlock),
	}, nil
}

// Len returns the ring length in samples.
func (l *Line) Len() int {
	return l.size
}

// Channels returns the number of rings.
func (l *Line) Channels() int {
	return l.history.Channels()
}

// MaxBlock returns the longest accepted block.
func (l *Line) MaxBlock() int {
	return len(l.ramp)
}

// Cursor returns the current write position in [0, Len()).
func (l *Line) Cursor() int {
	return l.cursor
}

// History returns the ring of channel ch. The slice aliases internal state.
func (l *Line) History(ch int) []float64 {
	return l.history.Channel(ch)
}

// ReadPosition returns the ring index delay samples behind the cursor.
func (l *Line) ReadPosition(delay int) int {
	pos := l.cursor - delay
	if pos < 0 {
		pos += l.size
	}
	return pos
}

// WriteBlock overwrites len(src) samples of channel ch starting at the
// cursor. Sample i is scaled by gainStart + (gainEnd-gainStart)*i/len(src).
// The cursor is not moved.
func (l *Line) WriteBlock(ch int, src []float64, gainStart, gainEnd float64) {
	n := len(src)
	l.checkBlock(n)
	if n == 0 {
		return
	}
	row := l.history.Channel(ch)

	first := l.size - l.cursor
	if first > n {
		first = n
	}

	if gainStart == gainEnd {
		vecmath.ScaleBlock(row[l.cursor:l.cursor+first], src[:first], gainStart)
		if first < n {
			vecmath.ScaleBlock(row[:n-first], src[first:], gainStart)
		}
		return
	}

	ramp := l.ramp[:n]
	core.FillRamp(ramp, gainStart, gainEnd)
	vecmath.MulBlock(row[l.cursor:l.cursor+first], src[:first], ramp[:first])
	if first < n {
		vecmath.MulBlock(row[:n-first], src[first:], ramp[first:])
	}
}

// ReadBlock adds len(dst) samples of channel ch, read from delay samples
// behind the cursor, into dst. Sample i is scaled by
// gainStart + (gainEnd-gainStart)*i/len(dst). delay must be in [0, Len()].
func (l *Line) ReadBlock(dst []float64, ch int, delay int, gainStart, gainEnd float64) {
	n := len(dst)
	l.checkBlock(n)
	if delay < 0 || delay > l.size {
		panic(fmt.Sprintf("delay: read delay %d outside [0, %d]", delay, l.size))
	}
	if n == 0 {
		return
	}
	row := l.history.Channel(ch)
	pos := l.ReadPosition(delay)

	first := l.size - pos
	if first > n {
		first = n
	}

	ramp := l.ramp[:n]
	core.FillRamp(ramp, gainStart, gainEnd)
	vecmath.MulAddBlock(dst[:first], row[pos:pos+first], ramp[:first], dst[:first])
	if first < n {
		vecmath.MulAddBlock(dst[first:], row[:n-first], ramp[first:], dst[first:])
	}
}

// Advance moves the shared cursor forward by n samples, wrapping at Len().
func (l *Line) Advance(n int) {
	if n < 0 {
		panic(fmt.Sprintf("delay: negative advance %d", n))
	}
	l.cursor = (l.cursor + n) % l.size
}

// Reset clears every ring and rewinds the cursor.
func (l *Line) Reset() {
	l.history.Zero()
	l.cursor = 0
}

func (l *Line) checkBlock(n int) {
	if n > len(l.ramp) {
		panic(fmt.Sprintf("delay: block length %d exceeds max block %d", n, len(l.ramp)))
	}
}
