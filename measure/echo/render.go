package echo

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-echo/dsp/buffer"
	"github.com/cwbudde/algo-echo/dsp/effects"
)

var blockPool = buffer.NewPool()

// ImpulseResponse resets fx and returns the first frames samples it
// produces on channel 0 for a unit impulse, streamed in blocks of the
// prepared maximum size.
func ImpulseResponse(fx *effects.FeedbackDelay, frames int) ([]float64, error) {
	return Render(fx, Impulse(frames))
}

// Render resets fx and streams the mono signal in through channel 0 of fx.
func Render(fx *effects.FeedbackDelay, in []float64) ([]float64, error) {
	if fx.State() == effects.DelayUnconfigured {
		return nil, fmt.Errorf("echo: %w", effects.ErrNotPrepared)
	}
	stream := fx.Stream()
	if stream.Channels < 1 {
		return nil, errors.New("echo: delay is prepared without channels")
	}
	if len(in) == 0 {
		return nil, ErrEmptyInput
	}

	fx.Reset()
	block := blockPool.Get(1, stream.MaxBlockSize)
	defer blockPool.Put(block)

	out := make([]float64, len(in))
	for pos := 0; pos < len(in); pos += stream.MaxBlockSize {
		n := stream.MaxBlockSize
		if pos+n > len(in) {
			n = len(in) - pos
		}
		block.Resize(n)
		copy(block.Channel(0), in[pos:pos+n])
		fx.ProcessBlock(block)
		copy(out[pos:], block.Channel(0))
	}
	return out, nil
}
