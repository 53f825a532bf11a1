package effects_test

import (
	"fmt"

	"github.com/cwbudde/algo-echo/dsp/buffer"
	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-echo/dsp/effects"
)

func ExampleFeedbackDelay_ProcessBlock() {
	fx := effects.NewFeedbackDelay()
	_ = fx.SetHistory(0.02)
	_ = fx.SetTime(0.01)
	_ = fx.SetFeedback(0.5)
	_ = fx.SetWet(1)

	cfg := core.ApplyStreamOptions(core.WithSampleRate(1000), core.WithMaxBlockSize(5), core.WithChannels(1))
	if err := fx.Prepare(cfg); err != nil {
		fmt.Println(err)
		return
	}

	buf := buffer.New(1, 5)
	var out []float64
	for block := 0; block < 5; block++ {
		buf.Zero()
		if block == 0 {
			buf.Channel(0)[0] = 1
		}
		fx.ProcessBlock(buf)
		out = append(out, buf.Channel(0)...)
	}

	fmt.Println(out[0], out[10], out[20])
	fmt.Println(fx.DelaySamples(), fx.Cursor())
	// Output:
	// 1 0.5 0.25
	// 10 5
}
