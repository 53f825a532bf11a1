package echo_test

import (
	"fmt"

	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-echo/dsp/effects"
	"github.com/cwbudde/algo-echo/measure/echo"
)

func ExampleAnalyzer_Analyze() {
	fx := effects.NewFeedbackDelay()
	_ = fx.SetHistory(0.2)
	_ = fx.SetTime(0.1)
	_ = fx.SetFeedback(0.5)
	_ = fx.SetWet(1)
	_ = fx.Prepare(core.ApplyStreamOptions(core.WithSampleRate(1000), core.WithMaxBlockSize(64), core.WithChannels(1)))

	ir, err := echo.ImpulseResponse(fx, 1000)
	if err != nil {
		fmt.Println(err)
		return
	}

	m, err := echo.NewAnalyzer(1000).Analyze(echo.Impulse(len(ir)), ir)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("delay=%d taps=%d ratio=%.2f\n", m.DelaySamples, len(m.Taps), m.DecayRatio)
	// Output:
	// delay=100 taps=9 ratio=0.50
}
