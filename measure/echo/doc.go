// Package echo measures the repeats produced by a feedback delay.
//
// Analyze compares a dry input with the processed output. The wet part
// (output minus input) is cross-correlated against the input with an FFT;
// the strongest positive lag is the delay time, and the correlation at
// multiples of that lag gives the gain of each repeat:
//
//   - DelaySamples, DelaySeconds: spacing of the repeats
//   - Taps: lag, time and gain (relative to the input) of every repeat above the floor
//   - DecayRatio, DecayDB: gain change from one repeat to the next
//   - T60: time for the repeats to fall 60 dB below the input
//
// # Usage
//
//	ir, err := echo.ImpulseResponse(fx, 48000)
//	metrics, err := echo.NewAnalyzer(48000).Analyze(echo.Impulse(len(ir)), ir)
//	fmt.Printf("delay = %d samples, T60 = %.2f s\n", metrics.DelaySamples, metrics.T60)
package echo
