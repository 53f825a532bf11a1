package echo

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-echo/dsp/core"
)

// Errors returned by echo analysis functions.
var (
	ErrEmptyInput        = errors.New("echo: input is empty")
	ErrLengthMismatch    = errors.New("echo: input and output lengths differ")
	ErrInvalidSampleRate = errors.New("echo: sample rate must be positive")
	ErrSilentInput       = errors.New("echo: input has no energy")
	ErrNoEcho            = errors.New("echo: no repeat above the floor")
)

const (
	defaultFloorDB = -80.0
	defaultMaxTaps = 64
)

// Tap is one repeat of the input.
type Tap struct {
	Lag  int     // offset from the input in samples
	Time float64 // offset from the input in seconds
	Gain float64 // amplitude relative to the input
}

// Metrics holds echo analysis results.
type Metrics struct {
	DelaySamples int
	DelaySeconds float64
	Taps         []Tap
	DecayRatio   float64 // gain of a repeat relative to the previous one
	DecayDB      float64 // DecayRatio in dB
	T60          float64 // seconds until repeats are 60 dB below the input; +Inf without decay
	Peak         float64 // absolute peak of the output
}

// Analyzer computes echo metrics from an input/output pair.
type Analyzer struct {
	SampleRate float64
	// Floor is the smallest relative tap gain still reported.
	Floor float64
	// MaxTaps bounds the number of reported taps.
	MaxTaps int
}

// NewAnalyzer creates an analyzer with a -80 dB floor and up to 64 taps.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{
		SampleRate: sampleRate,
		Floor:      core.DBToLinear(defaultFloorDB),
		MaxTaps:    defaultMaxTaps,
	}
}

// Analyze measures the repeats that output adds on top of input.
func (a *Analyzer) Analyze(input, output []float64) (Metrics, error) {
	if len(input) == 0 {
		return Metrics{}, ErrEmptyInput
	}
	if len(input) != len(output) {
		return Metrics{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(input), len(output))
	}
	if a.SampleRate <= 0 {
		return Metrics{}, ErrInvalidSampleRate
	}

	energy := vecmath.DotProduct(input, input)
	if energy == 0 {
		return Metrics{}, ErrSilentInput
	}

	wet := make([]float64, len(output))
	for i := range wet {
		wet[i] = output[i] - input[i]
	}

	corr, err := CrossCorrelate(wet, input)
	if err != nil {
		return Metrics{}, err
	}

	delay, best := 0, 0.0
	for lag := 1; lag < len(corr); lag++ {
		if v := math.Abs(corr[lag]); v > best {
			delay, best = lag, v
		}
	}
	if delay == 0 || best/energy < a.Floor {
		return Metrics{}, ErrNoEcho
	}

	m := Metrics{
		DelaySamples: delay,
		DelaySeconds: float64(delay) / a.SampleRate,
		Peak:         vecmath.MaxAbs(output),
	}

	maxTaps := a.MaxTaps
	if maxTaps <= 0 {
		maxTaps = defaultMaxTaps
	}
	for k := 1; k <= maxTaps && k*delay < len(corr); k++ {
		gain := corr[k*delay] / energy
		if math.Abs(gain) < a.Floor {
			break
		}
		m.Taps = append(m.Taps, Tap{
			Lag:  k * delay,
			Time: float64(k*delay) / a.SampleRate,
			Gain: gain,
		})
	}

	m.DecayRatio = decayRatio(m.Taps)
	m.DecayDB = core.LinearToDB(m.DecayRatio)
	m.T60 = math.Inf(1)
	if m.DecayDB < 0 {
		m.T60 = m.DelaySeconds * 60 / -m.DecayDB
	}
	return m, nil
}

// decayRatio fits a geometric sequence through the tap gains. A single tap
// is measured against the unit input.
func decayRatio(taps []Tap) float64 {
	switch len(taps) {
	case 0:
		return 0
	case 1:
		return math.Abs(taps[0].Gain)
	}
	first := math.Abs(taps[0].Gain)
	last := math.Abs(taps[len(taps)-1].Gain)
	if first == 0 {
		return 0
	}
	return math.Pow(last/first, 1/float64(len(taps)-1))
}

// CrossCorrelate returns r[k] = sum_i a[i+k]*b[i] for lags k in [0, len(a)),
// computed with an FFT.
func CrossCorrelate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	fftSize := nextPowerOf2(len(a) + len(b) - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("echo: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("echo: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("echo: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= complex(real(bFreq[i]), -imag(bFreq[i]))
	}

	// aPadded is free again and receives the time-domain result.
	if err := plan.Inverse(aPadded, aFreq); err != nil {
		return nil, fmt.Errorf("echo: inverse FFT failed: %w", err)
	}

	out := make([]float64, len(a))
	for i := range out {
		out[i] = real(aPadded[i])
	}
	return out, nil
}

// Impulse returns a unit impulse of length n, the reference input for
// ImpulseResponse.
func Impulse(n int) []float64 {
	out := make([]float64, n)
	if n > 0 {
		out[0] = 1
	}
	return out
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
