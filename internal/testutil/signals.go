package testutil

import (
	"math"
	"math/rand"
)

// EchoTrain returns the ideal impulse response of a recirculating echo: a
// unit impulse at 0 followed by ratio^k at every multiple k of spacing.
func EchoTrain(length, spacing int, ratio float64) []float64 {
	out := make([]float64, length)
	if spacing <= 0 {
		if length > 0 {
			out[0] = 1
		}
		return out
	}
	for i := 0; i < length; i += spacing {
		out[i] = math.Pow(ratio, float64(i/spacing))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// FirstNonZero returns the index of the first sample whose magnitude exceeds
// eps, or -1 if there is none.
func FirstNonZero(data []float64, eps float64) int {
	for i, v := range data {
		if math.Abs(v) > eps {
			return i
		}
	}
	return -1
}
