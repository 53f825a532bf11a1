// Package buffer provides a planar multi-channel float64 buffer and a pool
// for allocation-friendly block processing. Every channel is a view into one
// contiguous backing slice, so a Buffer is sized once and then resized within
// its capacity without touching the heap. Processors that only need a single
// channel still accept raw []float64; use Channel() to bridge.
package buffer
