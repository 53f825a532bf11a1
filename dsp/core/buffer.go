package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// FillRamp writes a linear gain ramp into dst. The ramp starts at start and
// moves towards end by (end-start)/len(dst) per sample, so the last element
// is one step short of end. A flat gain is written when start == end.
func FillRamp(dst []float64, start, end float64) {
	n := len(dst)
	if n == 0 {
		return
	}
	if start == end {
		for i := range dst {
			dst[i] = start
		}
		return
	}
	step := (end - start) / float64(n)
	for i := range dst {
		dst[i] = start + step*float64(i)
	}
}
