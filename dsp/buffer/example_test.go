package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-echo/dsp/buffer"
)

func ExampleBuffer() {
	b := buffer.New(2, 4)
	copy(b.Channel(0), []float64{1, 2, 3, 4})
	copy(b.Channel(1), []float64{5, 6, 7, 8})

	b.Resize(2)
	fmt.Println(b.Channel(0), b.Channel(1))
	fmt.Println(b.Len(), b.Cap())

	// Output:
	// [1 2] [5 6]
	// 2 4
}
