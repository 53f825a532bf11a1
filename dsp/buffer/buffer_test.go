package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New(2, 8)
	if b.Channels() != 2 || b.Len() != 8 {
		t.Fatalf("shape = %dx%d, want 2x8", b.Channels(), b.Len())
	}
	for ch := 0; ch < b.Channels(); ch++ {
		for i, v := range b.Channel(ch) {
			if v != 0 {
				t.Fatalf("Channel(%d)[%d] = %v, want 0", ch, i, v)
			}
		}
	}
}

func TestNewNegativeShape(t *testing.T) {
	b := New(-1, -1)
	if b.Channels() != 0 || b.Len() != 0 {
		t.Fatalf("shape = %dx%d, want 0x0", b.Channels(), b.Len())
	}
}

func TestZeroChannelsKeepsFrameCount(t *testing.T) {
	b := New(0, 64)
	if b.Len() != 64 {
		t.Fatalf("Len() = %d, want 64", b.Len())
	}
	b.Resize(32)
	if b.Len() != 32 {
		t.Fatalf("Len() = %d, want 32", b.Len())
	}
}

func TestChannelsDoNotOverlap(t *testing.T) {
	b := New(3, 4)
	for ch := 0; ch < 3; ch++ {
		for i := range b.Channel(ch) {
			b.Channel(ch)[i] = float64(ch*10 + i)
		}
	}
	for ch := 0; ch < 3; ch++ {
		for i, v := range b.Channel(ch) {
			if want := float64(ch*10 + i); v != want {
				t.Fatalf("Channel(%d)[%d] = %v, want %v", ch, i, v, want)
			}
		}
	}
}

func TestResizeWithinCapacityKeepsBacking(t *testing.T) {
	b := New(2, 16)
	first := &b.Channel(1)[0]

	b.Resize(8)
	if b.Len() != 8 || b.Cap() != 16 {
		t.Fatalf("Len/Cap = %d/%d, want 8/16", b.Len(), b.Cap())
	}
	if &b.Channel(1)[0] != first {
		t.Fatal("Resize within capacity reallocated")
	}
}

func TestResizeZeroesExposedFrames(t *testing.T) {
	b := New(1, 4)
	copy(b.Channel(0), []float64{1, 2, 3, 4})
	b.Resize(2)
	b.Resize(4)

	want := []float64{1, 2, 0, 0}
	for i, v := range b.Channel(0) {
		if v != want[i] {
			t.Fatalf("Channel(0)[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestResizeGrowPreservesData(t *testing.T) {
	b := New(2, 2)
	copy(b.Channel(0), []float64{1, 2})
	copy(b.Channel(1), []float64{3, 4})

	b.Resize(5)
	if b.Cap() < 5 {
		t.Fatalf("Cap() = %d, want >= 5", b.Cap())
	}
	if got := b.Channel(1); got[0] != 3 || got[1] != 4 || got[4] != 0 {
		t.Fatalf("Channel(1) = %v", got)
	}
}

func TestFromChannelsSharesMemory(t *testing.T) {
	left := []float64{1, 2, 3}
	right := []float64{4, 5, 6}
	b, err := FromChannels([][]float64{left, right})
	if err != nil {
		t.Fatalf("FromChannels: %v", err)
	}
	b.Channel(1)[0] = 99
	if right[0] != 99 {
		t.Fatal("FromChannels should share underlying memory")
	}
}

func TestFromChannelsRejectsRagged(t *testing.T) {
	if _, err := FromChannels([][]float64{{1, 2}, {1}}); err == nil {
		t.Fatal("expected error for ragged channels")
	}
}

func TestFromChannelsCannotGrow(t *testing.T) {
	b, err := FromChannels([][]float64{{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when growing wrapped buffer")
		}
	}()
	b.Resize(3)
}

func TestCopyIsDeep(t *testing.T) {
	b := New(1, 2)
	b.Channel(0)[0] = 7
	c := b.Copy()
	c.Channel(0)[0] = 8
	if b.Channel(0)[0] != 7 {
		t.Fatal("Copy shares memory with the original")
	}
}

func TestMono(t *testing.T) {
	b, err := FromChannels([][]float64{{1, 2}, {3, -2}})
	if err != nil {
		t.Fatal(err)
	}
	got := make([]float64, 2)
	b.Mono(got)
	if got[0] != 2 || got[1] != 0 {
		t.Fatalf("Mono = %v, want [2 0]", got)
	}
}

func TestInterleaveRoundTrip(t *testing.T) {
	data := []float32{0.5, -0.5, 0.25, -0.25, 1, -1}
	b, err := Deinterleave(data, 2)
	if err != nil {
		t.Fatalf("Deinterleave: %v", err)
	}
	if b.Len() != 3 || b.Channel(1)[2] != -1 {
		t.Fatalf("unexpected planar data: %v %v", b.Channel(0), b.Channel(1))
	}

	out := b.Interleave(nil)
	for i := range data {
		if out[i] != data[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], data[i])
		}
	}
}

func TestDeinterleaveValidation(t *testing.T) {
	if _, err := Deinterleave([]float32{1, 2, 3}, 2); err == nil {
		t.Fatal("expected error for partial frame")
	}
	if _, err := Deinterleave([]float32{1}, 0); err == nil {
		t.Fatal("expected error for zero channels")
	}
}
