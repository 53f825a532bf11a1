package testutil

import "testing"

func TestEchoTrain(t *testing.T) {
	got := EchoTrain(9, 3, 0.5)
	want := []float64{1, 0, 0, 0.5, 0, 0, 0.25, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("EchoTrain[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if FirstNonZero(EchoTrain(5, 0, 0.5), 0) != 0 || FirstNonZero(EchoTrain(5, 0, 0.5)[1:], 0) != -1 {
		t.Fatal("zero spacing should yield a bare impulse")
	}
	if len(EchoTrain(0, 3, 0.5)) != 0 {
		t.Fatal("zero length should be empty")
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}
	if FirstNonZero(Impulse(4, 10), 0) != -1 {
		t.Fatal("out-of-bounds impulse should be silent")
	}
}

func TestOnes(t *testing.T) {
	o := Ones(3)
	if len(o) != 3 {
		t.Fatalf("len = %d, want 3", len(o))
	}
	for i, v := range o {
		if v != 1 {
			t.Fatalf("Ones[%d] = %v, want 1", i, v)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		eps  float64
		want int
	}{
		{name: "silent", data: []float64{0, 0, 0}, want: -1},
		{name: "second", data: []float64{0, -0.5, 1}, want: 1},
		{name: "below eps", data: []float64{1e-20, 0.1}, eps: 1e-12, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstNonZero(tt.data, tt.eps); got != tt.want {
				t.Fatalf("FirstNonZero = %d, want %d", got, tt.want)
			}
		})
	}
}
