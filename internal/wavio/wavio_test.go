package wavio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-echo/dsp/buffer"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "stereo.wav")

	in := buffer.New(2, 64)
	for i := 0; i < 64; i++ {
		in.Channel(0)[i] = 0.5 * math.Sin(float64(i)*0.3)
		in.Channel(1)[i] = -0.25
	}
	if err := Write(path, in, 8000); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, rate, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rate != 8000 {
		t.Fatalf("sample rate = %d, want 8000", rate)
	}
	if got.Channels() != 2 || got.Len() != 64 {
		t.Fatalf("shape = %dx%d, want 2x64", got.Channels(), got.Len())
	}
	const eps = 2.0 / 32768
	for ch := 0; ch < 2; ch++ {
		for i := range got.Channel(ch) {
			if d := math.Abs(got.Channel(ch)[i] - in.Channel(ch)[i]); d > eps {
				t.Fatalf("ch %d sample %d: got %v want %v", ch, i, got.Channel(ch)[i], in.Channel(ch)[i])
			}
		}
	}
}

func TestReadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Read(path); err == nil {
		t.Fatal("expected error for invalid file")
	}
	if _, _, err := Read(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteRejectsNoChannels(t *testing.T) {
	if err := Write(filepath.Join(t.TempDir(), "x.wav"), buffer.New(0, 8), 8000); err == nil {
		t.Fatal("expected error for zero channels")
	}
}
