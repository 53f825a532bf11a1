// Package wavio reads and writes WAV files as planar float64 buffers.
package wavio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-echo/dsp/buffer"
)

// Read decodes a WAV file into a planar buffer and returns its sample rate.
func Read(path string) (*buffer.Buffer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid wav file: %s", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("invalid wav buffer: %s", path)
	}
	if buf.Format.SampleRate <= 0 {
		return nil, 0, fmt.Errorf("invalid wav sample-rate: %d", buf.Format.SampleRate)
	}

	planar, err := buffer.Deinterleave(buf.Data, buf.Format.NumChannels)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return planar, buf.Format.SampleRate, nil
}

// Write encodes b as 16-bit PCM, creating parent directories as needed.
func Write(path string, b *buffer.Buffer, sampleRate int) error {
	if b.Channels() < 1 {
		return fmt.Errorf("wav needs at least one channel")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, b.Channels(), 1)
	data := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: b.Channels(),
		},
		Data:           b.Interleave(nil),
		SourceBitDepth: 16,
	}
	if err := enc.Write(data); err != nil {
		return err
	}
	return enc.Close()
}
