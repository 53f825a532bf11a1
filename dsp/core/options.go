package core

// StreamConfig describes the audio stream a processor is prepared for.
// It is delivered by the host once before processing starts and again
// whenever the stream is reconfigured.
type StreamConfig struct {
	SampleRate   float64
	MaxBlockSize int
	Channels     int
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// DefaultStreamConfig returns a stereo 48 kHz stream with 512-sample blocks.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		SampleRate:   48000,
		MaxBlockSize: 512,
		Channels:     2,
	}
}

// WithSampleRate sets the stream sample rate in Hz.
func WithSampleRate(sampleRate float64) StreamOption {
	return func(cfg *StreamConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithMaxBlockSize sets the largest block the host will deliver.
func WithMaxBlockSize(blockSize int) StreamOption {
	return func(cfg *StreamConfig) {
		if blockSize > 0 {
			cfg.MaxBlockSize = blockSize
		}
	}
}

// WithChannels sets the maximum channel count. Zero is allowed.
func WithChannels(channels int) StreamOption {
	return func(cfg *StreamConfig) {
		if channels >= 0 {
			cfg.Channels = channels
		}
	}
}

// ApplyStreamOptions applies zero or more options to the default config.
func ApplyStreamOptions(opts ...StreamOption) StreamConfig {
	cfg := DefaultStreamConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
