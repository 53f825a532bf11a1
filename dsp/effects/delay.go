package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-echo/dsp/buffer"
	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-echo/dsp/delay"
)

const (
	defaultDelayTimeSeconds    = 1.0
	defaultDelayHistorySeconds = 2.0
	defaultDelayFeedback       = 0.1
	defaultDelayWet            = 0.7
	maxDelayHistorySeconds     = 30.0
	maxDelayFeedback           = 0.99
	delayTailFloorDB           = -90.0
)

// DelayState is the lifecycle stage of a FeedbackDelay.
type DelayState int

const (
	// DelayUnconfigured has no history buffer; parameters may be changed.
	DelayUnconfigured DelayState = iota
	// DelayPrepared has a silent history buffer and a rewound cursor.
	DelayPrepared
	// DelayRunning has processed at least one block since Prepare or Reset.
	DelayRunning
)

func (s DelayState) String() string {
	switch s {
	case DelayUnconfigured:
		return "unconfigured"
	case DelayPrepared:
		return "prepared"
	case DelayRunning:
		return "running"
	default:
		return fmt.Sprintf("DelayState(%d)", int(s))
	}
}

// FeedbackDelay is a block-based echo. Each channel's block is written into
// a circular history, the sample from a fixed time in the past is mixed back
// into the live block, and the mixed block is written over the history again
// so later reads contain earlier echoes. Every repeat is scaled by
// Feedback()*Wet() relative to the one before.
//
// Gains and delay time are fixed for the duration of a prepared stream.
// FeedbackDelay is not safe for concurrent use; the host must serialize
// Prepare, ProcessBlock and Release.
type FeedbackDelay struct {
	delaySeconds   float64
	historySeconds float64
	feedback       float64
	wet            float64

	stream       core.StreamConfig
	delaySamples int
	line         *delay.Line
	state        DelayState
}

// NewFeedbackDelay returns an unconfigured delay with a 1 s echo inside a
// 2 s history, feedback 0.1 and wet level 0.7.
func NewFeedbackDelay() *FeedbackDelay {
	return &FeedbackDelay{
		delaySeconds:   defaultDelayTimeSeconds,
		historySeconds: defaultDelayHistorySeconds,
		feedback:       defaultDelayFeedback,
		wet:            defaultDelayWet,
	}
}

// SetTime sets the echo time in seconds.
func (d *FeedbackDelay) SetTime(seconds float64) error {
	if d.state != DelayUnconfigured {
		return ErrDelayConfigured
	}
	if seconds <= 0 || !core.IsFinite(seconds) {
		return fmt.Errorf("delay time must be > 0: %f", seconds)
	}
	d.delaySeconds = seconds
	return nil
}

// SetHistory sets the length of the circular history in seconds.
func (d *FeedbackDelay) SetHistory(seconds float64) error {
	if d.state != DelayUnconfigured {
		return ErrDelayConfigured
	}
	if seconds <= 0 || seconds > maxDelayHistorySeconds || !core.IsFinite(seconds) {
		return fmt.Errorf("delay history must be in (0, %f]: %f", maxDelayHistorySeconds, seconds)
	}
	d.historySeconds = seconds
	return nil
}

// SetFeedback sets the gain applied when writing into the history, in [0, 0.99].
func (d *FeedbackDelay) SetFeedback(feedback float64) error {
	if d.state != DelayUnconfigured {
		return ErrDelayConfigured
	}
	if feedback < 0 || feedback > maxDelayFeedback || !core.IsFinite(feedback) {
		return fmt.Errorf("delay feedback must be in [0, %.2f]: %f", maxDelayFeedback, feedback)
	}
	d.feedback = feedback
	return nil
}

// SetWet sets the gain applied when mixing history into the live block, in [0, 1].
func (d *FeedbackDelay) SetWet(wet float64) error {
	if d.state != DelayUnconfigured {
		return ErrDelayConfigured
	}
	if wet < 0 || wet > 1 || !core.IsFinite(wet) {
		return fmt.Errorf("delay wet level must be in [0, 1]: %f", wet)
	}
	d.wet = wet
	return nil
}

// Time returns the echo time in seconds.
func (d *FeedbackDelay) Time() float64 { return d.delaySeconds }

// History returns the history length in seconds.
func (d *FeedbackDelay) History() float64 { return d.historySeconds }

// Feedback returns the history write gain.
func (d *FeedbackDelay) Feedback() float64 { return d.feedback }

// Wet returns the history read gain.
func (d *FeedbackDelay) Wet() float64 { return d.wet }

// State returns the lifecycle stage.
func (d *FeedbackDelay) State() DelayState { return d.state }

// Stream returns the configuration passed to the last successful Prepare.
func (d *FeedbackDelay) Stream() core.StreamConfig { return d.stream }

// DelaySamples returns the read offset behind the cursor, or 0 when unconfigured.
func (d *FeedbackDelay) DelaySamples() int { return d.delaySamples }

// HistoryLength returns the ring length in samples, or 0 when unconfigured.
func (d *FeedbackDelay) HistoryLength() int {
	if d.line == nil {
		return 0
	}
	return d.line.Len()
}

// Cursor returns the shared write position, or 0 when unconfigured.
func (d *FeedbackDelay) Cursor() int {
	if d.line == nil {
		return 0
	}
	return d.line.Cursor()
}

// TailSeconds returns how long echoes of a full-scale input stay above
// -90 dBFS after the input stops.
func (d *FeedbackDelay) TailSeconds() float64 {
	r := d.feedback * d.wet
	if r <= 0 {
		return 0
	}
	repeats := math.Floor(math.Log(core.DBToLinear(delayTailFloorDB)) / math.Log(r))
	return repeats * d.delaySeconds
}

// Prepare sizes a silent history for cfg and rewinds the cursor. Any
// previous history is discarded. The echo time must cover at least one
// maximum block and leave room for one more inside the history, so a block
// never reads what it is writing.
func (d *FeedbackDelay) Prepare(cfg core.StreamConfig) error {
	if cfg.SampleRate <= 0 || !core.IsFinite(cfg.SampleRate) {
		return fmt.Errorf("delay sample rate must be > 0: %f", cfg.SampleRate)
	}
	if cfg.MaxBlockSize <= 0 {
		return fmt.Errorf("delay max block size must be > 0: %d", cfg.MaxBlockSize)
	}
	if cfg.Channels < 0 {
		return fmt.Errorf("delay channel count must be >= 0: %d", cfg.Channels)
	}

	historyLen := core.SecondsToSamplesCeil(d.historySeconds, cfg.SampleRate)
	delaySamples := core.SecondsToSamples(d.delaySeconds, cfg.SampleRate)
	if delaySamples < cfg.MaxBlockSize {
		return fmt.Errorf("%w: %d samples, max block %d", ErrDelayTooShort, delaySamples, cfg.MaxBlockSize)
	}
	if delaySamples+cfg.MaxBlockSize > historyLen {
		return fmt.Errorf("%w: delay %d + max block %d > %d samples",
			ErrHistoryTooShort, delaySamples, cfg.MaxBlockSize, historyLen)
	}

	line, err := delay.New(cfg.Channels, historyLen, cfg.MaxBlockSize)
	if err != nil {
		return fmt.Errorf("delay history: %w", err)
	}

	d.stream = cfg
	d.delaySamples = delaySamples
	d.line = line
	d.state = DelayPrepared
	return nil
}

// ProcessBlock runs one host block through the echo in place. For every
// channel, in order, the dry input is committed to history, the delayed
// signal is mixed into the block, and the mixed block is committed over the
// dry one. The shared cursor then advances once by buf.Len().
//
// buf may carry fewer channels than prepared but never more, and no more
// than the prepared maximum block of frames.
func (d *FeedbackDelay) ProcessBlock(buf *buffer.Buffer) {
	d.mustBeActive()
	if buf.Channels() > d.line.Channels() {
		panic(fmt.Sprintf("effects: block has %d channels, prepared for %d", buf.Channels(), d.line.Channels()))
	}
	if buf.Len() > d.line.MaxBlock() {
		panic(fmt.Sprintf("effects: block has %d frames, prepared for %d", buf.Len(), d.line.MaxBlock()))
	}

	for ch := 0; ch < buf.Channels(); ch++ {
		samples := buf.Channel(ch)
		d.CommitDry(ch, samples)
		d.MixDelayed(ch, samples)
		d.CommitWetMixed(ch, samples)
	}
	d.Advance(buf.Len())
}

// CommitDry writes the unprocessed input of channel ch into history at the
// cursor, scaled by the feedback gain.
func (d *FeedbackDelay) CommitDry(ch int, samples []float64) {
	d.mustBeActive()
	d.line.WriteBlock(ch, samples, d.feedback, d.feedback)
}

// MixDelayed adds the history from DelaySamples() ago, scaled by the wet
// gain, into samples.
func (d *FeedbackDelay) MixDelayed(ch int, samples []float64) {
	d.mustBeActive()
	d.line.ReadBlock(samples, ch, d.delaySamples, d.wet, d.wet)
}

// CommitWetMixed overwrites the dry commit of channel ch with the mixed
// block, scaled by the feedback gain. This is what makes echoes repeat.
func (d *FeedbackDelay) CommitWetMixed(ch int, samples []float64) {
	d.mustBeActive()
	d.line.WriteBlock(ch, samples, d.feedback, d.feedback)
}

// Advance moves the shared cursor by frames once every channel of the
// block has been committed.
func (d *FeedbackDelay) Advance(frames int) {
	d.mustBeActive()
	d.line.Advance(frames)
	d.state = DelayRunning
}

// Reset silences the history and rewinds the cursor without reallocating.
func (d *FeedbackDelay) Reset() {
	if d.line == nil {
		return
	}
	d.line.Reset()
	d.state = DelayPrepared
}

// Release discards the history. Parameters may be changed again afterwards.
func (d *FeedbackDelay) Release() {
	d.line = nil
	d.delaySamples = 0
	d.stream = core.StreamConfig{}
	d.state = DelayUnconfigured
}

func (d *FeedbackDelay) mustBeActive() {
	if d.line == nil {
		panic(ErrNotPrepared)
	}
}
