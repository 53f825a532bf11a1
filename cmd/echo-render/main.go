// Command echo-render streams audio through the feedback delay offline.
//
// Usage:
//
//	echo-render [flags]
//
// Without -input it renders the impulse response of the delay. The output
// is extended by the echo tail so the repeats are not cut off.
//
// Examples:
//
//	echo-render -output ir.wav -analyze
//	echo-render -input voice.wav -output voice-echo.wav -delay 0.35 -feedback 0.5
//	echo-render -input drums.wav -preset slapback.json -block 128
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-echo/dsp/buffer"
	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-echo/dsp/effects"
	"github.com/cwbudde/algo-echo/internal/wavio"
	"github.com/cwbudde/algo-echo/measure/echo"
	"github.com/cwbudde/algo-echo/preset"
	"github.com/cwbudde/algo-vecmath"
)

type options struct {
	input      string
	output     string
	presetPath string
	sampleRate int
	block      int
	impulseSec float64
	tail       float64
	maxTail    float64
	analyze    bool

	// Overrides applied after the preset; NaN means unset.
	delay    float64
	history  float64
	feedback float64
	wet      float64
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	fx, err := buildDelay(opts)
	if err != nil {
		return err
	}

	in, sampleRate, err := loadInput(opts)
	if err != nil {
		return err
	}

	cfg := core.ApplyStreamOptions(
		core.WithSampleRate(float64(sampleRate)),
		core.WithMaxBlockSize(opts.block),
		core.WithChannels(in.Channels()),
	)
	if err := fx.Prepare(cfg); err != nil {
		return err
	}
	defer fx.Release()

	tail := opts.tail
	if tail < 0 {
		tail = math.Min(fx.TailSeconds(), opts.maxTail)
	}
	tailFrames := core.SecondsToSamplesCeil(tail, float64(sampleRate))

	fmt.Fprintf(stdout, "Rendering %d frames + %d tail at %d Hz (%d ch, delay %d samples, feedback %.3f, wet %.3f)...\n",
		in.Len(), tailFrames, sampleRate, in.Channels(), fx.DelaySamples(), fx.Feedback(), fx.Wet())

	out := process(fx, in, tailFrames)

	if err := wavio.Write(opts.output, out, sampleRate); err != nil {
		return fmt.Errorf("writing %s: %w", opts.output, err)
	}
	fmt.Fprintf(stdout, "Wrote %s (%d frames, peak %.3f)\n", opts.output, out.Len(), peak(out))

	if opts.analyze {
		return report(stdout, in, out, sampleRate)
	}
	return nil
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("echo-render", flag.ContinueOnError)
	fs.StringVar(&o.input, "input", "", "Input WAV file (empty renders an impulse)")
	fs.StringVar(&o.output, "output", "echo.wav", "Output WAV file path")
	fs.StringVar(&o.presetPath, "preset", "", "Delay preset JSON file (optional)")
	fs.IntVar(&o.sampleRate, "sample-rate", 48000, "Sample rate in Hz for impulse rendering")
	fs.IntVar(&o.block, "block", 512, "Host block size in samples")
	fs.Float64Var(&o.impulseSec, "impulse-length", 0.1, "Impulse render length in seconds before the tail")
	fs.Float64Var(&o.tail, "tail", -1, "Tail length in seconds (negative derives it from the echo decay)")
	fs.Float64Var(&o.maxTail, "max-tail", 20, "Upper bound for the derived tail in seconds")
	fs.BoolVar(&o.analyze, "analyze", false, "Print delay, repeat gains and T60 of the rendered signal")
	fs.Float64Var(&o.delay, "delay", math.NaN(), "Echo time in seconds (overrides preset)")
	fs.Float64Var(&o.history, "history", math.NaN(), "History length in seconds (overrides preset)")
	fs.Float64Var(&o.feedback, "feedback", math.NaN(), "Feedback gain in [0, 0.99] (overrides preset)")
	fs.Float64Var(&o.wet, "wet", math.NaN(), "Wet gain in [0, 1] (overrides preset)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.block <= 0 {
		return o, fmt.Errorf("block size must be > 0: %d", o.block)
	}
	if o.input == "" && o.sampleRate <= 0 {
		return o, fmt.Errorf("sample rate must be > 0: %d", o.sampleRate)
	}
	return o, nil
}

func buildDelay(o options) (*effects.FeedbackDelay, error) {
	fx := effects.NewFeedbackDelay()
	if o.presetPath != "" {
		var err error
		fx, err = preset.LoadJSON(o.presetPath)
		if err != nil {
			return nil, err
		}
	}

	overrides := []struct {
		value float64
		set   func(float64) error
	}{
		{o.history, fx.SetHistory},
		{o.delay, fx.SetTime},
		{o.feedback, fx.SetFeedback},
		{o.wet, fx.SetWet},
	}
	for _, ov := range overrides {
		if math.IsNaN(ov.value) {
			continue
		}
		if err := ov.set(ov.value); err != nil {
			return nil, err
		}
	}
	return fx, nil
}

func loadInput(o options) (*buffer.Buffer, int, error) {
	if o.input != "" {
		return wavio.Read(o.input)
	}
	frames := core.SecondsToSamplesCeil(o.impulseSec, float64(o.sampleRate))
	if frames < 1 {
		frames = 1
	}
	in := buffer.New(1, frames)
	in.Channel(0)[0] = 1
	return in, o.sampleRate, nil
}

// process plays in followed by tailFrames of silence through fx, one host
// block at a time, and returns the rendered signal.
func process(fx *effects.FeedbackDelay, in *buffer.Buffer, tailFrames int) *buffer.Buffer {
	blockSize := fx.Stream().MaxBlockSize
	total := in.Len() + tailFrames
	out := buffer.New(in.Channels(), total)
	block := buffer.New(in.Channels(), blockSize)

	for pos := 0; pos < total; pos += blockSize {
		n := blockSize
		if pos+n > total {
			n = total - pos
		}
		block.Resize(n)
		for ch := 0; ch < in.Channels(); ch++ {
			dst := block.Channel(ch)
			core.Zero(dst)
			if pos < in.Len() {
				copy(dst, in.Channel(ch)[pos:])
			}
		}
		fx.ProcessBlock(block)
		for ch := 0; ch < in.Channels(); ch++ {
			copy(out.Channel(ch)[pos:pos+n], block.Channel(ch))
		}
	}
	return out
}

func report(w io.Writer, in, out *buffer.Buffer, sampleRate int) error {
	dry := make([]float64, out.Len())
	padded := in.Copy()
	padded.Resize(out.Len())
	padded.Mono(dry)
	wet := make([]float64, out.Len())
	out.Mono(wet)

	m, err := echo.NewAnalyzer(float64(sampleRate)).Analyze(dry, wet)
	if err != nil {
		return fmt.Errorf("analysis: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "delay\t%d samples\t%.4f s\n", m.DelaySamples, m.DelaySeconds)
	fmt.Fprintf(tw, "decay\t%.4f\t%.2f dB/repeat\n", m.DecayRatio, m.DecayDB)
	fmt.Fprintf(tw, "T60\t%.3f s\t\n", m.T60)
	for k, tap := range m.Taps {
		fmt.Fprintf(tw, "tap %d\t%.4f s\t%.2f dB\n", k+1, tap.Time, core.LinearToDB(math.Abs(tap.Gain)))
	}
	return tw.Flush()
}

func peak(b *buffer.Buffer) float64 {
	p := 0.0
	for ch := 0; ch < b.Channels(); ch++ {
		p = math.Max(p, vecmath.MaxAbs(b.Channel(ch)))
	}
	return p
}
