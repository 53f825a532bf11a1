// Package preset loads FeedbackDelay settings from JSON files.
package preset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-echo/dsp/effects"
)

// File is the JSON schema for delay presets. Omitted fields keep the
// engine defaults.
type File struct {
	DelaySeconds   *float64 `json:"delay_seconds"`
	HistorySeconds *float64 `json:"history_seconds"`
	Feedback       *float64 `json:"feedback"`
	FeedbackDB     *float64 `json:"feedback_db"`
	Wet            *float64 `json:"wet"`
	WetDB          *float64 `json:"wet_db"`
}

// LoadJSON reads a preset file and returns a configured, unprepared delay.
func LoadJSON(path string) (*effects.FeedbackDelay, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}

	fx := effects.NewFeedbackDelay()
	if err := Apply(fx, &f); err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return fx, nil
}

// Apply pushes the fields set in f onto dst. dst must be unconfigured.
func Apply(dst *effects.FeedbackDelay, f *File) error {
	if dst == nil {
		return fmt.Errorf("nil destination delay")
	}
	if f == nil {
		return nil
	}
	if f.Feedback != nil && f.FeedbackDB != nil {
		return fmt.Errorf("feedback and feedback_db are mutually exclusive")
	}
	if f.Wet != nil && f.WetDB != nil {
		return fmt.Errorf("wet and wet_db are mutually exclusive")
	}

	if f.HistorySeconds != nil {
		if err := dst.SetHistory(*f.HistorySeconds); err != nil {
			return fmt.Errorf("history_seconds: %w", err)
		}
	}
	if f.DelaySeconds != nil {
		if err := dst.SetTime(*f.DelaySeconds); err != nil {
			return fmt.Errorf("delay_seconds: %w", err)
		}
	}
	if f.Feedback != nil {
		if err := dst.SetFeedback(*f.Feedback); err != nil {
			return fmt.Errorf("feedback: %w", err)
		}
	}
	if f.FeedbackDB != nil {
		if err := dst.SetFeedback(core.DBToLinear(*f.FeedbackDB)); err != nil {
			return fmt.Errorf("feedback_db: %w", err)
		}
	}
	if f.Wet != nil {
		if err := dst.SetWet(*f.Wet); err != nil {
			return fmt.Errorf("wet: %w", err)
		}
	}
	if f.WetDB != nil {
		if err := dst.SetWet(core.DBToLinear(*f.WetDB)); err != nil {
			return fmt.Errorf("wet_db: %w", err)
		}
	}
	return nil
}
