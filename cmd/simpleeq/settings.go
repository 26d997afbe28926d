package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/zeljko94/SimpleEQ2/dsp/eq"
	"github.com/zeljko94/SimpleEQ2/param"
)

var errInvalidSlope = errors.New("slope must be 12, 24, 36 or 48 dB/Oct")

// SettingsFlags are the equalizer parameters shared by every command. Unset
// flags keep the preset value, or the layout default without a preset.
type SettingsFlags struct {
	Preset     string   `type:"existingfile" help:"JSON file of parameter values keyed by parameter name"`
	LowCut     *float64 `name:"low-cut" placeholder:"HZ" help:"Low cut frequency"`
	HighCut    *float64 `name:"high-cut" placeholder:"HZ" help:"High cut frequency"`
	PeakFreq   *float64 `name:"peak-freq" placeholder:"HZ" help:"Peak frequency"`
	PeakGain   *float64 `name:"peak-gain" placeholder:"DB" help:"Peak gain"`
	PeakQ      *float64 `name:"peak-q" placeholder:"Q" help:"Peak quality"`
	LowSlope   *int     `name:"low-slope" placeholder:"DB" help:"Low cut slope in dB/Oct (12, 24, 36, 48)"`
	HighSlope  *int     `name:"high-slope" placeholder:"DB" help:"High cut slope in dB/Oct (12, 24, 36, 48)"`
	SampleRate float64  `name:"sample-rate" default:"48000" help:"Sample rate in Hz"`
}

// Registry returns a parameter registry holding the preset and the flags.
func (f *SettingsFlags) Registry() (*param.Registry, error) {
	reg := eq.NewRegistry()
	if err := f.Apply(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Apply loads the preset into reg, then every flag that was given.
func (f *SettingsFlags) Apply(reg *param.Registry) error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: %v", eq.ErrInvalidSampleRate, f.SampleRate)
	}

	if f.Preset != "" {
		if err := loadPreset(reg, f.Preset); err != nil {
			return err
		}
	}

	values := []struct {
		id uint32
		v  *float64
	}{
		{eq.ParamLowCutFreq, f.LowCut},
		{eq.ParamHighCutFreq, f.HighCut},
		{eq.ParamPeakFreq, f.PeakFreq},
		{eq.ParamPeakGain, f.PeakGain},
		{eq.ParamPeakQuality, f.PeakQ},
	}
	for _, v := range values {
		if v.v == nil {
			continue
		}
		if err := reg.Set(v.id, *v.v); err != nil {
			return err
		}
	}

	slopes := []struct {
		id uint32
		db *int
	}{
		{eq.ParamLowCutSlope, f.LowSlope},
		{eq.ParamHighCutSlope, f.HighSlope},
	}
	for _, s := range slopes {
		if s.db == nil {
			continue
		}
		choice, err := slopeChoice(*s.db)
		if err != nil {
			return err
		}
		if err := reg.Set(s.id, choice); err != nil {
			return err
		}
	}
	return nil
}

// slopeChoice maps a slope in dB/Oct onto its choice index.
func slopeChoice(db int) (float64, error) {
	for s := eq.Slope12; s <= eq.Slope48; s++ {
		if s.DBPerOctave() == db {
			return float64(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %d", errInvalidSlope, db)
}

func loadPreset(reg *param.Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset: %w", err)
	}

	var values map[string]float64
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parse preset %s: %w", path, err)
	}
	if err := reg.Restore(values); err != nil {
		return fmt.Errorf("apply preset %s: %w", path, err)
	}
	return nil
}
