package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeljko94/SimpleEQ2/dsp/eq"
	"github.com/zeljko94/SimpleEQ2/dsp/filter/design"
	"github.com/zeljko94/SimpleEQ2/internal/cli"
	"github.com/zeljko94/SimpleEQ2/internal/playback"
	"github.com/zeljko94/SimpleEQ2/internal/ui"
	"github.com/zeljko94/SimpleEQ2/measure/response"
)

// CurveCmd prints the magnitude response.
type CurveCmd struct {
	SettingsFlags

	Width int  `default:"72" help:"Number of curve points"`
	Rows  int  `default:"17" help:"Plot height in lines"`
	Table bool `help:"Print a frequency/gain table instead of the plot"`
}

// Run evaluates the chain built from the flags.
func (c *CurveCmd) Run(g *Globals) error {
	reg, err := c.Registry()
	if err != nil {
		return err
	}
	s := eq.SettingsFrom(reg)

	chain := &eq.MonoChain{}
	eq.UpdateChain(chain, s, c.SampleRate)
	mags := eq.MagnitudeDB(chain, c.SampleRate, c.Width)
	if mags == nil {
		return fmt.Errorf("invalid curve width %d", c.Width)
	}
	g.Logf("[CURVE] %d points at %v Hz: %+v", len(mags), c.SampleRate, s)

	if c.Table {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "Frequency (Hz)\tGain (dB)\t")
		for i, db := range mags {
			fmt.Fprintf(w, "%.1f\t%.2f\t\n", eq.PointFrequency(i, len(mags)), db)
		}
		return w.Flush()
	}

	fmt.Println(cli.TitleStyle.Render("Magnitude response"))
	fmt.Println(ui.PlotView(mags, c.Rows))
	fmt.Println()
	printSettings(s)
	return nil
}

// MeasureCmd checks the evaluator against the filtered impulse.
type MeasureCmd struct {
	SettingsFlags

	FFT    int     `name:"fft" default:"16384" help:"FFT size, a power of two"`
	Lo     float64 `default:"100" help:"Lowest compared frequency in Hz"`
	Hi     float64 `default:"10000" help:"Highest compared frequency in Hz"`
	Points int     `default:"200" help:"Number of compared frequencies"`
}

// Run prints computed and measured gains at a few frequencies, the largest
// deviation over [Lo, Hi] and whether every active section is stable.
func (c *MeasureCmd) Run(g *Globals) error {
	reg, err := c.Registry()
	if err != nil {
		return err
	}
	s := eq.SettingsFrom(reg)

	chain := &eq.MonoChain{}
	eq.UpdateChain(chain, s, c.SampleRate)

	spec, err := response.MeasureChain(chain, c.SampleRate, c.FFT)
	if err != nil {
		return err
	}
	computed := func(freq float64) float64 {
		return eq.GainToDecibels(eq.MagnitudeAt(chain, freq, c.SampleRate))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Frequency (Hz)\tComputed (dB)\tMeasured (dB)\tDifference (dB)\t")
	for _, f := range []float64{31.25, 62.5, 125, 250, 500, 1000, 2000, 4000, 8000, 16000} {
		if f >= c.SampleRate/2 {
			continue
		}
		want, got := computed(f), spec.At(f)
		fmt.Fprintf(w, "%.2f\t%.2f\t%.2f\t%.3f\t\n", f, want, got, got-want)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	dev := spec.Deviation(computed, c.Lo, c.Hi, c.Points)
	g.Logf("[MEASURE] fft %d, max deviation %.4f dB over %v-%v Hz, stable %v", c.FFT, dev, c.Lo, c.Hi, chain.Stable())

	fmt.Println()
	stable := "yes"
	if !chain.Stable() {
		stable = "no"
	}
	cli.PrintField(os.Stdout, "FFT size", fmt.Sprint(c.FFT))
	cli.PrintField(os.Stdout, "Stable", stable)
	cli.PrintField(os.Stdout, "Max deviation", fmt.Sprintf("%.4f dB (%g Hz to %g Hz)", dev, c.Lo, c.Hi))
	return nil
}

// ParamsCmd lists the parameter layout.
type ParamsCmd struct {
	SettingsFlags

	JSON bool `name:"json" help:"Print current values as a preset file"`
}

// Run prints one row per parameter.
func (c *ParamsCmd) Run(g *Globals) error {
	reg, err := c.Registry()
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reg.Snapshot())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tRange\tStep\tDefault\tValue")
	for _, p := range reg.All() {
		rng := fmt.Sprintf("%s .. %s", p.Format(p.Min), p.Format(p.Max))
		step := fmt.Sprint(p.Step)
		if p.IsChoice() {
			rng = strings.Join(p.Choices, " | ")
			step = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, rng, step, p.Format(p.Default), p.String())
	}
	g.Logf("[PARAMS] %d parameters", reg.Count())
	return w.Flush()
}

// PlayCmd runs the live equalizer.
type PlayCmd struct {
	SettingsFlags

	Headless bool    `help:"Render without an audio device"`
	Signal   string  `enum:"noise,sine" default:"noise" help:"Test signal (noise, sine)"`
	Tone     float64 `default:"1000" help:"Sine frequency in Hz"`
	Level    float64 `default:"-12" help:"Signal level in dBFS"`
	Channels int     `default:"2" help:"Output channels"`
	Block    int     `default:"512" help:"Block size in frames"`
}

// Run wires registry, controller, processor and sink, then hands the
// terminal to the UI until it quits.
func (c *PlayCmd) Run(g *Globals) error {
	reg, err := c.Registry()
	if err != nil {
		return err
	}

	proc := eq.NewProcessor()
	if err := proc.Prepare(c.SampleRate, c.Channels, eq.SettingsFrom(reg)); err != nil {
		return err
	}

	ctl := eq.NewController(reg, proc, eq.WithLogf(g.Logf))
	handle := reg.AddListener(ctl.ParameterChanged)
	defer reg.RemoveListener(handle)

	amp := design.DecibelsToGain(c.Level)
	var gen playback.Generator = playback.NewNoiseGenerator(1, amp)
	if c.Signal == "sine" {
		gen = playback.NewSineGenerator(c.Tone, c.SampleRate, amp)
	}
	renderer := playback.NewRenderer(proc, gen, c.Block)

	sink, name, err := c.openSink(renderer, g)
	if err != nil {
		return err
	}
	if err := sink.Start(); err != nil {
		return fmt.Errorf("start %s output: %w", name, err)
	}
	defer func() {
		if err := sink.Close(); err != nil {
			g.Logf("[PLAY] close %s: %v", name, err)
		}
	}()
	g.Logf("[PLAY] %s output, %d channels at %v Hz, %d frames per block", name, c.Channels, c.SampleRate, c.Block)

	model := ui.NewModel(reg, ctl, proc, renderer, name)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	g.Logf("[PLAY] done after %d rebuilds, %d blocks", ctl.Rebuilds(), renderer.Blocks())
	return nil
}

// openSink returns the audio device, falling back to the headless clock when
// there is none.
func (c *PlayCmd) openSink(r *playback.Renderer, g *Globals) (playback.Sink, string, error) {
	if !c.Headless {
		out, err := playback.NewOto(r, int(math.Round(c.SampleRate)))
		if err == nil {
			return out, "audio", nil
		}
		if !errors.Is(err, playback.ErrAudioUnavailable) {
			g.Logf("[PLAY] audio device unavailable: %v", err)
		}
	}
	return playback.NewHeadless(r, c.SampleRate), "headless", nil
}

func printSettings(s eq.ChainSettings) {
	cli.PrintField(os.Stdout, "Low cut", fmt.Sprintf("%.0f Hz, %s", s.LowCutFreq, s.LowCutSlope))
	cli.PrintField(os.Stdout, "Peak", fmt.Sprintf("%.0f Hz, %+.1f dB, Q %.2f", s.PeakFreq, s.PeakGainDB, s.PeakQuality))
	cli.PrintField(os.Stdout, "High cut", fmt.Sprintf("%.0f Hz, %s", s.HighCutFreq, s.HighCutSlope))
}
