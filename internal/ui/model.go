// Package ui provides the Bubbletea terminal interface for live equalizer
// control.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zeljko94/SimpleEQ2/dsp/eq"
	"github.com/zeljko94/SimpleEQ2/internal/cli"
	"github.com/zeljko94/SimpleEQ2/internal/curve"
	"github.com/zeljko94/SimpleEQ2/param"
)

const (
	labelWidth = 8
	minColumns = 16
	minRows    = 7
	maxRows    = 25
)

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	bypassStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
)

// LevelSource reports the RMS level of the most recent output block.
type LevelSource interface {
	Level() float64
}

// Model is the Bubbletea model for the equalizer UI. Key presses write
// parameters through the registry, whose listeners mark the controller
// dirty; every tick polls the controller and refreshes the curve.
type Model struct {
	Registry   *param.Registry
	Controller *eq.Controller
	Processor  *eq.Processor
	Level      LevelSource
	SinkName   string
	Interval   time.Duration

	Selected int
	Width    int
	Height   int
	Err      error

	mags  []float64
	stale bool
}

// NewModel creates a model polling at eq.DefaultPollInterval.
func NewModel(reg *param.Registry, ctl *eq.Controller, proc *eq.Processor, level LevelSource, sinkName string) Model {
	return Model{
		Registry:   reg,
		Controller: ctl,
		Processor:  proc,
		Level:      level,
		SinkName:   sinkName,
		Interval:   eq.DefaultPollInterval,
		Width:      80,
		Height:     24,
		stale:      true,
	}
}

// Init starts the poll timer.
func (m Model) Init() tea.Cmd {
	return tick(m.Interval)
}

// Update handles key presses, ticks and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.stale = true
		return m, nil

	case TickMsg:
		if m.Controller.Poll() {
			m.stale = true
		}
		if m.stale {
			m.refresh()
		}
		return m, tick(m.Interval)

	case ErrorMsg:
		m.Err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	params := m.Registry.All()

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.Selected = (m.Selected + len(params) - 1) % len(params)
	case "down", "j", "tab":
		m.Selected = (m.Selected + 1) % len(params)
	case "left", "h":
		m.nudge(params[m.Selected], -1, false)
	case "right", "l":
		m.nudge(params[m.Selected], 1, false)
	case "H":
		m.nudge(params[m.Selected], -1, true)
	case "L":
		m.nudge(params[m.Selected], 1, true)
	case "r":
		p := params[m.Selected]
		m.set(p, p.Default)
	case "R":
		m.Registry.ResetAll()
	case "1":
		m.toggle(eq.LowCut)
	case "2":
		m.toggle(eq.Peak)
	case "3":
		m.toggle(eq.HighCut)
	}
	return m, nil
}

func (m *Model) nudge(p *param.Parameter, dir int, coarse bool) {
	m.set(p, Nudge(p, dir, coarse))
}

func (m *Model) set(p *param.Parameter, v float64) {
	if err := m.Registry.Set(p.ID, v); err != nil {
		m.Err = err
	}
}

// toggle flips a chain position on every channel. Bypass is applied
// directly and does not go through the controller.
func (m *Model) toggle(pos eq.ChainPosition) {
	bypassed := !m.Processor.Chain(0).IsBypassed(pos)
	for ch := 0; ch < m.Processor.Channels(); ch++ {
		m.Processor.Chain(ch).SetBypassed(pos, bypassed)
	}
	m.stale = true
}

// Nudge returns the value one step away from p's current value in
// direction dir. Frequencies move by a semitone, or an octave when coarse;
// other parameters move by their step, or ten steps when coarse.
func Nudge(p *param.Parameter, dir int, coarse bool) float64 {
	v := p.Plain()
	if p.Unit == "Hz" {
		ratio := math.Pow(2, 1.0/12)
		if coarse {
			ratio = 2
		}
		if dir < 0 {
			return p.Quantize(v / ratio)
		}
		return p.Quantize(v * ratio)
	}

	step := p.Step
	if step <= 0 {
		step = (p.Max - p.Min) / 100
	}
	if coarse && !p.IsChoice() {
		step *= 10
	}
	return p.Quantize(v + float64(dir)*step)
}

func (m *Model) plotSize() (cols, rows int) {
	cols = max(m.Width-labelWidth-1, minColumns)
	rows = min(max(m.Height-len(m.Registry.All())-8, minRows), maxRows)
	return cols, rows
}

func (m *Model) refresh() {
	cols, _ := m.plotSize()
	if len(m.mags) != cols {
		m.mags = make([]float64, cols)
	}
	eq.MagnitudeDBInto(m.mags, m.Processor.Chain(0), m.Processor.SampleRate())
	m.stale = false
}

// View renders the curve, the parameter list and the status line.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(cli.TitleStyle.Render("SimpleEQ"))
	sb.WriteString("\n")

	cols, rows := m.plotSize()
	mags := m.mags
	if len(mags) != cols {
		mags = curve.Resample(mags, cols)
	}
	sb.WriteString(PlotView(mags, rows))
	sb.WriteString("\n")

	for i, p := range m.Registry.All() {
		line := fmt.Sprintf("%-14s %s", p.Name, p.String())
		if i == m.Selected {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.status())
	sb.WriteString("\n")

	if m.Err != nil {
		sb.WriteString(cli.ErrorStyle.Render("Error: " + m.Err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("↑/↓ select  ←/→ adjust  H/L coarse  r reset  R reset all  1/2/3 bypass  q quit"))
	return sb.String()
}

func (m Model) status() string {
	var parts []string
	for _, pos := range []eq.ChainPosition{eq.LowCut, eq.Peak, eq.HighCut} {
		name := pos.String()
		if m.Processor.Chain(0).IsBypassed(pos) {
			name = bypassStyle.Render(name)
		}
		parts = append(parts, name)
	}

	level := "-"
	if m.Level != nil {
		level = fmt.Sprintf("%.1f dB", eq.GainToDecibels(m.Level.Level()))
	}

	return fmt.Sprintf("%s  %s %s  %s %d  %s %s",
		strings.Join(parts, " "),
		cli.KeyStyle.Render("level"), cli.ValueStyle.Render(level),
		cli.KeyStyle.Render("rebuilds"), m.Controller.Rebuilds(),
		cli.KeyStyle.Render("output"), cli.ValueStyle.Render(m.SinkName),
	)
}

// PlotView renders mags as a labelled chart of rows lines.
func PlotView(mags []float64, rows int) string {
	lines := curve.Plot(mags, rows)
	if lines == nil {
		return ""
	}

	var sb strings.Builder
	for r, line := range lines {
		label := ""
		switch r {
		case 0:
			label = fmt.Sprintf("%+.0f dB", curve.MaxDB)
		case rows / 2:
			label = "0 dB"
		case rows - 1:
			label = fmt.Sprintf("%+.0f dB", curve.MinDB)
		}
		sb.WriteString(cli.AxisStyle.Render(fmt.Sprintf("%*s ", labelWidth-1, label)))
		sb.WriteString(cli.CurveStyle.Render(line))
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(" ", labelWidth))
	sb.WriteString(cli.AxisStyle.Render(FrequencyAxis(len(mags))))
	return sb.String()
}

// FrequencyAxis labels a cols-wide log axis from eq.MinFrequency to
// eq.MaxFrequency at decade and half-decade marks.
func FrequencyAxis(cols int) string {
	axis := []byte(strings.Repeat(" ", cols))
	for _, f := range []float64{20, 50, 100, 200, 500, 1000, 2000, 5000, 10000} {
		t := math.Log(f/eq.MinFrequency) / math.Log(eq.MaxFrequency/eq.MinFrequency)
		col := int(math.Round(t * float64(cols)))
		label := fmt.Sprintf("%g", f)
		if f >= 1000 {
			label = fmt.Sprintf("%gk", f/1000)
		}
		if col+len(label) > cols {
			continue
		}
		if col > 0 && axis[col-1] != ' ' {
			continue
		}
		copy(axis[col:], label)
	}
	return string(axis)
}
