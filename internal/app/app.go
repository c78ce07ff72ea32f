// Package app provides the Bubble Tea browser for RCS datasets
package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rcsview/rcsview/internal/dsp"
	"github.com/rcsview/rcsview/internal/engine"
	"github.com/rcsview/rcsview/internal/profile"
	"github.com/rcsview/rcsview/internal/ui"
	"github.com/rcsview/rcsview/internal/window"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the interactive dataset browser. It consumes the engine's numeric
// arrays the way any external plotting collaborator would.
type Model struct {
	eng  *engine.Engine
	bars *ui.ProfileBars

	prof   profile.Profile
	notice string

	width  int
	height int
}

// NewModel creates a browser over eng.
func NewModel(eng *engine.Engine) *Model {
	m := &Model{
		eng:  eng,
		bars: ui.NewProfileBars(80, 16),
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barHeight := m.height - 8
		if barHeight < 4 {
			barHeight = 4
		}
		barWidth := m.width - 2
		if barWidth < 10 {
			barWidth = 10
		}
		m.bars.Resize(barWidth, barHeight)
		m.bars.SetProfile(m.prof.Magnitude)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "w":
		m.cycleWindow()
	case "c":
		m.cycleConversion()
	case "f":
		m.cycleFrequency()
	case "t":
		m.cycleTheta()
	case "p":
		m.cyclePhi()
	case "r":
		m.notice = ""
		m.recompute()
	}
	return m, nil
}

func (m *Model) cycleWindow() {
	kinds := window.Kinds
	next := kinds[0]
	for i, k := range kinds {
		if k == m.eng.Window() {
			next = kinds[(i+1)%len(kinds)]
			break
		}
	}
	m.apply(m.eng.SetWindow(next))
}

func (m *Model) cycleConversion() {
	conversions := dsp.Conversions
	next := conversions[0]
	for i, c := range conversions {
		if c == m.eng.DataConversionFunction() {
			next = conversions[(i+1)%len(conversions)]
			break
		}
	}
	m.apply(m.eng.SetDataConversionFunction(next))
}

func (m *Model) cycleFrequency() {
	m.apply(m.eng.SetFrequency(nextValue(m.eng.Frequencies(), m.eng.Frequency())))
}

func (m *Model) cycleTheta() {
	available := m.eng.AvailableIncidentWaveTheta()
	if available == nil {
		m.notice = "dataset carries no incident-wave angles"
		return
	}
	m.apply(m.eng.SetIncidentWaveTheta(nextValue(available, m.eng.IncidentWaveTheta())))
}

func (m *Model) cyclePhi() {
	available := m.eng.AvailableIncidentWavePhi()
	if available == nil {
		m.notice = "dataset carries no incident-wave angles"
		return
	}
	m.apply(m.eng.SetIncidentWavePhi(nextValue(available, m.eng.IncidentWavePhi())))
}

// nextValue steps through available values, wrapping at the end. An unset
// current value starts at the first.
func nextValue(available []string, current string) string {
	if len(available) == 0 {
		return current
	}
	for i, v := range available {
		if v == current {
			return available[(i+1)%len(available)]
		}
	}
	return available[0]
}

// apply records a setter outcome and recomputes on success.
func (m *Model) apply(res engine.Result) {
	if !res.OK {
		m.notice = res.Diagnostic
		return
	}
	m.notice = ""
	m.recompute()
}

func (m *Model) recompute() {
	m.prof = profile.NewProcessor(m.eng).RangeProfile()
	m.bars.SetProfile(m.prof.Magnitude)
}

// View implements tea.Model.
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf(" %s — %s", m.eng.Name(), m.eng.Solution())))
	sb.WriteString("\n\n")

	for _, line := range m.bars.Render() {
		sb.WriteString(" " + line + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(" " + m.settingsLine() + "\n")
	if m.notice != "" {
		sb.WriteString(" " + noticeStyle.Render(m.notice) + "\n")
	}
	sb.WriteString(labelStyle.Render(" [w]indow [c]onversion [f]requency [t]heta [p]hi [r]ecompute [q]uit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m *Model) settingsLine() string {
	pair := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return labelStyle.Render(label+":") + valueStyle.Render(value)
	}
	return strings.Join([]string{
		pair("window", string(m.eng.Window())),
		pair("conv", string(m.eng.DataConversionFunction())),
		pair("freq", m.eng.Frequency()),
		pair("theta", m.eng.IncidentWaveTheta()),
		pair("phi", m.eng.IncidentWavePhi()),
		pair("bins", fmt.Sprintf("%d", m.eng.WindowSize())),
	}, "  ")
}
