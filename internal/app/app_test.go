package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcsview/rcsview/internal/engine"
	"github.com/rcsview/rcsview/internal/logging"
	"github.com/rcsview/rcsview/internal/testutil"
	"github.com/rcsview/rcsview/internal/window"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	metaPath := testutil.TwoFrequencyDataset(t)
	eng, err := engine.New(metaPath, engine.WithLogger(logging.Discard{}))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return NewModel(eng)
}

func TestViewShowsDatasetHeader(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "Sphere") {
		t.Errorf("view missing dataset name:\n%s", view)
	}
	if !strings.Contains(view, "Setup1 : Sweep") {
		t.Errorf("view missing solution:\n%s", view)
	}
}

func TestCycleWindowAdvancesSetting(t *testing.T) {
	m := newTestModel(t)
	if got := m.eng.Window(); got != window.Flat {
		t.Fatalf("initial window = %q, want Flat", got)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m = updated.(*Model)
	if got := m.eng.Window(); got != window.Hamming {
		t.Errorf("window after cycle = %q, want Hamming", got)
	}
}

func TestCycleFrequencyWrapsThroughAvailable(t *testing.T) {
	m := newTestModel(t)

	freqs := m.eng.Frequencies()
	if len(freqs) != 2 {
		t.Fatalf("expected 2 frequencies, got %v", freqs)
	}

	m.cycleFrequency()
	if got := m.eng.Frequency(); got != freqs[0] {
		t.Errorf("first cycle = %q, want %q", got, freqs[0])
	}
	m.cycleFrequency()
	if got := m.eng.Frequency(); got != freqs[1] {
		t.Errorf("second cycle = %q, want %q", got, freqs[1])
	}
	m.cycleFrequency()
	if got := m.eng.Frequency(); got != freqs[0] {
		t.Errorf("third cycle = %q, want wrap to %q", got, freqs[0])
	}
}

func TestRejectedSetterSurfacesDiagnostic(t *testing.T) {
	m := newTestModel(t)
	m.apply(m.eng.SetFrequency("150Hz"))
	if m.notice != engine.DiagFrequencyNotAvailable {
		t.Errorf("notice = %q, want %q", m.notice, engine.DiagFrequencyNotAvailable)
	}
	if !strings.Contains(m.View(), engine.DiagFrequencyNotAvailable) {
		t.Errorf("view does not surface diagnostic")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Errorf("key %v did not quit", key)
		}
	}
}

func TestResizeKeepsBarsWithinBounds(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = updated.(*Model)
	if m.bars.Width != 38 {
		t.Errorf("bars width = %d, want 38", m.bars.Width)
	}
	if m.bars.Height != 4 {
		t.Errorf("bars height = %d, want 4", m.bars.Height)
	}
	if got := len(m.bars.Render()); got != 4 {
		t.Errorf("rendered %d lines, want 4", got)
	}
}
