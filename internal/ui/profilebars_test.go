package ui

import (
	"strings"
	"testing"
)

func TestNewProfileBars_ClampsDimensions(t *testing.T) {
	b := NewProfileBars(0, -2)
	if b.Width != 1 || b.Height != 1 {
		t.Errorf("expected 1x1 minimum, got %dx%d", b.Width, b.Height)
	}
}

func TestSetProfile_Normalizes(t *testing.T) {
	b := NewProfileBars(4, 8)
	b.SetProfile([]float64{-40, -30, -20, -10})

	if b.Data[0] != 0 {
		t.Errorf("expected weakest column at 0, got %g", b.Data[0])
	}
	if b.Data[3] != 1 {
		t.Errorf("expected strongest column at 1, got %g", b.Data[3])
	}
	for i := 1; i < 4; i++ {
		if b.Data[i] < b.Data[i-1] {
			t.Errorf("expected monotone columns for monotone input, got %v", b.Data)
		}
	}
}

func TestSetProfile_PeakPicksBins(t *testing.T) {
	// 8 bins into 2 columns: each column takes its share's peak.
	b := NewProfileBars(2, 4)
	b.SetProfile([]float64{0, 0, 10, 0, 0, 0, 0, 5})

	if b.Data[0] != 1 {
		t.Errorf("expected first column at peak 1, got %g", b.Data[0])
	}
	if b.Data[1] != 0.5 {
		t.Errorf("expected second column at 0.5, got %g", b.Data[1])
	}
}

func TestSetProfile_Empty(t *testing.T) {
	b := NewProfileBars(4, 4)
	b.SetProfile(nil)
	for i, v := range b.Data {
		if v != 0 {
			t.Errorf("column %d: expected 0 for empty profile, got %g", i, v)
		}
	}
}

func TestSetProfile_FlatInput(t *testing.T) {
	b := NewProfileBars(4, 4)
	b.SetProfile([]float64{-20, -20, -20, -20})
	for i, v := range b.Data {
		if v != 0 {
			t.Errorf("column %d: expected flat input to normalize to 0, got %g", i, v)
		}
	}
}

func TestRender_Dimensions(t *testing.T) {
	b := NewProfileBars(10, 5)
	b.SetProfile([]float64{-40, -35, -30, -25, -20, -15, -10, -5, -3, 0})

	lines := b.Render()
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.Contains(line, "█") && !strings.Contains(line, "░") {
			t.Errorf("line %d renders no cells: %q", i, line)
		}
	}
}

func TestRenderCompact_Width(t *testing.T) {
	b := NewProfileBars(6, 1)
	b.SetProfile([]float64{0, 1, 2, 3, 4, 5})
	out := b.RenderCompact()
	if out == "" {
		t.Fatal("expected non-empty compact rendering")
	}
}

func TestResize(t *testing.T) {
	b := NewProfileBars(4, 4)
	b.SetProfile([]float64{1, 2, 3, 4})
	b.Resize(8, 2)
	if b.Width != 8 || b.Height != 2 {
		t.Errorf("expected 8x2 after resize, got %dx%d", b.Width, b.Height)
	}
	if len(b.Data) != 8 {
		t.Errorf("expected data resized to 8 columns, got %d", len(b.Data))
	}
}
