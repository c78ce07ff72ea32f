// Package ui provides terminal rendering for derived RCS products
package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProfileBars renders a range profile as a column chart. Values are kept
// normalized to [0,1]; SetProfile maps converted magnitudes onto that span.
type ProfileBars struct {
	Width  int
	Height int
	Data   []float64
}

var (
	strongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	midStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	weakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	floorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// NewProfileBars creates a bar display of the given terminal size.
func NewProfileBars(width, height int) *ProfileBars {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &ProfileBars{
		Width:  width,
		Height: height,
		Data:   make([]float64, width),
	}
}

// Resize adjusts the display dimensions, clearing current data.
func (b *ProfileBars) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b.Width = width
	b.Height = height
	b.Data = make([]float64, width)
}

// SetProfile maps a converted magnitude vector onto the display columns.
// Each column takes the peak of its share of bins; the value span is
// normalized so the weakest bin sits at 0 and the strongest at 1.
func (b *ProfileBars) SetProfile(magnitude []float64) {
	for i := range b.Data {
		b.Data[i] = 0
	}
	if len(magnitude) == 0 {
		return
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, m := range magnitude {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	perColumn := float64(len(magnitude)) / float64(b.Width)
	if perColumn < 1 {
		perColumn = 1
	}
	for col := 0; col < b.Width; col++ {
		start := int(float64(col) * perColumn)
		end := int(float64(col+1) * perColumn)
		if start >= len(magnitude) {
			break
		}
		if end > len(magnitude) {
			end = len(magnitude)
		}
		peak := math.Inf(-1)
		for _, m := range magnitude[start:end] {
			if m > peak {
				peak = m
			}
		}
		b.Data[col] = (peak - lo) / span
	}
}

// Render renders the bars as Height lines of Width cells.
func (b *ProfileBars) Render() []string {
	lines := make([]string, b.Height)

	for row := 0; row < b.Height; row++ {
		var sb strings.Builder
		threshold := float64(b.Height-row) / float64(b.Height)

		for col := 0; col < b.Width; col++ {
			value := 0.0
			if col < len(b.Data) {
				value = b.Data[col]
			}

			if value >= threshold {
				switch {
				case row < b.Height/3:
					sb.WriteString(strongStyle.Render("█"))
				case row < 2*b.Height/3:
					sb.WriteString(midStyle.Render("█"))
				default:
					sb.WriteString(weakStyle.Render("█"))
				}
			} else {
				sb.WriteString(floorStyle.Render("░"))
			}
		}
		lines[row] = sb.String()
	}

	return lines
}

// RenderCompact renders a single-line sparkline of the profile.
func (b *ProfileBars) RenderCompact() string {
	var sb strings.Builder
	for i := 0; i < b.Width; i++ {
		value := 0.0
		if i < len(b.Data) {
			value = b.Data[i]
		}

		switch {
		case value > 0.8:
			sb.WriteString(strongStyle.Render("█"))
		case value > 0.5:
			sb.WriteString(midStyle.Render("▄"))
		case value > 0.2:
			sb.WriteString(weakStyle.Render("▁"))
		default:
			sb.WriteString(floorStyle.Render("▁"))
		}
	}
	return sb.String()
}
