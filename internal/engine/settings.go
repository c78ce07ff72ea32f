package engine

import (
	"github.com/rcsview/rcsview/internal/dsp"
	"github.com/rcsview/rcsview/internal/window"
)

// Aspect selects the orientation of the cross-range angle axis.
type Aspect string

const (
	AspectHorizontal Aspect = "Horizontal"
	AspectVertical   Aspect = "Vertical"
)

// Diagnostic strings are part of the behavioral contract consumed by calling
// UI and test code; do not reword.
const (
	DiagFrequencyNotAvailable = "Frequency not available."
	DiagValueNotAvailable     = "Value not available."
	DiagInvalidWindow         = "Invalid value for `window`. The value must be 'Flat', 'Hamming', or 'Hann'."
)

// Settings holds the validated configuration every derived computation reads.
// Empty string selectors mean unset.
type Settings struct {
	Frequency         string
	IncidentWaveTheta string
	IncidentWavePhi   string
	Conversion        dsp.Conversion
	Window            window.Kind
	WindowSize        int
	AspectRange       Aspect
	UpsampleRange     int
	UpsampleAzimuth   int
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		Conversion:      dsp.DB20,
		Window:          window.Flat,
		WindowSize:      1024,
		AspectRange:     AspectHorizontal,
		UpsampleRange:   512,
		UpsampleAzimuth: 64,
	}
}

// Settings returns a copy of the current configuration state.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Frequency returns the selected frequency label, empty when unset.
func (e *Engine) Frequency() string {
	return e.settings.Frequency
}

// IncidentWaveTheta returns the selected theta, empty when unset.
func (e *Engine) IncidentWaveTheta() string {
	return e.settings.IncidentWaveTheta
}

// IncidentWavePhi returns the selected phi, empty when unset.
func (e *Engine) IncidentWavePhi() string {
	return e.settings.IncidentWavePhi
}

// Window returns the selected window kind.
func (e *Engine) Window() window.Kind {
	return e.settings.Window
}

// WindowSize returns the range-transform bin count.
func (e *Engine) WindowSize() int {
	return e.settings.WindowSize
}

// DataConversionFunction returns the presentation conversion.
func (e *Engine) DataConversionFunction() dsp.Conversion {
	return e.settings.Conversion
}

// AspectRange returns the cross-range axis orientation.
func (e *Engine) AspectRange() Aspect {
	return e.settings.AspectRange
}

// UpsampleRange returns the cross-range image range-bin count.
func (e *Engine) UpsampleRange() int {
	return e.settings.UpsampleRange
}

// UpsampleAzimuth returns the cross-range image azimuth-bin count.
func (e *Engine) UpsampleAzimuth() int {
	return e.settings.UpsampleAzimuth
}

// SetFrequency selects a frequency from the table's frequency axis.
func (e *Engine) SetFrequency(freq string) Result {
	res := e.validate(freq, e.data.Frequencies(), DiagFrequencyNotAvailable)
	if res.OK {
		e.settings.Frequency = freq
	}
	return res
}

// SetIncidentWaveTheta selects an incident-wave theta from the angle axis.
func (e *Engine) SetIncidentWaveTheta(theta string) Result {
	res := e.validate(theta, e.data.ThetaValues(), DiagValueNotAvailable)
	if res.OK {
		e.settings.IncidentWaveTheta = theta
	}
	return res
}

// SetIncidentWavePhi selects an incident-wave phi from the angle axis.
func (e *Engine) SetIncidentWavePhi(phi string) Result {
	res := e.validate(phi, e.data.PhiValues(), DiagValueNotAvailable)
	if res.OK {
		e.settings.IncidentWavePhi = phi
	}
	return res
}

// SetWindow selects the tapering window.
func (e *Engine) SetWindow(kind window.Kind) Result {
	if !window.Valid(kind) {
		return e.reject(DiagInvalidWindow)
	}
	e.settings.Window = kind
	return ok()
}

// SetDataConversionFunction selects the presentation conversion.
func (e *Engine) SetDataConversionFunction(kind dsp.Conversion) Result {
	for _, c := range dsp.Conversions {
		if c == kind {
			e.settings.Conversion = kind
			return ok()
		}
	}
	return e.reject(DiagValueNotAvailable)
}

// SetAspectRange selects the cross-range axis orientation.
func (e *Engine) SetAspectRange(aspect Aspect) Result {
	if aspect != AspectHorizontal && aspect != AspectVertical {
		return e.reject(DiagValueNotAvailable)
	}
	e.settings.AspectRange = aspect
	return ok()
}

// SetWindowSize sets the range-transform bin count. Must be positive.
func (e *Engine) SetWindowSize(n int) Result {
	if n < 1 {
		return e.reject(DiagValueNotAvailable)
	}
	e.settings.WindowSize = n
	return ok()
}

// SetUpsampleRange sets the cross-range image range-bin count. Must be
// positive.
func (e *Engine) SetUpsampleRange(n int) Result {
	if n < 1 {
		return e.reject(DiagValueNotAvailable)
	}
	e.settings.UpsampleRange = n
	return ok()
}

// SetUpsampleAzimuth sets the cross-range image azimuth-bin count. Must be
// positive.
func (e *Engine) SetUpsampleAzimuth(n int) Result {
	if n < 1 {
		return e.reject(DiagValueNotAvailable)
	}
	e.settings.UpsampleAzimuth = n
	return ok()
}
