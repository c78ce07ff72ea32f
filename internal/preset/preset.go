// Package preset loads and saves analysis presets for the rcsview CLI
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rcsview/rcsview/internal/dsp"
	"github.com/rcsview/rcsview/internal/engine"
	"github.com/rcsview/rcsview/internal/window"
)

// Preset is a saved analysis configuration. Zero values mean "leave the
// engine default in place"; every set field still goes through the engine's
// validated setters, so a stale preset degrades softly instead of failing.
type Preset struct {
	Frequency         string `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	IncidentWaveTheta string `yaml:"incident_wave_theta,omitempty" json:"incident_wave_theta,omitempty"`
	IncidentWavePhi   string `yaml:"incident_wave_phi,omitempty" json:"incident_wave_phi,omitempty"`
	Window            string `yaml:"window,omitempty" json:"window,omitempty"`
	WindowSize        int    `yaml:"window_size,omitempty" json:"window_size,omitempty"`
	DataConversion    string `yaml:"data_conversion,omitempty" json:"data_conversion,omitempty"`
	AspectRange       string `yaml:"aspect_range,omitempty" json:"aspect_range,omitempty"`
	UpsampleRange     int    `yaml:"upsample_range,omitempty" json:"upsample_range,omitempty"`
	UpsampleAzimuth   int    `yaml:"upsample_azimuth,omitempty" json:"upsample_azimuth,omitempty"`
}

// Load reads a preset from a YAML file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}
	return &p, nil
}

// Save writes a preset to a YAML file.
func Save(path string, p *Preset) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FromEngine captures the engine's current configuration as a preset.
func FromEngine(e *engine.Engine) *Preset {
	s := e.Settings()
	return &Preset{
		Frequency:         s.Frequency,
		IncidentWaveTheta: s.IncidentWaveTheta,
		IncidentWavePhi:   s.IncidentWavePhi,
		Window:            string(s.Window),
		WindowSize:        s.WindowSize,
		DataConversion:    string(s.Conversion),
		AspectRange:       string(s.AspectRange),
		UpsampleRange:     s.UpsampleRange,
		UpsampleAzimuth:   s.UpsampleAzimuth,
	}
}

// Apply pushes every set field through the engine's validated setters and
// returns the outcomes of the writes that were attempted.
func (p *Preset) Apply(e *engine.Engine) []engine.Result {
	var results []engine.Result
	attempt := func(set func() engine.Result) {
		results = append(results, set())
	}

	if p.Frequency != "" {
		attempt(func() engine.Result { return e.SetFrequency(p.Frequency) })
	}
	if p.IncidentWaveTheta != "" {
		attempt(func() engine.Result { return e.SetIncidentWaveTheta(p.IncidentWaveTheta) })
	}
	if p.IncidentWavePhi != "" {
		attempt(func() engine.Result { return e.SetIncidentWavePhi(p.IncidentWavePhi) })
	}
	if p.Window != "" {
		attempt(func() engine.Result { return e.SetWindow(window.Kind(p.Window)) })
	}
	if p.WindowSize != 0 {
		attempt(func() engine.Result { return e.SetWindowSize(p.WindowSize) })
	}
	if p.DataConversion != "" {
		attempt(func() engine.Result { return e.SetDataConversionFunction(dsp.Conversion(p.DataConversion)) })
	}
	if p.AspectRange != "" {
		attempt(func() engine.Result { return e.SetAspectRange(engine.Aspect(p.AspectRange)) })
	}
	if p.UpsampleRange != 0 {
		attempt(func() engine.Result { return e.SetUpsampleRange(p.UpsampleRange) })
	}
	if p.UpsampleAzimuth != 0 {
		attempt(func() engine.Result { return e.SetUpsampleAzimuth(p.UpsampleAzimuth) })
	}

	return results
}
