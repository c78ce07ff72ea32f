// Package profile derives 1-D range-domain products from a swept-frequency
// dataset.
package profile

import (
	"math/cmplx"

	"github.com/rcsview/rcsview/internal/dsp"
	"github.com/rcsview/rcsview/internal/engine"
	"github.com/rcsview/rcsview/internal/table"
	"github.com/rcsview/rcsview/internal/window"
)

// Profile is a range-domain response. Magnitude carries the configured data
// conversion; Phase is passed through unconverted. Range is in meters when
// the frequency labels parse, otherwise bin indices.
type Profile struct {
	Range     []float64
	Magnitude []float64
	Phase     []float64
}

// Empty reports whether the profile carries no samples.
func (p Profile) Empty() bool {
	return len(p.Magnitude) == 0
}

// Processor computes range profiles. It is a pure function of the engine's
// table and settings, evaluated on demand.
type Processor struct {
	eng *engine.Engine
}

// NewProcessor returns a processor bound to eng.
func NewProcessor(eng *engine.Engine) *Processor {
	return &Processor{eng: eng}
}

// RangeProfile computes the range-domain response for the current angle
// selection. An empty selection spans all rows; a selection matching no rows
// yields an empty profile rather than an error. The configured frequency
// selection does not constrain the profile: it is always computed over the
// full swept band.
func (p *Processor) RangeProfile() Profile {
	samples, labels := p.sweep()
	if len(samples) == 0 {
		return Profile{}
	}

	s := p.eng.Settings()

	coeffs := window.Coefficients(s.Window, len(samples))
	for i := range samples {
		samples[i] *= complex(coeffs[i], 0)
	}

	nfft := s.WindowSize
	if len(samples) > nfft {
		nfft = len(samples)
	}
	response := dsp.IFFT(dsp.ZeroPad(samples, nfft))

	out := Profile{
		Range:     rangeAxis(labels, nfft),
		Magnitude: make([]float64, nfft),
		Phase:     make([]float64, nfft),
	}
	for i, v := range response {
		out.Magnitude[i] = dsp.Convert(s.Conversion, cmplx.Abs(v))
		out.Phase[i] = cmplx.Phase(v)
	}
	return out
}

// sweep gathers the complex frequency response across the native frequency
// order for the current theta/phi selection. The first matching row per
// frequency wins, mirroring the table's first-seen ordering.
func (p *Processor) sweep() ([]complex128, []string) {
	s := p.eng.Settings()
	data := p.eng.Data()

	byFreq := make(map[string]complex128)
	for _, row := range data.Rows() {
		if !matchesSelection(row.Key.Level, s.IncidentWaveTheta, s.IncidentWavePhi) {
			continue
		}
		if _, seen := byFreq[row.Key.Freq]; seen {
			continue
		}
		byFreq[row.Key.Freq] = row.Values[0]
	}

	var samples []complex128
	var labels []string
	for _, freq := range data.Frequencies() {
		v, present := byFreq[freq]
		if !present {
			continue
		}
		samples = append(samples, v)
		labels = append(labels, freq)
	}
	return samples, labels
}

// matchesSelection reports whether a row's level label satisfies the current
// angle selection. Unset selectors match everything; a set selector requires
// parseable angle metadata on the row.
func matchesSelection(level, theta, phi string) bool {
	if theta == "" && phi == "" {
		return true
	}
	rowTheta, rowPhi, ok := table.ParseAngles(level)
	if !ok {
		return false
	}
	if theta != "" && rowTheta != theta {
		return false
	}
	if phi != "" && rowPhi != phi {
		return false
	}
	return true
}

// rangeAxis builds the down-range axis for nfft bins. With parseable,
// evenly swept frequency labels the bin spacing is c/(2*df*nfft); otherwise
// the axis falls back to bin indices.
func rangeAxis(labels []string, nfft int) []float64 {
	axis := make([]float64, nfft)

	df, ok := frequencyStep(labels)
	if !ok {
		for i := range axis {
			axis[i] = float64(i)
		}
		return axis
	}

	spacing := dsp.SpeedOfLight / (2 * df * float64(nfft))
	for i := range axis {
		axis[i] = float64(i) * spacing
	}
	return axis
}

// frequencyStep derives the mean frequency step in hertz from the sweep
// labels.
func frequencyStep(labels []string) (float64, bool) {
	if len(labels) < 2 {
		return 0, false
	}
	first, ok := table.ParseFrequency(labels[0])
	if !ok {
		return 0, false
	}
	last, ok := table.ParseFrequency(labels[len(labels)-1])
	if !ok {
		return 0, false
	}
	df := (last - first) / float64(len(labels)-1)
	if df <= 0 {
		return 0, false
	}
	return df, true
}
