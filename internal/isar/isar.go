// Package isar derives 2-D range/cross-range images from swept-frequency,
// swept-angle datasets.
package isar

import (
	"math/cmplx"

	"github.com/rcsview/rcsview/internal/dsp"
	"github.com/rcsview/rcsview/internal/engine"
	"github.com/rcsview/rcsview/internal/table"
	"github.com/rcsview/rcsview/internal/window"
)

// Image is a converted-magnitude image indexed by (range bin, azimuth bin).
type Image struct {
	Data [][]float64
}

// RangeBins returns the number of range rows.
func (im Image) RangeBins() int {
	return len(im.Data)
}

// AzimuthBins returns the number of cross-range columns.
func (im Image) AzimuthBins() int {
	if len(im.Data) == 0 {
		return 0
	}
	return len(im.Data[0])
}

// Empty reports whether the image carries no pixels.
func (im Image) Empty() bool {
	return im.RangeBins() == 0
}

// Processor computes cross-range images. Like the range-profile processor it
// only reads the engine's table and settings.
type Processor struct {
	eng *engine.Engine
}

// NewProcessor returns a processor bound to eng.
func NewProcessor(eng *engine.Engine) *Processor {
	return &Processor{eng: eng}
}

// CrossRangeImage computes the 2-D range/cross-range image. The angle axis
// follows AspectRange: Horizontal sweeps phi (azimuth cut, theta pinned by
// the current selection), Vertical sweeps theta. Datasets without angle
// metadata fall back to the raw level axis. Fewer than two angle samples
// produce a degenerate single-column image; an empty gather produces an
// empty image. Neither case is an error.
func (p *Processor) CrossRangeImage() Image {
	s := p.eng.Settings()
	freqs := p.eng.Data().Frequencies()
	grid := p.gather()

	if len(grid) == 0 || len(freqs) == 0 {
		return Image{}
	}

	nAngles := len(grid[0])
	if nAngles < 2 {
		return p.singleColumn(grid, s)
	}

	// Upsample the angle axis per frequency, then taper it. Native
	// sampling at or above the requested count is kept as is.
	nAz := nAngles
	if s.UpsampleAzimuth > nAngles {
		nAz = s.UpsampleAzimuth
	}
	azCoeffs := window.Coefficients(s.Window, nAz)
	doppler := make([][]complex128, len(freqs))
	for f := range grid {
		row := dsp.UpsampleSpectral(grid[f], nAz)
		for i := range row {
			row[i] *= complex(azCoeffs[i], 0)
		}
		doppler[f] = dsp.FFT(row)
	}

	// Range transform per azimuth bin, using UpsampleRange as the bin
	// count, mirroring the 1-D range profile.
	nR := s.UpsampleRange
	if len(freqs) > nR {
		nR = len(freqs)
	}
	freqCoeffs := window.Coefficients(s.Window, len(freqs))

	out := Image{Data: make([][]float64, nR)}
	for r := range out.Data {
		out.Data[r] = make([]float64, nAz)
	}

	sweep := make([]complex128, len(freqs))
	for az := 0; az < nAz; az++ {
		for f := range sweep {
			sweep[f] = doppler[f][az] * complex(freqCoeffs[f], 0)
		}
		column := dsp.IFFT(dsp.ZeroPad(sweep, nR))
		for r, v := range column {
			out.Data[r][az] = dsp.Convert(s.Conversion, cmplx.Abs(v))
		}
	}
	return out
}

// gather builds the frequency-by-angle response grid in native order.
// Missing (frequency, angle) cells are zero.
func (p *Processor) gather() [][]complex128 {
	s := p.eng.Settings()
	data := p.eng.Data()
	freqs := data.Frequencies()

	angles := p.angleAxis()
	if len(angles) == 0 {
		return nil
	}

	angleIdx := make(map[string]int, len(angles))
	for i, a := range angles {
		angleIdx[a] = i
	}
	freqIdx := make(map[string]int, len(freqs))
	for i, f := range freqs {
		freqIdx[f] = i
	}

	grid := make([][]complex128, len(freqs))
	for i := range grid {
		grid[i] = make([]complex128, len(angles))
	}
	filled := make(map[[2]int]bool)

	for _, row := range data.Rows() {
		angle, ok := p.rowAngle(row.Key.Level, s)
		if !ok {
			continue
		}
		ai, ok := angleIdx[angle]
		if !ok {
			continue
		}
		fi := freqIdx[row.Key.Freq]
		cell := [2]int{fi, ai}
		if filled[cell] {
			continue
		}
		filled[cell] = true
		grid[fi][ai] = row.Values[0]
	}
	return grid
}

// angleAxis returns the swept angle values in first-seen order for the
// configured aspect.
func (p *Processor) angleAxis() []string {
	s := p.eng.Settings()
	data := p.eng.Data()

	if data.ThetaValues() == nil {
		// No angle metadata: the raw level axis is the best ordering
		// available.
		return data.Levels()
	}
	if s.AspectRange == engine.AspectVertical {
		return data.ThetaValues()
	}
	return data.PhiValues()
}

// rowAngle extracts a row's position on the angle axis, honoring the
// selector that pins the other angle.
func (p *Processor) rowAngle(level string, s engine.Settings) (string, bool) {
	theta, phi, ok := table.ParseAngles(level)
	if !ok {
		// Raw level axis: the label itself is the position.
		if p.eng.Data().ThetaValues() == nil {
			return level, true
		}
		return "", false
	}

	if s.AspectRange == engine.AspectVertical {
		if s.IncidentWavePhi != "" && phi != s.IncidentWavePhi {
			return "", false
		}
		return theta, true
	}
	if s.IncidentWaveTheta != "" && theta != s.IncidentWaveTheta {
		return "", false
	}
	return phi, true
}

// singleColumn is the degenerate image for an angle axis with fewer than
// two samples: one range profile over the lone angle cut.
func (p *Processor) singleColumn(grid [][]complex128, s engine.Settings) Image {
	sweep := make([]complex128, len(grid))
	for f := range grid {
		sweep[f] = grid[f][0]
	}

	coeffs := window.Coefficients(s.Window, len(sweep))
	for i := range sweep {
		sweep[i] *= complex(coeffs[i], 0)
	}

	nR := s.UpsampleRange
	if len(sweep) > nR {
		nR = len(sweep)
	}
	column := dsp.IFFT(dsp.ZeroPad(sweep, nR))

	out := Image{Data: make([][]float64, nR)}
	for r, v := range column {
		out.Data[r] = []float64{dsp.Convert(s.Conversion, cmplx.Abs(v))}
	}
	return out
}
