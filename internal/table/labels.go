package table

import (
	"strconv"
	"strings"
)

// ParseAngles extracts the incident-wave angles from a level label of the
// form "IWaveTheta='30deg' IWavePhi='0deg'". Labels without both angle
// assignments carry no angle metadata and return ok=false.
func ParseAngles(level string) (theta, phi string, ok bool) {
	theta, okTheta := labelValue(level, "IWaveTheta")
	phi, okPhi := labelValue(level, "IWavePhi")
	return theta, phi, okTheta && okPhi
}

// FormatAngles builds a level label carrying incident-wave angles.
func FormatAngles(theta, phi string) string {
	return "IWaveTheta='" + theta + "' IWavePhi='" + phi + "'"
}

// labelValue finds a name='value' assignment inside a label.
func labelValue(label, name string) (string, bool) {
	marker := name + "='"
	start := strings.Index(label, marker)
	if start < 0 {
		return "", false
	}
	rest := label[start+len(marker):]
	end := strings.Index(rest, "'")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

var frequencyUnits = []struct {
	suffix string
	scale  float64
}{
	{"THz", 1e12},
	{"GHz", 1e9},
	{"MHz", 1e6},
	{"kHz", 1e3},
	{"KHz", 1e3},
	{"Hz", 1},
}

// ParseFrequency converts a frequency label such as "9.5GHz" or "100Hz" to
// hertz. Labels are display strings first; unparseable labels return ok=false
// and callers fall back to bin indices.
func ParseFrequency(label string) (hz float64, ok bool) {
	s := strings.TrimSpace(label)
	for _, unit := range frequencyUnits {
		if !strings.HasSuffix(s, unit.suffix) {
			continue
		}
		num := strings.TrimSpace(strings.TrimSuffix(s, unit.suffix))
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, false
		}
		return v * unit.scale, true
	}
	// Bare numbers are taken as hertz.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
