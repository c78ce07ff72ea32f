package dsp

import "math"

// Conversion selects the presentation mapping applied to magnitudes.
type Conversion string

const (
	Linear Conversion = "linear"
	DB10   Conversion = "dB10"
	DB20   Conversion = "dB20"
)

// Conversions lists the valid conversion functions.
var Conversions = []Conversion{Linear, DB10, DB20}

// magnitudes are floored here before log10 so converted output stays finite
// for plotting consumers.
const magnitudeFloor = 1e-30

// Convert applies the conversion function to a magnitude value. Unknown
// kinds pass through linearly.
func Convert(kind Conversion, magnitude float64) float64 {
	switch kind {
	case DB10:
		return 10 * math.Log10(math.Max(math.Abs(magnitude), magnitudeFloor))
	case DB20:
		return 20 * math.Log10(math.Max(math.Abs(magnitude), magnitudeFloor))
	default:
		return magnitude
	}
}

// ConvertSlice applies the conversion function elementwise.
func ConvertSlice(kind Conversion, values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = Convert(kind, v)
	}
	return out
}
