// Package window produces the tapering coefficient vectors applied before
// the spectral transforms.
package window

import "math"

// Kind selects a window function.
type Kind string

const (
	Flat    Kind = "Flat"
	Hamming Kind = "Hamming"
	Hann    Kind = "Hann"
)

// Kinds lists the valid window kinds.
var Kinds = []Kind{Flat, Hamming, Hann}

// Valid reports whether k names a known window kind.
func Valid(k Kind) bool {
	for _, v := range Kinds {
		if v == k {
			return true
		}
	}
	return false
}

// Coefficients returns n window coefficients in [0,1]. Flat is all ones so
// unmodified energy is preserved unless tapering is asked for; unknown kinds
// fall back to Flat. Non-positive lengths return an empty vector.
func Coefficients(kind Kind, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}

	switch kind {
	case Hamming:
		for i := range out {
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		}
	case Hann:
		for i := range out {
			out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		}
	default:
		for i := range out {
			out[i] = 1
		}
	}
	return out
}
