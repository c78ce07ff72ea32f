// Package dsp provides the spectral transforms behind the imaging products
package dsp

import (
	"math"
	"math/cmplx"
)

// SpeedOfLight in m/s, used to scale range axes.
const SpeedOfLight = 299792458.0

// FFT returns the discrete Fourier transform of x. Power-of-two lengths take
// the radix-2 fast path; other lengths fall back to a direct transform so
// callers can request arbitrary bin counts.
func FFT(x []complex128) []complex128 {
	out := make([]complex128, len(x))
	copy(out, x)
	if isPowerOfTwo(len(out)) {
		fftRadix2(out, false)
		return out
	}
	return dft(x, false)
}

// IFFT returns the inverse discrete Fourier transform of x, scaled by 1/N.
func IFFT(x []complex128) []complex128 {
	n := len(x)
	if n == 0 {
		return nil
	}
	var out []complex128
	if isPowerOfTwo(n) {
		out = make([]complex128, n)
		copy(out, x)
		fftRadix2(out, true)
	} else {
		out = dft(x, true)
	}
	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// fftRadix2 performs an in-place radix-2 Cooley-Tukey transform.
func fftRadix2(data []complex128, inverse bool) {
	n := len(data)

	// Bit-reversal permutation.
	j := 0
	for i := 0; i < n-1; i++ {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
		k := n / 2
		for k <= j {
			j -= k
			k /= 2
		}
		j += k
	}

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for size := 2; size <= n; size *= 2 {
		halfSize := size / 2
		step := sign * 2 * math.Pi / float64(size)

		for i := 0; i < n; i += size {
			for j := 0; j < halfSize; j++ {
				w := cmplx.Exp(complex(0, step*float64(j)))
				t := w * data[i+j+halfSize]
				u := data[i+j]
				data[i+j] = u + t
				data[i+j+halfSize] = u - t
			}
		}
	}
}

// dft is the direct O(n^2) transform used for non-power-of-two lengths.
func dft(x []complex128, inverse bool) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for k := 0; k < n; k++ {
		var sum complex128
		for t := 0; t < n; t++ {
			angle := sign * 2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += x[t] * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

// ZeroPad returns x extended with zeros to length n. When x is already at
// least n long a copy of x is returned unchanged (no truncation).
func ZeroPad(x []complex128, n int) []complex128 {
	if n < len(x) {
		n = len(x)
	}
	out := make([]complex128, n)
	copy(out, x)
	return out
}

// UpsampleSpectral interpolates x to n samples by zero-padding its spectrum,
// the coherent choice for complex radar samples. When n does not exceed the
// native length a copy of x is returned: decimation is out of scope.
func UpsampleSpectral(x []complex128, n int) []complex128 {
	m := len(x)
	if n <= m || m == 0 {
		out := make([]complex128, m)
		copy(out, x)
		return out
	}

	spec := FFT(x)
	padded := make([]complex128, n)

	h := (m + 1) / 2 // non-negative frequency bins
	copy(padded, spec[:h])
	copy(padded[n-(m-h):], spec[h:])
	if m%2 == 0 {
		// Split the Nyquist bin across both halves to keep the
		// interpolant real for real inputs.
		ny := spec[m/2]
		padded[m/2] = ny / 2
		padded[n-m/2] = ny / 2
	}

	out := IFFT(padded)
	scale := complex(float64(n)/float64(m), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}
