// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and scales it by 32767, rounding half
// away from zero. 1.0 maps to 32767 and -1.0 to -32767; -32768 is never
// produced.
func Float32ToInt16(x float32) int16 {
	v := float64(x)

	switch {
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	case v != v: // NaN
		return 0
	}

	return int16(math.Round(v * math.MaxInt16))
}

// Quantize16 converts src into dst with Float32ToInt16 and returns dst.
// dst is grown when shorter than src.
func Quantize16(dst []int16, src []float32) []int16 {
	if cap(dst) < len(src) {
		dst = make([]int16, len(src))
	}
	dst = dst[:len(src)]

	for i, x := range src {
		dst[i] = Float32ToInt16(x)
	}

	return dst
}
