package viz

import (
	"fmt"
	"math"
)

// Normalize maps values linearly onto [0, 1]. A constant input maps to all
// zeros. The input is not modified.
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		return out
	}
	scale := 1 / (hi - lo)
	for i, v := range values {
		out[i] = scale * (v - lo)
	}
	return out
}

// ColormapBR converts v in [0, 1] to a blue-red color: blue at 0, red at 1.
func ColormapBR(v float64) (r, g, b uint8) {
	v = math.Max(0, math.Min(1, v))
	r = uint8(math.Floor(math.Sqrt(v) * 255))
	g = uint8(math.Floor(0.5 * (1 - v) * 255))
	b = uint8(math.Floor(math.Sqrt(1-v) * 255))
	return r, g, b
}

// Hex returns ColormapBR(v) as #rrggbb.
func Hex(v float64) string {
	r, g, b := ColormapBR(v)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGB returns ColormapBR(v) as rgb(r,g,b).
func RGB(v float64) string {
	r, g, b := ColormapBR(v)
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}
