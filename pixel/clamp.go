package pixel

import "math"

// Clamp rounds v to the nearest integer (half away from zero) and limits it
// to the 8-bit range.
func Clamp(v float64) uint8 {
	v = math.Round(v)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
