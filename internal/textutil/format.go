package textutil

import (
	"math"
	"strconv"
	"strings"
)

// Round rounds x to places decimal digits. The result is the float closest
// to the correctly rounded decimal, ties going to even on the exact binary
// value.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// FormatFloat prints f the shortest way that reads back to the same value,
// always keeping a fractional part: 1 prints as "1.0", 0.25 as "0.25".
// Very small and very large magnitudes switch to exponent form.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
