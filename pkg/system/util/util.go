package util

import (
	"math"
	"strconv"
	"strings"
)

// NonNegative coerces NaN, infinities and negative values to zero.
func NonNegative(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	return x
}

// CoerceCount turns user-typed text into a resource count. Anything that
// is not a non-negative finite number becomes 0; fractions are truncated.
func CoerceCount(s string) uint64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	f = NonNegative(f)
	if f >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(f)
}

// FmtFloat formats with the shortest exact representation.
func FmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
