package tools

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders f the way JavaScript's String(number) does: the
// shortest digits that round-trip, plain notation for magnitudes in
// [1e-6, 1e21) and exponent notation outside it.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// Covers -0 as well.
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)

	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")

	return mantissa + "e" + sign + digits
}
