package keycalc

import (
	"math"
	"strconv"
)

// FormatResult formats a result for a calculator display. Values with
// magnitude in [1e-7, 1e21) are written in plain decimal notation with the
// fewest digits that round-trip; others use an exponent. Infinities and NaN
// are spelled "Infinity", "-Infinity", and "NaN". Negative zero is "0".
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	if a := math.Abs(v); a >= 1e-7 && a < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
