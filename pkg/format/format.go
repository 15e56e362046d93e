// Package format renders calculation results for display.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Precision used by the two display paths. They differ on purpose: the
// expression path shows 8 decimal places and the keypad shows 10.
const (
	ExpressionPrecision = 8
	KeypadPrecision     = 10
)

// Result renders v for display.
//
// Whole numbers are rendered without a decimal point. Other values are
// rendered with precision decimal places, then trailing zeros and a dangling
// decimal point are removed. A negative precision falls back to
// ExpressionPrecision. Negative zero renders as "0".
func Result(v float64, precision int) string {
	if precision < 0 {
		precision = ExpressionPrecision
	}

	var s string
	if IsWhole(v) {
		s = formatWhole(v)
	} else {
		s = strconv.FormatFloat(v, 'f', precision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
	}

	if s == "-0" {
		return "0"
	}
	return s
}

// IsWhole reports whether v has no fractional part. Infinities and NaN are
// not whole.
func IsWhole(v float64) bool {
	return math.Mod(v, 1) == 0
}

func formatWhole(v float64) string {
	if v >= math.MinInt64 && v < math.MaxInt64 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}
