/* numeric.go
 * Contains the numeric normalizer used before any arithmetic on values coming out of the data files.
 * The upstream export writes numbers inconsistently: sometimes JSON numbers, sometimes strings with
 * a decimal comma and space thousands separators ("1 234,5")
 * Authors: Zachary Bower
 */

package parse

import (
	"math"
	"strconv"
	"strings"
)

// ToNumber normalizes a loosely typed scalar into a float64.
// Numbers pass through as-is. Strings are trimmed, space/NBSP thousands
// separators removed and a decimal comma swapped for a dot before parsing.
// Anything that does not yield a finite number returns NaN, never an error;
// callers treat NaN as "absent", not zero, unless stated otherwise.
func ToNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return math.NaN()
		}
		// "1 234,5" -> "1234.5". The export uses plain and non-breaking
		// spaces as thousands separators depending on which tool produced it
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "\u00a0", "")
		s = strings.ReplaceAll(s, "\u202f", "")
		s = strings.ReplaceAll(s, ",", ".")
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(n, 0) {
			return math.NaN()
		}
		return n
	default:
		return math.NaN()
	}
}

// IsFinite reports whether a value produced by ToNumber is usable for arithmetic
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
