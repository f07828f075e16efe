/* ranges.go
 * Contains the placement spec parser. A placement spec in tournament.json can be a single number,
 * a range string ("1-3"), a comma list ("1-3, 5"), or a nested list of any of those; everything is
 * normalized to a flat set of inclusive integer ranges. Malformed tokens are dropped, never fatal
 * Authors: Zachary Bower
 */

package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-andiamo/splitter"
)

// Range is an inclusive placement interval
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether a placement value falls inside the range (inclusive both ends)
func (r Range) Contains(placement float64) bool {
	return placement >= float64(r.Min) && placement <= float64(r.Max)
}

// rangePattern matches "3" or "1-3", accepting hyphen, en-dash and em-dash separators
var rangePattern = regexp.MustCompile(`^(\d+)(\s*[-–—]\s*(\d+))?$`)

// commaSplitter tokenizes comma lists. No enclosures are registered so Split cannot fail
var commaSplitter, _ = splitter.NewSplitter(',')

// ParseRanges normalizes a placement spec into a flat slice of inclusive ranges.
// Preconditions: Receives the raw place value from a PlacementRule (any type)
// Postconditions: Returns the parsed ranges; unknown types and unparseable tokens yield no ranges
func ParseRanges(spec any) []Range {
	switch v := spec.(type) {
	case float64, float32, int, int32, int64:
		n := ToNumber(v)
		return []Range{{Min: int(n), Max: int(n)}}
	case string:
		return parseRangeString(v)
	case []any:
		// Nested lists flatten recursively, depth-unbounded
		var ranges []Range
		for _, item := range v {
			ranges = append(ranges, ParseRanges(item)...)
		}
		return ranges
	default:
		return nil
	}
}

// parseRangeString splits a comma list and parses each token as "n" or "a-b".
// Tokens that match neither fall back to ToNumber and are kept as single-point
// ranges when finite, otherwise dropped silently
func parseRangeString(s string) []Range {
	tokens, _ := commaSplitter.Split(s)
	var ranges []Range
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if m := rangePattern.FindStringSubmatch(token); m != nil {
			start, _ := strconv.Atoi(m[1])
			end := start
			if m[3] != "" {
				end, _ = strconv.Atoi(m[3])
			}
			if start > end {
				start, end = end, start
			}
			ranges = append(ranges, Range{Min: start, Max: end})
			continue
		}
		if n := ToNumber(token); IsFinite(n) {
			ranges = append(ranges, Range{Min: int(n), Max: int(n)})
		}
	}
	return ranges
}
