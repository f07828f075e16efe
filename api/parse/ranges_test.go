/* ranges_test.go
 * Contains unit tests for ranges.go functions
 * Authors: Zachary Bower
 */

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseRanges_Number tests a single numeric spec
func TestParseRanges_Number(t *testing.T) {
	assert.Equal(t, []Range{{Min: 7, Max: 7}}, ParseRanges(7.0))
	assert.Equal(t, []Range{{Min: 7, Max: 7}}, ParseRanges(7))
}

// TestParseRanges_CommaList tests a comma list with a range token
func TestParseRanges_CommaList(t *testing.T) {
	ranges := ParseRanges("1-3,5")

	assert.Equal(t, []Range{{Min: 1, Max: 3}, {Min: 5, Max: 5}}, ranges)
}

// TestParseRanges_NestedList tests a mixed nested list spec
func TestParseRanges_NestedList(t *testing.T) {
	ranges := ParseRanges([]any{1.0, "2-2"})

	assert.Equal(t, []Range{{Min: 1, Max: 1}, {Min: 2, Max: 2}}, ranges)
}

// TestParseRanges_DeeplyNested tests that nesting flattens recursively
func TestParseRanges_DeeplyNested(t *testing.T) {
	ranges := ParseRanges([]any{[]any{"1-2"}, []any{[]any{5.0}}})

	assert.Equal(t, []Range{{Min: 1, Max: 2}, {Min: 5, Max: 5}}, ranges)
}

// TestParseRanges_DashVariants tests hyphen, en-dash and em-dash separators
func TestParseRanges_DashVariants(t *testing.T) {
	assert.Equal(t, []Range{{Min: 4, Max: 6}}, ParseRanges("4-6"))
	assert.Equal(t, []Range{{Min: 4, Max: 6}}, ParseRanges("4–6"))
	assert.Equal(t, []Range{{Min: 4, Max: 6}}, ParseRanges("4 — 6"))
}

// TestParseRanges_ReversedRange tests that a descending range is normalized
func TestParseRanges_ReversedRange(t *testing.T) {
	assert.Equal(t, []Range{{Min: 3, Max: 9}}, ParseRanges("9-3"))
}

// TestParseRanges_Garbage tests that an unparseable spec yields no ranges
func TestParseRanges_Garbage(t *testing.T) {
	assert.Empty(t, ParseRanges("abc"))
	assert.Empty(t, ParseRanges(nil))
	assert.Empty(t, ParseRanges(true))
}

// TestParseRanges_MalformedTokensDropped tests that bad tokens are skipped without
// failing the rest of the list
func TestParseRanges_MalformedTokensDropped(t *testing.T) {
	ranges := ParseRanges("1-3, oops, 5")

	assert.Equal(t, []Range{{Min: 1, Max: 3}, {Min: 5, Max: 5}}, ranges)
}

// TestParseRanges_NumericFallbackToken tests the ToNumber fallback for tokens the
// range pattern rejects, e.g. a decimal placement
func TestParseRanges_NumericFallbackToken(t *testing.T) {
	assert.Equal(t, []Range{{Min: 4, Max: 4}}, ParseRanges("4.5"))
}

// TestRange_Contains tests the inclusive interval check
func TestRange_Contains(t *testing.T) {
	r := Range{Min: 2, Max: 4}

	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(1))
	assert.False(t, r.Contains(5))
}
