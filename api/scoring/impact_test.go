/* impact_test.go
 * Contains unit tests for impact.go functions
 * Authors: Zachary Bower
 */

package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestImpact_Formula tests the fixed-weight formula against a hand-computed value
func TestImpact_Formula(t *testing.T) {
	impact := Impact(ImpactStats{
		Kills:        2,
		Assists:      1,
		Revives:      0,
		DBNOs:        1,
		TimeSurvived: 120,
		ADR:          50,
	})

	// 2*5 + 1*2 + 0*1.5 + 50*0.02 + 120/120 - 1*0.7 = 13.3
	assert.InDelta(t, 13.3, impact, 1e-9)
}

// TestImpact_ZeroStats tests the all-zero baseline
func TestImpact_ZeroStats(t *testing.T) {
	assert.Equal(t, 0.0, Impact(ImpactStats{}))
}

// TestImpact_NonFiniteDefaultsToZero tests that absent fields count as zero
func TestImpact_NonFiniteDefaultsToZero(t *testing.T) {
	impact := Impact(ImpactStats{
		Kills:        3,
		Assists:      math.NaN(),
		Revives:      math.Inf(1),
		DBNOs:        math.NaN(),
		TimeSurvived: math.NaN(),
		ADR:          math.NaN(),
	})

	assert.InDelta(t, 15.0, impact, 1e-9)
}

// TestImpact_CanBeNegative tests that the score is not clamped
func TestImpact_CanBeNegative(t *testing.T) {
	impact := Impact(ImpactStats{DBNOs: 5})

	assert.InDelta(t, -3.5, impact, 1e-9)
}
