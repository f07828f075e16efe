/* impact.go
 * Contains the impact score: a single scalar summarizing a player's match contribution.
 * The weights are a design constant agreed with the tournament admins, not user-configurable
 * Authors: Zachary Bower
 */

package scoring

import "tourboard/api/parse"

// Impact score weights. Offensive output, support actions and survivability
// add; getting knocked down subtracts. The result is not clamped and can be
// negative for a player who was mostly a liability.
const (
	killWeight     = 5.0
	assistWeight   = 2.0
	reviveWeight   = 1.5
	adrWeight      = 0.02
	surviveDivisor = 120.0
	dbnoPenalty    = 0.7
)

// ImpactStats holds the per-match raw stats the impact formula consumes
type ImpactStats struct {
	Kills        float64
	Assists      float64
	Revives      float64
	DBNOs        float64
	TimeSurvived float64
	ADR          float64
}

// Impact computes the impact score from a set of raw stats. Absent or
// non-finite fields count as zero.
func Impact(s ImpactStats) float64 {
	kills := finiteOrZero(s.Kills)
	assists := finiteOrZero(s.Assists)
	revives := finiteOrZero(s.Revives)
	dbnos := finiteOrZero(s.DBNOs)
	timeSurvived := finiteOrZero(s.TimeSurvived)
	adr := finiteOrZero(s.ADR)

	return kills*killWeight +
		assists*assistWeight +
		revives*reviveWeight +
		adr*adrWeight +
		timeSurvived/surviveDivisor -
		dbnos*dbnoPenalty
}

func finiteOrZero(n float64) float64 {
	if !parse.IsFinite(n) {
		return 0
	}
	return n
}
