/* resolver.go
 * Contains the placement points resolver. Built once per tournament from the ordered placement
 * rules in tournament.json; rule order is priority, the first rule whose ranges contain the
 * placement wins. There is no merging or best-match scoring
 * Authors: Zachary Bower
 */

package scoring

import (
	"tourboard/api/parse"
	"tourboard/api/shared"
)

type compiledRule struct {
	ranges []parse.Range
	points float64
}

// Resolver maps a finish placement to its awarded points
type Resolver struct {
	rules []compiledRule
}

// NewResolver compiles an ordered list of placement rules.
// Rules whose points value does not parse as a finite number are discarded
// entirely at build time and can never match.
func NewResolver(rules []shared.PlacementRule) *Resolver {
	r := &Resolver{}
	for _, rule := range rules {
		points := parse.ToNumber(rule.Points)
		if !parse.IsFinite(points) {
			continue
		}
		r.rules = append(r.rules, compiledRule{
			ranges: parse.ParseRanges(rule.Place),
			points: points,
		})
	}
	return r
}

// Resolve returns the points awarded for a placement, or 0 when the placement
// is non-finite or no rule matches
func (r *Resolver) Resolve(placement float64) float64 {
	if !parse.IsFinite(placement) {
		return 0
	}
	for _, rule := range r.rules {
		for _, rng := range rule.ranges {
			if rng.Contains(placement) {
				return rule.points
			}
		}
	}
	return 0
}

// ResolveValue normalizes a raw placement value before resolving it
func (r *Resolver) ResolveValue(placement any) float64 {
	return r.Resolve(parse.ToNumber(placement))
}
