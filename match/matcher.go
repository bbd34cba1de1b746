// Package match finds the reference domain closest to a candidate domain.
package match

import (
	"math"

	"github.com/optimode/typocheck/domains"
	"github.com/optimode/typocheck/internal/levenshtein"
	"github.com/optimode/typocheck/types"
)

// DefaultThreshold is the largest edit distance at which a suggestion is made.
const DefaultThreshold = 2

// NoCandidate is the distance reported when the reference set is empty.
const NoCandidate = math.MaxInt

// Matcher classifies domains against an immutable reference set.
// It only reads its set, so one Matcher can be shared between goroutines.
type Matcher struct {
	set *domains.Set
}

// New creates a Matcher over set. A nil set selects domains.Default().
func New(set *domains.Set) *Matcher {
	if set == nil {
		set = domains.Default()
	}
	return &Matcher{set: set}
}

// Domains returns the reference set the Matcher was built with.
func (m *Matcher) Domains() *domains.Set {
	return m.set
}

// Classify matches candidate against the reference set.
//
// An exact, case-sensitive hit wins regardless of threshold. Otherwise every
// reference domain is scanned and the first one at the minimum distance is
// kept; it is suggested only if that distance is <= threshold.
func (m *Matcher) Classify(candidate string, threshold int) types.MatchResult {
	if m.set.Contains(candidate) {
		return types.MatchResult{IsExactMatch: true, InputDomain: candidate}
	}

	var (
		best     string
		bestDist = NoCandidate
		found    bool
	)
	for ref := range m.set.All() {
		// strict < keeps the earliest entry on ties
		if d := levenshtein.Distance(candidate, ref); d < bestDist {
			best, bestDist, found = ref, d, true
		}
	}

	res := types.MatchResult{InputDomain: candidate, Distance: bestDist}
	if found && bestDist <= threshold {
		res.SuggestedDomain = best
	}
	return res
}
