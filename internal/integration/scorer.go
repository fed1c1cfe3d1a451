// Package integration turns a reputation tag set into the final acceptance
// verdict: three scored axes, an accept/reject decision, and the line of
// flavor text the group delivers with it.
package integration

import (
	"slices"

	"SwipeState/internal/reputation"
)

// Result is the scorer's output. It is recomputed on demand and never
// stored; the same tag set always produces the same Result.
type Result struct {
	Legibility          int
	Friction            int
	ReframingAcceptance int
	Accepted            bool
	ResultText          string
}

// Acceptance thresholds. The verdict needs two of the three criteria, no
// extreme negative on any axis, and at least one positive signal.
const (
	criteriaRequired = 2

	extremeLegibility = -3
	extremeFriction   = 4
	extremeReframing  = -3
)

// Calculate scores a tag set. Each tag contributes to the axes
// independently; axes are additive and deliberately unclamped.
func Calculate(tags []string) Result {
	has := func(tag string) bool { return slices.Contains(tags, tag) }

	var r Result

	if has(reputation.TagStayedTooLong) {
		r.Legibility += 2
		r.Friction--
		r.ReframingAcceptance += 2
	}
	if has(reputation.TagEngagedInSpreadsheet) {
		r.Legibility++
		r.Friction--
		r.ReframingAcceptance++
	}
	if has(reputation.TagHumorDeflect) {
		r.Legibility -= 2
	}
	if has(reputation.TagChaosAgent) {
		r.Legibility -= 2
		r.Friction++
	}
	if has(reputation.TagBoundarySetter) {
		r.Friction += 2
		r.ReframingAcceptance--
	}
	if has(reputation.TagLeftEarly) {
		r.Friction++
		r.ReframingAcceptance -= 2
	}
	if has(reputation.TagHighSpend) {
		r.Friction--
	}

	criteriaMet := 0
	if r.Legibility >= 0 {
		criteriaMet++
	}
	if r.Friction <= 1 {
		criteriaMet++
	}
	if r.ReframingAcceptance >= 1 {
		criteriaMet++
	}

	extremeNegative := r.Legibility <= extremeLegibility ||
		r.Friction >= extremeFriction ||
		r.ReframingAcceptance <= extremeReframing
	anyPositive := r.Legibility > 0 || r.Friction < 0 || r.ReframingAcceptance > 0

	r.Accepted = criteriaMet >= criteriaRequired && !extremeNegative && anyPositive
	r.ResultText = resultText(r)
	return r
}

// resultText picks the flavor line by a fixed priority over the axes. The
// order is a content decision carried over verbatim; changing it changes
// which line players see, not the verdict.
func resultText(r Result) string {
	if r.Accepted {
		switch {
		case r.Legibility >= 2:
			return "You're very readable. We like that. You fit our patterns."
		case r.Friction <= -1:
			return "You don't cause problems. That's valuable here."
		case r.ReframingAcceptance >= 2:
			return "You let us tell the story. That's all we ask."
		default:
			return "You meet our criteria. Welcome to the group."
		}
	}
	switch {
	case r.Legibility <= -2:
		return "You're too unpredictable. We can't categorize you."
	case r.Friction >= 3:
		return "You create too much friction. You're not worth the effort."
	case r.ReframingAcceptance <= -2:
		return "You won't let us tell your story. That's a dealbreaker."
	default:
		return "You don't fit our criteria. It's not personal. It's systemic."
	}
}
