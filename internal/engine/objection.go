package engine

import "strings"

var (
	objectionCues = []string{
		"not interested", "not sure", "no budget", "too expensive", "can't",
		"won't", "don't", "concern", "hesitant", "problem", "issue",
	}
	rebuttalMarkers = []string{"but", "however", "actually"}
	steadyingCues   = []string{"fair point", "that makes sense", "i hear you"}
)

// scoreObjectionNavigation is only applicable when a customer turn carries an
// objection cue; with none anywhere in the transcript every component, and
// therefore the metric, is not applicable.
func scoreObjectionNavigation(tr Transcript, _ *GoalTokenSet) []ComponentResult {
	var objections []int
	for i, t := range tr {
		if t.Speaker == SpeakerCustomer && containsAny(t.Text, objectionCues) {
			objections = append(objections, i)
		}
	}
	if len(objections) == 0 {
		return []ComponentResult{
			notApplicable("acknowledge_before_response"),
			notApplicable("explore_underlying_concern"),
			notApplicable("calm_demeanor"),
		}
	}
	total := float64(len(objections))

	acknowledged, explored, calm := 0, 0, 0
	for _, i := range objections {
		if i+1 < len(tr) && tr[i+1].Speaker == SpeakerRep {
			lower := strings.ToLower(tr[i+1].Text)

			// Acknowledgment counts only when it lands before any rebuttal
			// marker in the same turn.
			ackIdx := indexOfAny(lower, acknowledgmentCues)
			rebuttalIdx := indexOfAny(lower, rebuttalMarkers)
			if ackIdx >= 0 && (rebuttalIdx < 0 || ackIdx < rebuttalIdx) {
				acknowledged++
			}

			hasImmediateRebuttal := startsWithAny(lower, rebuttalMarkers) ||
				containsAnyWord(lower, rebuttalMarkers)
			if !hasImmediateRebuttal && containsAny(lower, steadyingCues) {
				calm++
			}
		}

		// Clarifying question within the next two turns.
		for j := i + 1; j <= i+2 && j < len(tr); j++ {
			if tr[j].Speaker == SpeakerRep && strings.Contains(tr[j].Text, "?") {
				explored++
				break
			}
		}
	}

	return []ComponentResult{
		applicable("acknowledge_before_response",
			bandHigh(float64(acknowledged)/total, 0.80, 0.60, 0.40, 0.20)),
		applicable("explore_underlying_concern",
			bandHigh(float64(explored)/total, 0.70, 0.55, 0.40, 0.25)),
		applicable("calm_demeanor",
			bandHigh(float64(calm)/total, 0.80, 0.50, 0.30, 0.10)),
	}
}

// containsAnyWord matches any of the words surrounded by spaces, so "but"
// does not fire inside "budget".
func containsAnyWord(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, " "+w+" ") {
			return true
		}
	}
	return false
}
