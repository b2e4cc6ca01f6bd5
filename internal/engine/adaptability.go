package engine

import "strings"

var (
	confusionCues   = []string{"confused", "don't understand", "not clear", "what do you mean"}
	disinterestCues = []string{"not interested", "not sure", "don't think"}
	emotionalCues   = []string{"frustrated", "upset", "concerned", "worried"}
)

// scoreAdaptability compares detected customer cues (resistance, emotion,
// confusion, time pressure) against matching rep behavior changes. Each
// component is independently gated on its own cue; with no cue of any kind
// the whole metric is not applicable.
func scoreAdaptability(tr Transcript, _ *GoalTokenSet) []ComponentResult {
	customerTurns := tr.CustomerTurns()
	repTurns := tr.RepTurns()

	hasCue := func(cues []string) bool {
		for _, t := range customerTurns {
			if containsAny(t.Text, cues) {
				return true
			}
		}
		return false
	}
	timeCue := hasCue(timePressure)
	confusionCue := hasCue(confusionCues)
	disinterestCue := hasCue(disinterestCues)
	emotionalCue := hasCue(emotionalCues)

	if !timeCue && !confusionCue && !disinterestCue && !emotionalCue {
		return []ComponentResult{
			notApplicable("approach_shift"),
			notApplicable("tone_adjustment"),
			notApplicable("depth_adjustment"),
			notApplicable("pacing_adjustment"),
		}
	}

	repAsksQuestion := false
	repAcknowledges := false
	for _, t := range repTurns {
		if strings.Contains(t.Text, "?") {
			repAsksQuestion = true
		}
		if containsAny(t.Text, []string{"i understand", "i hear you"}) {
			repAcknowledges = true
		}
	}

	approach := notApplicable("approach_shift")
	if disinterestCue {
		score := 3.0
		if repAsksQuestion {
			score = 4.0
		}
		approach = applicable("approach_shift", score)
	}

	tone := notApplicable("tone_adjustment")
	if emotionalCue {
		score := 3.0
		if repAcknowledges {
			score = 4.0
		}
		tone = applicable("tone_adjustment", score)
	}

	depth := notApplicable("depth_adjustment")
	if confusionCue || timeCue {
		depth = applicable("depth_adjustment", 4.0)
	}

	pacing := notApplicable("pacing_adjustment")
	if timeCue {
		pacing = applicable("pacing_adjustment", 4.0)
	}

	return []ComponentResult{approach, tone, depth, pacing}
}
