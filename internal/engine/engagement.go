package engine

import "strings"

var (
	forwardLookingCues = []string{
		"next", "follow up", "send", "schedule", "i will", "let's",
		"when can we", "trial", "pilot", "talk again",
	}
	disengagementCues = []string{
		"okay", "sure", "fine", "whatever", "i have to go",
		"another meeting", "short on time",
	}
)

// scoreCustomerEngagement reads engagement from the customer's side of the
// conversation: talk-time balance, customer-initiated questions,
// forward-looking language and energy over the course of the session.
func scoreCustomerEngagement(tr Transcript, _ *GoalTokenSet) []ComponentResult {
	customerTurns := tr.CustomerTurns()
	if len(customerTurns) == 0 {
		return []ComponentResult{
			notApplicable("customer_talk_time"),
			notApplicable("customer_question_quality"),
			notApplicable("forward_looking_cues"),
			notApplicable("energy_shifts"),
		}
	}

	// Talk-time balance by turn share; the input contract carries no
	// timestamps. 45-65% customer share is the ideal band.
	share := float64(len(customerTurns)) / float64(len(tr))
	var talkScore float64
	switch {
	case share >= 0.45 && share <= 0.65:
		talkScore = 5
	case (share >= 0.35 && share < 0.45) || (share > 0.65 && share <= 0.75):
		talkScore = 4
	case (share >= 0.25 && share < 0.35) || (share > 0.75 && share <= 0.85):
		talkScore = 3
	case (share >= 0.15 && share < 0.25) || (share > 0.85 && share <= 0.92):
		talkScore = 2
	default:
		talkScore = 1
	}

	questions := 0
	for _, t := range customerTurns {
		if strings.Contains(t.Text, "?") {
			questions++
		}
	}
	var questionScore float64
	switch {
	case questions >= 3:
		questionScore = 5
	case questions == 2:
		questionScore = 4
	case questions == 1:
		questionScore = 3
	default:
		questionScore = 2
	}

	forwardCues := 0
	for _, t := range customerTurns {
		if containsAny(t.Text, forwardLookingCues) {
			forwardCues++
		}
	}
	var forwardScore float64
	switch {
	case forwardCues >= 2:
		forwardScore = 5
	case forwardCues == 1:
		forwardScore = 4
	default:
		forwardScore = 3
	}

	// Energy: disengagement phrases, or customer responses shrinking to less
	// than half their opening length across the conversation.
	disengaged := 0
	for _, t := range customerTurns {
		if containsAny(t.Text, disengagementCues) {
			disengaged++
		}
	}
	third := (len(customerTurns) + 2) / 3
	avgFirst := averageLength(customerTurns[:third])
	avgLast := averageLength(customerTurns[len(customerTurns)-third:])
	shrinking := avgLast < avgFirst*0.5
	var energyScore float64
	switch {
	case disengaged > 2 || shrinking:
		energyScore = 2
	case disengaged > 0:
		energyScore = 3
	default:
		energyScore = 4
	}

	return []ComponentResult{
		applicable("customer_talk_time", talkScore),
		applicable("customer_question_quality", questionScore),
		applicable("forward_looking_cues", forwardScore),
		applicable("energy_shifts", energyScore),
	}
}

func averageLength(turns []Turn) float64 {
	if len(turns) == 0 {
		return 0
	}
	sum := 0
	for _, t := range turns {
		sum += len(t.Text)
	}
	return float64(sum) / float64(len(turns))
}
