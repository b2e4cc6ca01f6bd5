package engine

import "regexp"

var (
	nextStepCues = []string{
		"schedule", "follow up", "send", "connect", "align",
		"next step", "set up", "confirm",
	}
	agreementCues = []string{"yes", "sounds good", "that works", "okay let's"}
	ownershipCues = []string{"i'll send", "you'll review", "we will", "i will", "you will"}

	datePattern   = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|tomorrow|next week|\d{1,2}/\d{1,2})\b`)
	actionPattern = regexp.MustCompile(`(?i)\b(send|email|call|meet|review|discuss)\b`)
)

// scoreCommitmentGaining evaluates the close: whether the rep proposed a
// concrete next step, whether the customer affirmed it, and whether roles
// were assigned explicitly.
func scoreCommitmentGaining(tr Transcript, _ *GoalTokenSet) []ComponentResult {
	var nextStepTurns []Turn
	specific := 0
	ownership := 0
	for _, t := range tr.RepTurns() {
		if containsAny(t.Text, nextStepCues) {
			nextStepTurns = append(nextStepTurns, t)
			if datePattern.MatchString(t.Text) || actionPattern.MatchString(t.Text) {
				specific++
			}
		}
		if containsAny(t.Text, ownershipCues) {
			ownership++
		}
	}

	var specificityScore float64 = 1
	if specific > 0 {
		specificityScore = 5
	} else if len(nextStepTurns) > 0 {
		specificityScore = 3
	}

	// Mutual agreement: customer affirms within two turns of a proposed next
	// step.
	agreements := 0
	for _, nst := range nextStepTurns {
		for j := nst.Index + 1; j <= nst.Index+2 && j < len(tr); j++ {
			if tr[j].Speaker == SpeakerCustomer && containsAny(tr[j].Text, agreementCues) {
				agreements++
				break
			}
		}
	}
	var agreementScore float64 = 1
	if len(nextStepTurns) > 0 {
		if agreements == len(nextStepTurns) {
			agreementScore = 5
		} else if agreements > 0 {
			agreementScore = 3
		}
	}

	var ownershipScore float64
	switch {
	case ownership >= 2:
		ownershipScore = 5
	case ownership == 1:
		ownershipScore = 3
	default:
		ownershipScore = 1
	}

	return []ComponentResult{
		applicable("next_step_specificity", specificityScore),
		applicable("mutual_agreement", agreementScore),
		applicable("ownership_clarity", ownershipScore),
	}
}
