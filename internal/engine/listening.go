package engine

var (
	paraphraseCues = []string{"what i'm hearing", "it sounds like", "if i understand", "so you're saying"}
	concernCues    = []string{
		"worried", "concern", "hesitant", "problem", "issue", "not sure",
		"don't like", "no", "can't", "won't", "too busy", "budget",
	}
	acknowledgmentCues = []string{
		"i hear you", "i understand", "that makes sense", "i can see why",
		"you're right", "fair point",
	}
)

// scoreListening evaluates how the rep tracks the customer: paraphrasing,
// acknowledging raised concerns within one turn, and folding newly stated
// information back into the conversation. Acknowledgment is only applicable
// when at least one concern cue occurs.
func scoreListening(tr Transcript, _ *GoalTokenSet) []ComponentResult {
	customerTurns := tr.CustomerTurns()
	if len(customerTurns) == 0 {
		return []ComponentResult{
			notApplicable("paraphrasing"),
			notApplicable("acknowledgment_of_concerns"),
			notApplicable("adjustment_to_new_info"),
		}
	}

	// Paraphrasing: rep turn restates the prior customer turn, by phrase or
	// by heavy token overlap.
	paraphrases := 0
	for i := 0; i+1 < len(tr); i++ {
		if tr[i].Speaker != SpeakerCustomer || tr[i+1].Speaker != SpeakerRep {
			continue
		}
		if containsAny(tr[i+1].Text, paraphraseCues) ||
			overlap(tokenize(tr[i].Text), tokenize(tr[i+1].Text)) >= 0.30 {
			paraphrases++
		}
	}
	paraphrasing := applicable("paraphrasing",
		bandHigh(float64(paraphrases)/float64(len(customerTurns)), 0.50, 0.35, 0.20, 0.10))

	// Acknowledgment of concerns within the next rep turn.
	concernCount, acknowledged := 0, 0
	for i, t := range tr {
		if t.Speaker != SpeakerCustomer || !containsAny(t.Text, concernCues) {
			continue
		}
		concernCount++
		if i+1 < len(tr) && tr[i+1].Speaker == SpeakerRep && containsAny(tr[i+1].Text, acknowledgmentCues) {
			acknowledged++
		}
	}
	acknowledgment := notApplicable("acknowledgment_of_concerns")
	if concernCount > 0 {
		acknowledgment = applicable("acknowledgment_of_concerns",
			bandHigh(float64(acknowledged)/float64(concernCount), 0.80, 0.60, 0.40, 0.20))
	}

	// Adjustment to new info: novel customer tokens referenced by the rep
	// within the next two turns.
	seen := make(map[string]struct{})
	newInfoCount, adjustments := 0, 0
	for i, t := range tr {
		if t.Speaker != SpeakerCustomer {
			continue
		}
		tokens := tokenize(t.Text)
		var novel []string
		for _, tok := range tokens {
			if _, ok := seen[tok]; !ok {
				novel = append(novel, tok)
			}
		}
		if len(novel) > 0 {
			newInfoCount++
			for j := i + 1; j <= i+2 && j < len(tr); j++ {
				if tr[j].Speaker != SpeakerRep {
					continue
				}
				if referencesAny(tokenize(tr[j].Text), novel) {
					adjustments++
					break
				}
			}
		}
		for _, tok := range tokens {
			seen[tok] = struct{}{}
		}
	}
	adjustRate := 0.0
	if newInfoCount > 0 {
		adjustRate = float64(adjustments) / float64(newInfoCount)
	}
	adjustment := applicable("adjustment_to_new_info",
		bandHigh(adjustRate, 0.70, 0.55, 0.40, 0.25))

	return []ComponentResult{paraphrasing, acknowledgment, adjustment}
}

func referencesAny(tokens, targets []string) bool {
	set := tokenSet(tokens)
	for _, t := range targets {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
