package engine

import "strings"

var (
	questionStarters = []string{
		"how", "what", "why", "when", "where", "who",
		"tell me", "walk me through", "help me understand",
	}
	openPrefixes   = []string{"how", "what", "why", "tell me", "walk me through", "help me understand"}
	closedPrefixes = []string{"do", "does", "did", "is", "are", "can", "will", "has", "have"}
	bridgePhrases  = []string{"got it", "that makes sense", "building on that", "to understand that better"}
	followUpCues   = []string{"you mentioned", "when you said", "say more about", "help me understand more"}
)

func isQuestion(text string) bool {
	return strings.Contains(text, "?") || startsWithAny(text, questionStarters)
}

// scoreQuestionQuality evaluates the rep's questioning behavior: open vs.
// closed framing, reuse of stated customer goals, topical continuity and
// follow-up depth. All four components require at least one rep question.
func scoreQuestionQuality(tr Transcript, goals *GoalTokenSet) []ComponentResult {
	var questions []Turn
	for _, t := range tr.RepTurns() {
		if isQuestion(t.Text) {
			questions = append(questions, t)
		}
	}
	if len(questions) == 0 {
		return []ComponentResult{
			notApplicable("open_closed_ratio"),
			notApplicable("relevance_to_goals"),
			notApplicable("sequencing_logic"),
			notApplicable("follow_up_depth"),
		}
	}
	total := float64(len(questions))

	// Open/closed ratio. Questions that start with neither prefix family
	// count toward neither side; if nothing classifies, the component has no
	// evidence to rate.
	open, closed := 0, 0
	for _, q := range questions {
		switch {
		case startsWithAny(q.Text, openPrefixes):
			open++
		case startsWithAny(q.Text, closedPrefixes):
			closed++
		}
	}
	openClosed := notApplicable("open_closed_ratio")
	if open+closed > 0 {
		ratio := float64(open) / float64(open+closed)
		openClosed = applicable("open_closed_ratio", bandHigh(ratio, 0.70, 0.55, 0.40, 0.25))
	}

	// Relevance to goals: only goal tokens stated before the question count.
	goalAligned := 0
	for _, q := range questions {
		if goals.AnyVisibleBefore(tokenize(q.Text), q.Index) {
			goalAligned++
		}
	}
	relevance := applicable("relevance_to_goals",
		bandHigh(float64(goalAligned)/total, 0.60, 0.45, 0.30, 0.15))

	// Sequencing: a rep question right after a customer turn with near-zero
	// lexical continuity and no bridging phrase is an abrupt topic jump.
	jumps := 0
	followUps := 0
	for i := 0; i+1 < len(tr); i++ {
		if tr[i].Speaker != SpeakerCustomer || tr[i+1].Speaker != SpeakerRep || !isQuestion(tr[i+1].Text) {
			continue
		}
		ov := overlap(tokenize(tr[i].Text), tokenize(tr[i+1].Text))
		if ov < 0.10 && !containsAny(tr[i+1].Text, bridgePhrases) {
			jumps++
		}
		if ov >= 0.20 || containsAny(tr[i+1].Text, followUpCues) {
			followUps++
		}
	}
	sequencing := applicable("sequencing_logic",
		bandLow(float64(jumps)/total, 0.10, 0.20, 0.35, 0.50))
	followUp := applicable("follow_up_depth",
		bandHigh(float64(followUps)/total, 0.60, 0.40, 0.25, 0.10))

	return []ComponentResult{openClosed, relevance, sequencing, followUp}
}
