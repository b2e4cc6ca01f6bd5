// Package engine implements the behavioral metrics scoring engine: a pure,
// deterministic function from a two-party dialogue transcript to a fixed set
// of eight competency scores. All heuristics are lexical pattern rules over
// the transcript; there is no inference, no learning and no I/O. Every
// scoring run rebuilds its state from the input, so identical transcripts
// always yield identical results.
package engine

type evaluator func(tr Transcript, goals *GoalTokenSet) []ComponentResult

var evaluators = map[string]evaluator{
	MetricQuestionQuality:     scoreQuestionQuality,
	MetricListening:           scoreListening,
	MetricMakingItMatter:      scoreMakingItMatter,
	MetricCustomerEngagement:  scoreCustomerEngagement,
	MetricObjectionNavigation: scoreObjectionNavigation,
	MetricConversationControl: scoreConversationControl,
	MetricCommitmentGaining:   scoreCommitmentGaining,
	MetricAdaptability:        scoreAdaptability,
}

// Score normalizes raw turns and evaluates all eight metrics, returning one
// MetricResult per canonical metric id, in a stable fixed order. A transcript
// with zero turns overall or zero rep turns yields every metric as not
// applicable; that is a normal outcome, not an error.
func Score(raw []RawTurn) []MetricResult {
	return ScoreTranscript(Normalize(raw))
}

// ScoreTranscript scores an already-normalized transcript.
func ScoreTranscript(tr Transcript) []MetricResult {
	if len(tr) == 0 || len(tr.RepTurns()) == 0 {
		return allNotApplicable()
	}

	goals := ExtractGoalTokens(tr)

	results := make([]MetricResult, 0, len(MetricSpecs))
	for _, spec := range MetricSpecs {
		components := evaluators[spec.ID](tr, goals)
		results = append(results, resolve(spec, components))
	}
	return results
}

func allNotApplicable() []MetricResult {
	results := make([]MetricResult, 0, len(MetricSpecs))
	for _, spec := range MetricSpecs {
		components := make([]ComponentResult, len(spec.Components))
		for i, c := range spec.Components {
			components[i] = notApplicable(c.Name)
		}
		results = append(results, MetricResult{
			ID:            spec.ID,
			NotApplicable: true,
			Components:    components,
		})
	}
	return results
}
