package engine

import "strings"

var (
	outcomeTerms = []string{
		"improve", "reduce", "increase", "impact", "outcome", "results",
		"patients", "workflow", "time", "burden", "adherence", "access",
		"efficiency", "safety",
	}
	benefitConnectors = []string{"so that", "which means", "so you can"}
)

const featureDumpMinLength = 220

// scoreMakingItMatter evaluates whether rep statements (non-question turns)
// land on outcomes and stated customer priorities instead of raw feature
// lists.
func scoreMakingItMatter(tr Transcript, goals *GoalTokenSet) []ComponentResult {
	var statements []Turn
	for _, t := range tr.RepTurns() {
		if !strings.Contains(t.Text, "?") {
			statements = append(statements, t)
		}
	}
	if len(statements) == 0 {
		return []ComponentResult{
			notApplicable("outcome_based_language"),
			notApplicable("link_to_customer_priorities"),
			notApplicable("no_feature_dumping"),
		}
	}
	total := float64(len(statements))

	outcomeCount, linkedCount, dumpCount := 0, 0, 0
	for _, s := range statements {
		if containsAny(s.Text, outcomeTerms) || containsAny(s.Text, benefitConnectors) {
			outcomeCount++
		}
		if goals.AnyVisibleBefore(tokenize(s.Text), s.Index) {
			linkedCount++
		}
		if isFeatureDump(s.Text) {
			dumpCount++
		}
	}

	return []ComponentResult{
		applicable("outcome_based_language",
			bandHigh(float64(outcomeCount)/total, 0.60, 0.45, 0.30, 0.15)),
		applicable("link_to_customer_priorities",
			bandHigh(float64(linkedCount)/total, 0.50, 0.35, 0.20, 0.10)),
		applicable("no_feature_dumping",
			bandLow(float64(dumpCount)/total, 0.05, 0.12, 0.25, 0.40)),
	}
}

// isFeatureDump flags long, list-heavy statements that carry no benefit
// connector.
func isFeatureDump(text string) bool {
	if len(text) <= featureDumpMinLength {
		return false
	}
	listy := strings.Count(text, ",") >= 4 ||
		strings.Count(text, "•") >= 3 ||
		strings.Count(text, "- ") >= 3
	return listy && !containsAny(text, benefitConnectors)
}
