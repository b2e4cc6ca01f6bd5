package engine

// ComponentResult is the outcome of one weighted sub-heuristic. Score is nil
// exactly when Applicable is false; a component is inapplicable when its
// triggering condition never occurred in the transcript.
type ComponentResult struct {
	Name       string   `json:"name"`
	Score      *float64 `json:"score"`
	Applicable bool     `json:"applicable"`
}

// MetricResult is the scored outcome for one behavioral metric.
// NotApplicable is true iff zero components are applicable, in which case
// OverallScore is nil; otherwise OverallScore is in [1.0, 5.0], rounded to
// one decimal place.
type MetricResult struct {
	ID            string            `json:"id"`
	OverallScore  *float64          `json:"overall_score"`
	NotApplicable bool              `json:"not_applicable"`
	Components    []ComponentResult `json:"components"`
}

func applicable(name string, score float64) ComponentResult {
	return ComponentResult{Name: name, Score: &score, Applicable: true}
}

func notApplicable(name string) ComponentResult {
	return ComponentResult{Name: name, Applicable: false}
}
