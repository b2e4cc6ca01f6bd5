package engine

// Formula selects how applicable component scores roll up into the metric
// score.
type Formula string

const (
	// FormulaAverage is the plain mean of applicable component scores.
	FormulaAverage Formula = "average"
	// FormulaWeighted renormalizes configured weights over the applicable
	// components and takes the weighted sum.
	FormulaWeighted Formula = "weighted_average"
)

// ComponentSpec is the static, author-supplied configuration of one
// sub-heuristic. For a given metric the component weights sum to 1.0 (within
// floating tolerance) when all components are applicable.
type ComponentSpec struct {
	Name        string
	Description string
	Weight      float64
}

// MetricSpec is the static configuration of one behavioral metric.
type MetricSpec struct {
	ID         string
	Display    string
	Formula    Formula
	Optional   bool
	Components []ComponentSpec
}

// Canonical metric ids. The result array always carries all eight, in this
// order; consumers rely on presence, with NotApplicable signaling absence of
// evidence rather than omission.
const (
	MetricQuestionQuality     = "question_quality"
	MetricListening           = "listening_responsiveness"
	MetricMakingItMatter      = "making_it_matter"
	MetricCustomerEngagement  = "customer_engagement_signals"
	MetricObjectionNavigation = "objection_navigation"
	MetricConversationControl = "conversation_control_structure"
	MetricCommitmentGaining   = "commitment_gaining"
	MetricAdaptability        = "adaptability"
)

// MetricSpecs is the canonical rule table for the eight behavioral metrics.
// Cue lists and rate-to-score bands live with the evaluators; this table owns
// identity, aggregation mode and component weights.
var MetricSpecs = []MetricSpec{
	{
		ID:      MetricQuestionQuality,
		Display: "Question Quality",
		Formula: FormulaWeighted,
		Components: []ComponentSpec{
			{Name: "open_closed_ratio", Description: "Balance of open vs. closed questions", Weight: 0.25},
			{Name: "relevance_to_goals", Description: "Questions align with customer priorities", Weight: 0.25},
			{Name: "sequencing_logic", Description: "Questions flow logically without abrupt jumps", Weight: 0.25},
			{Name: "follow_up_depth", Description: "Asks follow-up questions to deepen understanding", Weight: 0.25},
		},
	},
	{
		ID:      MetricListening,
		Display: "Listening & Responsiveness",
		Formula: FormulaAverage,
		Components: []ComponentSpec{
			{Name: "paraphrasing", Description: "Reflects back customer statements", Weight: 0.33},
			{Name: "acknowledgment_of_concerns", Description: "Acknowledges customer concerns when raised", Weight: 0.33},
			{Name: "adjustment_to_new_info", Description: "Adapts approach when customer shares new information", Weight: 0.34},
		},
	},
	{
		ID:      MetricMakingItMatter,
		Display: "Making It Matter",
		Formula: FormulaWeighted,
		Components: []ComponentSpec{
			{Name: "outcome_based_language", Description: "Focuses on outcomes and results, not features", Weight: 0.33},
			{Name: "link_to_customer_priorities", Description: "Ties value proposition to customer-stated priorities", Weight: 0.34},
			{Name: "no_feature_dumping", Description: "Avoids overwhelming with feature lists", Weight: 0.33},
		},
	},
	{
		ID:      MetricCustomerEngagement,
		Display: "Customer Engagement Signals",
		Formula: FormulaWeighted,
		Components: []ComponentSpec{
			{Name: "customer_talk_time", Description: "Customer speaks appropriate amount (45-65% ideal)", Weight: 0.25},
			{Name: "customer_question_quality", Description: "Customer asks thoughtful, specific questions", Weight: 0.25},
			{Name: "forward_looking_cues", Description: "Customer expresses interest in next steps", Weight: 0.25},
			{Name: "energy_shifts", Description: "Customer maintains or increases engagement", Weight: 0.25},
		},
	},
	{
		ID:       MetricObjectionNavigation,
		Display:  "Objection Navigation",
		Formula:  FormulaAverage,
		Optional: true,
		Components: []ComponentSpec{
			{Name: "acknowledge_before_response", Description: "Acknowledges objection before responding", Weight: 0.33},
			{Name: "explore_underlying_concern", Description: "Asks questions to understand root cause", Weight: 0.34},
			{Name: "calm_demeanor", Description: "Maintains composure and professionalism", Weight: 0.33},
		},
	},
	{
		ID:      MetricConversationControl,
		Display: "Conversation Control & Structure",
		Formula: FormulaWeighted,
		Components: []ComponentSpec{
			{Name: "purpose_setting", Description: "Sets clear agenda at start", Weight: 0.25},
			{Name: "topic_management", Description: "Manages topic flow with smooth transitions", Weight: 0.25},
			{Name: "time_management", Description: "Respects time constraints and adapts", Weight: 0.25},
			{Name: "summarizing", Description: "Recaps key points near end", Weight: 0.25},
		},
	},
	{
		ID:      MetricCommitmentGaining,
		Display: "Commitment Gaining",
		Formula: FormulaWeighted,
		Components: []ComponentSpec{
			{Name: "next_step_specificity", Description: "Proposes concrete, specific next steps", Weight: 0.33},
			{Name: "mutual_agreement", Description: "Gains explicit customer agreement", Weight: 0.33},
			{Name: "ownership_clarity", Description: "Clarifies who does what", Weight: 0.34},
		},
	},
	{
		ID:      MetricAdaptability,
		Display: "Adaptability",
		Formula: FormulaAverage,
		Components: []ComponentSpec{
			{Name: "approach_shift", Description: "Changes strategy when needed", Weight: 0.25},
			{Name: "tone_adjustment", Description: "Adjusts tone to match customer mood", Weight: 0.25},
			{Name: "depth_adjustment", Description: "Adjusts detail level appropriately", Weight: 0.25},
			{Name: "pacing_adjustment", Description: "Adjusts conversation pace", Weight: 0.25},
		},
	},
}

// MetricIDs returns the canonical ids in result order.
func MetricIDs() []string {
	ids := make([]string, len(MetricSpecs))
	for i, s := range MetricSpecs {
		ids[i] = s.ID
	}
	return ids
}
