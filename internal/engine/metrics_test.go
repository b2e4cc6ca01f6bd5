package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func componentsByName(t *testing.T, components []ComponentResult) map[string]ComponentResult {
	t.Helper()
	byName := make(map[string]ComponentResult, len(components))
	for _, c := range components {
		byName[c.Name] = c
	}
	return byName
}

func mustScore(t *testing.T, c ComponentResult) float64 {
	t.Helper()
	require.True(t, c.Applicable, "component %s not applicable", c.Name)
	require.NotNil(t, c.Score, "component %s has no score", c.Name)
	return *c.Score
}

func TestScoreListening(t *testing.T) {
	t.Run("paraphrase and acknowledgment credited", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "customer", Text: "I'm worried this will add work for my nurses."},
			{Speaker: "rep", Text: "I hear you, it sounds like workload is the real issue for your team."},
		})

		byName := componentsByName(t, scoreListening(tr, ExtractGoalTokens(tr)))

		assert.Equal(t, 5.0, mustScore(t, byName["paraphrasing"]))
		assert.Equal(t, 5.0, mustScore(t, byName["acknowledgment_of_concerns"]))
		// The rep never echoes the customer's actual tokens.
		assert.Equal(t, 1.0, mustScore(t, byName["adjustment_to_new_info"]))
	})

	t.Run("acknowledgment needs a concern to judge", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "customer", Text: "The onset data looked solid."},
			{Speaker: "rep", Text: "Glad it landed. Which cohort stood out?"},
		})

		byName := componentsByName(t, scoreListening(tr, ExtractGoalTokens(tr)))

		assert.False(t, byName["acknowledgment_of_concerns"].Applicable)
		assert.True(t, byName["paraphrasing"].Applicable)
		assert.True(t, byName["adjustment_to_new_info"].Applicable)
	})

	t.Run("no customer turns means nothing to listen to", func(t *testing.T) {
		tr := Normalize([]RawTurn{{Speaker: "rep", Text: "Let me walk you through the data."}})

		for _, c := range scoreListening(tr, ExtractGoalTokens(tr)) {
			assert.False(t, c.Applicable)
		}
	})
}

func TestScoreCustomerEngagement(t *testing.T) {
	tr := Normalize([]RawTurn{
		{Speaker: "rep", Text: "What brings the most complexity to your dosing decisions?"},
		{Speaker: "customer", Text: "How does the dosing work for elderly patients?"},
		{Speaker: "rep", Text: "It adjusts based on renal function and age."},
		{Speaker: "customer", Text: "We mostly treat complex renal cases in our clinic."},
	})

	byName := componentsByName(t, scoreCustomerEngagement(tr, nil))

	// Half the turns are the customer's: the ideal band.
	assert.Equal(t, 5.0, mustScore(t, byName["customer_talk_time"]))
	// One customer question.
	assert.Equal(t, 3.0, mustScore(t, byName["customer_question_quality"]))
	// No forward-looking language.
	assert.Equal(t, 3.0, mustScore(t, byName["forward_looking_cues"]))
	// No disengagement cues, responses not shrinking.
	assert.Equal(t, 4.0, mustScore(t, byName["energy_shifts"]))
}

func TestScoreCustomerEngagementForwardCues(t *testing.T) {
	tr := Normalize([]RawTurn{
		{Speaker: "rep", Text: "Where should we go from here?"},
		{Speaker: "customer", Text: "Let's schedule a pilot with my team."},
		{Speaker: "customer", Text: "When can we talk again about rollout?"},
	})

	byName := componentsByName(t, scoreCustomerEngagement(tr, nil))

	assert.Equal(t, 5.0, mustScore(t, byName["forward_looking_cues"]))
}

func TestScoreConversationControl(t *testing.T) {
	t.Run("early agenda with no transitions or recap", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "rep", Text: "Today I'd like to walk through the new dosing data with you."},
			{Speaker: "customer", Text: "Alright."},
		})

		byName := componentsByName(t, scoreConversationControl(tr, nil))

		assert.Equal(t, 5.0, mustScore(t, byName["purpose_setting"]))
		assert.Equal(t, 2.0, mustScore(t, byName["topic_management"]))
		assert.Equal(t, 1.0, mustScore(t, byName["summarizing"]))
	})

	t.Run("time management defaults to neutral without time pressure", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "rep", Text: "Shall we dig into the cohort breakdown?"},
			{Speaker: "customer", Text: "Go ahead."},
		})

		byName := componentsByName(t, scoreConversationControl(tr, nil))

		assert.Equal(t, timeManagementBaseline, mustScore(t, byName["time_management"]))
	})

	t.Run("adapting to time pressure scores full", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "customer", Text: "I have to go in five minutes."},
			{Speaker: "rep", Text: "Understood, let me propose a next step: I'll send the summary."},
		})

		byName := componentsByName(t, scoreConversationControl(tr, nil))

		assert.Equal(t, 5.0, mustScore(t, byName["time_management"]))
	})

	t.Run("ignoring time pressure is penalized", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "customer", Text: "I'm short on time today."},
			{Speaker: "rep", Text: "The mechanism of action works through selective binding."},
		})

		byName := componentsByName(t, scoreConversationControl(tr, nil))

		assert.Equal(t, 2.0, mustScore(t, byName["time_management"]))
	})

	t.Run("recap in the closing turns", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "rep", Text: "Today I'd like to cover efficacy and access."},
			{Speaker: "customer", Text: "Go on."},
			{Speaker: "rep", Text: "To recap, we agreed on a two week evaluation."},
		})

		byName := componentsByName(t, scoreConversationControl(tr, nil))

		assert.Equal(t, 5.0, mustScore(t, byName["summarizing"]))
	})
}

func TestScoreCommitmentGaining(t *testing.T) {
	t.Run("specific next step with agreement", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "rep", Text: "I'll send the study and we can schedule a review call on Friday."},
			{Speaker: "customer", Text: "Yes, that works for me."},
		})

		byName := componentsByName(t, scoreCommitmentGaining(tr, nil))

		assert.Equal(t, 5.0, mustScore(t, byName["next_step_specificity"]))
		assert.Equal(t, 5.0, mustScore(t, byName["mutual_agreement"]))
		// One ownership marker.
		assert.Equal(t, 3.0, mustScore(t, byName["ownership_clarity"]))
	})

	t.Run("vague close scores bottom", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "rep", Text: "Great chatting, hopefully we cross paths soon."},
			{Speaker: "customer", Text: "Take care."},
		})

		byName := componentsByName(t, scoreCommitmentGaining(tr, nil))

		assert.Equal(t, 1.0, mustScore(t, byName["next_step_specificity"]))
		assert.Equal(t, 1.0, mustScore(t, byName["mutual_agreement"]))
		assert.Equal(t, 1.0, mustScore(t, byName["ownership_clarity"]))
	})
}

func TestScoreAdaptability(t *testing.T) {
	t.Run("components gate on their own cue", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "customer", Text: "I'm confused, what do you mean by the loading dose?"},
			{Speaker: "rep", Text: "Let me break it down simply."},
		})

		byName := componentsByName(t, scoreAdaptability(tr, nil))

		assert.False(t, byName["approach_shift"].Applicable)
		assert.False(t, byName["tone_adjustment"].Applicable)
		assert.Equal(t, 4.0, mustScore(t, byName["depth_adjustment"]))
		assert.False(t, byName["pacing_adjustment"].Applicable)
	})

	t.Run("no cues at all means not applicable", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "customer", Text: "The data was compelling."},
			{Speaker: "rep", Text: "Glad to hear it."},
		})

		for _, c := range scoreAdaptability(tr, nil) {
			assert.False(t, c.Applicable)
		}
	})

	t.Run("acknowledging emotion lifts tone adjustment", func(t *testing.T) {
		tr := Normalize([]RawTurn{
			{Speaker: "customer", Text: "I'm frustrated with how the last rollout went."},
			{Speaker: "rep", Text: "I understand, and I want to make this one different."},
		})

		byName := componentsByName(t, scoreAdaptability(tr, nil))

		assert.Equal(t, 4.0, mustScore(t, byName["tone_adjustment"]))
	})
}

func TestCapabilityMapping(t *testing.T) {
	for _, id := range MetricIDs() {
		capability, ok := CapabilityFor(id)
		require.True(t, ok, "metric %s has no capability", id)
		assert.NotEmpty(t, capability.ID)
		assert.NotEmpty(t, capability.Label)
		assert.Len(t, CoachingInsightsFor(id), 4, "metric %s", id)
		assert.NotEqual(t, id, DisplayNameFor(id))
	}

	_, ok := CapabilityFor("unknown_metric")
	assert.False(t, ok)
	assert.Equal(t, "unknown_metric", DisplayNameFor("unknown_metric"))
}
