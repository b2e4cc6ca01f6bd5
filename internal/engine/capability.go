package engine

// Capability is the display-layer identity attached to a metric. The engine
// itself never reads this mapping; it exists so the presentation layer can
// stay decoupled from metric ids.
type Capability struct {
	ID    string
	Label string
}

var metricCapabilities = map[string]Capability{
	MetricQuestionQuality:     {ID: "signal-awareness", Label: "Signal Awareness"},
	MetricListening:           {ID: "signal-interpretation", Label: "Signal Interpretation"},
	MetricMakingItMatter:      {ID: "value-connection", Label: "Value Connection"},
	MetricCustomerEngagement:  {ID: "customer-engagement-monitoring", Label: "Customer Engagement Monitoring"},
	MetricObjectionNavigation: {ID: "objection-navigation", Label: "Objection Navigation"},
	MetricConversationControl: {ID: "conversation-management", Label: "Conversation Management"},
	MetricCommitmentGaining:   {ID: "commitment-generation", Label: "Commitment Generation"},
	MetricAdaptability:        {ID: "adaptive-response", Label: "Adaptive Response"},
}

var coachingInsights = map[string][]string{
	MetricQuestionQuality: {
		"Ask open-ended questions that encourage HCPs to share their clinical priorities and challenges.",
		"Use follow-up questions to dig deeper into initial responses rather than moving to the next topic.",
		"Frame questions around patient outcomes and clinical workflows, not just product features.",
		"Balance discovery questions with clarifying questions to ensure mutual understanding.",
	},
	MetricListening: {
		"Use paraphrasing to reflect key HCP statements before answering ('So what I'm hearing is...').",
		"Actively acknowledge concerns before pivoting to solutions ('That's a valid concern...').",
		"Allow natural pauses after HCP statements—don't rush to fill silence.",
		"Reference specific points the HCP made earlier in the conversation to show you're tracking.",
	},
	MetricMakingItMatter: {
		"Connect product features directly to the HCP's stated priorities and patient population.",
		"Use clinical evidence that aligns with the HCP's specialty and practice setting.",
		"Quantify impact in terms the HCP cares about (patient outcomes, workflow efficiency, cost).",
		"Avoid generic value propositions—tailor every statement to this specific HCP's context.",
	},
	MetricCustomerEngagement: {
		"Watch for verbal cues like 'tell me more,' 'how does that work,' or 'interesting' as engagement signals.",
		"Notice when the HCP asks questions—this indicates active interest and should be encouraged.",
		"Be alert to disengagement signals like short responses, topic changes, or time pressure cues.",
		"Adjust your approach when engagement drops—ask a question, shift topics, or offer to follow up.",
	},
	MetricObjectionNavigation: {
		"Acknowledge objections fully before responding—never dismiss or minimize concerns.",
		"Ask clarifying questions to understand the root cause of the objection.",
		"Provide evidence-based responses that directly address the specific concern raised.",
		"If you can't resolve an objection immediately, commit to following up with more information.",
	},
	MetricConversationControl: {
		"Set clear expectations at the start: 'I'd like to understand your current approach, then share some insights.'",
		"Use transitions to guide the conversation: 'Before we move on, let me make sure I understand...'",
		"Respect time constraints by being concise and offering to schedule follow-ups for deeper topics.",
		"Summarize key points periodically to maintain shared understanding and momentum.",
	},
	MetricCommitmentGaining: {
		"Ask for specific next steps rather than vague commitments: 'Can we schedule 15 minutes next week to review the data?'",
		"Tie commitments to the HCP's stated goals: 'Since you mentioned wanting to improve adherence, would you be open to...'",
		"Make commitments easy and low-risk—start small and build from there.",
		"Confirm mutual commitments: 'I'll send the study by Friday, and you'll review it before our next meeting—does that work?'",
	},
	MetricAdaptability: {
		"When an approach isn't working, explicitly pivot: 'Let me try a different angle...'",
		"Match the HCP's communication style—if they're data-driven, lead with evidence; if they're patient-focused, lead with outcomes.",
		"Be willing to abandon your planned agenda if the HCP's priorities differ.",
		"Adjust pacing based on HCP cues—slow down for complex topics, speed up when they're familiar.",
	},
}

// CapabilityFor returns the capability mapped to a metric id.
func CapabilityFor(metricID string) (Capability, bool) {
	c, ok := metricCapabilities[metricID]
	return c, ok
}

// CoachingInsightsFor returns the canned coaching tips for a metric id.
func CoachingInsightsFor(metricID string) []string {
	return coachingInsights[metricID]
}

// DisplayNameFor returns the human-readable metric name for a metric id.
func DisplayNameFor(metricID string) string {
	for _, s := range MetricSpecs {
		if s.ID == metricID {
			return s.Display
		}
	}
	return metricID
}
