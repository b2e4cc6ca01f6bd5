package engine

var (
	agendaCues     = []string{"today i'd like", "agenda", "goal", "what i'd like to cover"}
	transitionCues = []string{"building on that", "to connect this", "since you said"}
	timePressure   = []string{"have to go", "another meeting", "short on time"}
	timeAdaptCues  = []string{"next step", "follow up", "send", "schedule"}
	recapCues      = []string{"to recap", "summary", "what we covered", "next steps"}
)

// timeManagementBaseline is the neutral score reported when no time-pressure
// cue ever occurs: the rep was never tested on time handling, but unlike an
// objection-free call this is treated as acceptable structure rather than
// missing evidence.
const timeManagementBaseline = 3.0

// scoreConversationControl evaluates agenda setting in the opening turns,
// transition usage, reaction to customer time pressure, and a closing recap.
func scoreConversationControl(tr Transcript, _ *GoalTokenSet) []ComponentResult {
	repTurns := tr.RepTurns()
	if len(repTurns) == 0 {
		return []ComponentResult{
			notApplicable("purpose_setting"),
			notApplicable("topic_management"),
			notApplicable("time_management"),
			notApplicable("summarizing"),
		}
	}

	// Purpose setting: agenda phrase in the first three rep turns scores
	// full; a late agenda still gets partial credit.
	earlyAgenda, lateAgenda := false, false
	for i, t := range repTurns {
		if containsAny(t.Text, agendaCues) {
			if i < 3 {
				earlyAgenda = true
			} else {
				lateAgenda = true
			}
		}
	}
	var purposeScore float64 = 1
	if earlyAgenda {
		purposeScore = 5
	} else if lateAgenda {
		purposeScore = 3
	}

	transitions := 0
	for _, t := range repTurns {
		if containsAny(t.Text, transitionCues) {
			transitions++
		}
	}
	var topicScore float64
	switch {
	case float64(transitions) >= float64(len(repTurns))*0.3:
		topicScore = 5
	case float64(transitions) >= float64(len(repTurns))*0.15:
		topicScore = 4
	case transitions > 0:
		topicScore = 3
	default:
		topicScore = 2
	}

	// Time management: adapt within one turn of each time-pressure cue.
	cueCount, adapted := 0, 0
	for i, t := range tr {
		if t.Speaker != SpeakerCustomer || !containsAny(t.Text, timePressure) {
			continue
		}
		cueCount++
		if i+1 < len(tr) && tr[i+1].Speaker == SpeakerRep && containsAny(tr[i+1].Text, timeAdaptCues) {
			adapted++
		}
	}
	timeScore := timeManagementBaseline
	if cueCount > 0 {
		switch {
		case adapted == cueCount:
			timeScore = 5
		case adapted > 0:
			timeScore = 3
		default:
			timeScore = 2
		}
	}

	lastThree := repTurns
	if len(lastThree) > 3 {
		lastThree = lastThree[len(lastThree)-3:]
	}
	var summaryScore float64 = 1
	for _, t := range lastThree {
		if containsAny(t.Text, recapCues) {
			summaryScore = 5
			break
		}
	}

	return []ComponentResult{
		applicable("purpose_setting", purposeScore),
		applicable("topic_management", topicScore),
		applicable("time_management", timeScore),
		applicable("summarizing", summaryScore),
	}
}
