package engine

import "strings"

// Speaker identifies which party produced a turn.
type Speaker string

const (
	SpeakerRep      Speaker = "rep"
	SpeakerCustomer Speaker = "customer"
)

// RawTurn is a turn as received from the calling application, before
// validation. Records that fail validation are dropped, not rejected.
type RawTurn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Turn is a validated utterance within a transcript. Immutable once created.
type Turn struct {
	Index   int
	Speaker Speaker
	Text    string
}

// Transcript is the ordered sequence of turns in one session. Indices are
// strictly increasing and contiguous from 0. Speaker alternation is not
// enforced; either party may have consecutive turns.
type Transcript []Turn

// Normalize shapes raw input into a Transcript. Records with an unrecognized
// speaker or empty/whitespace-only text are dropped so that scoring degrades
// gracefully on partial data.
func Normalize(raw []RawTurn) Transcript {
	tr := make(Transcript, 0, len(raw))
	for _, r := range raw {
		text := strings.TrimSpace(r.Text)
		if text == "" {
			continue
		}
		var speaker Speaker
		switch Speaker(strings.ToLower(strings.TrimSpace(r.Speaker))) {
		case SpeakerRep:
			speaker = SpeakerRep
		case SpeakerCustomer:
			speaker = SpeakerCustomer
		default:
			continue
		}
		tr = append(tr, Turn{Index: len(tr), Speaker: speaker, Text: text})
	}
	return tr
}

// RepTurns returns the rep's turns in transcript order.
func (tr Transcript) RepTurns() []Turn {
	return tr.bySpeaker(SpeakerRep)
}

// CustomerTurns returns the customer's turns in transcript order.
func (tr Transcript) CustomerTurns() []Turn {
	return tr.bySpeaker(SpeakerCustomer)
}

func (tr Transcript) bySpeaker(s Speaker) []Turn {
	var out []Turn
	for _, t := range tr {
		if t.Speaker == s {
			out = append(out, t)
		}
	}
	return out
}
