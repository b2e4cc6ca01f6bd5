package engine

import "strings"

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "as", "is", "was", "are", "were", "be",
		"been", "being", "have", "has", "had", "do", "does", "did", "will",
		"would", "should", "could", "may", "might", "must", "can", "this",
		"that", "these", "those", "i", "you", "he", "she", "it", "we", "they",
		"me", "him", "her", "us", "them", "my", "your", "his", "its", "our", "their",
	} {
		stopwords[w] = struct{}{}
	}
}

// tokenize lowercases text, splits it on non-alphabetic runs and drops
// stopwords and tokens of length <= 2.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 2 {
			tok := b.String()
			if _, stop := stopwords[tok]; !stop {
				tokens = append(tokens, tok)
			}
		}
		b.Reset()
	}
	for _, r := range lower {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// overlap returns the Jaccard ratio |A∩B| / |A∪B| between two token lists.
func overlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA, setB := tokenSet(a), tokenSet(b)
	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// containsAny reports whether text contains any of the phrases,
// case-insensitively. Matching is whole-phrase substring matching over the
// raw turn text, since trigger phrases can be multi-word.
func containsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// startsWithAny reports whether trimmed, lowercased text begins with any of
// the prefixes.
func startsWithAny(text string, prefixes []string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, p := range prefixes {
		if strings.HasPrefix(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// indexOfAny returns the smallest index at which any of the phrases occurs in
// lowered, or -1 when none occurs. lowered must already be lowercase.
func indexOfAny(lowered string, phrases []string) int {
	min := -1
	for _, p := range phrases {
		if idx := strings.Index(lowered, strings.ToLower(p)); idx >= 0 {
			if min < 0 || idx < min {
				min = idx
			}
		}
	}
	return min
}

// goalCues are the cue words signaling a stated need or priority. The 1-3
// tokens following a cue in a customer turn become goal tokens.
var goalCues = []string{
	"need", "goal", "priority", "concern", "issue", "challenge",
	"want", "trying", "struggle",
}

const goalCaptureWindow = 3

// GoalTokenSet accumulates goal tokens from customer turns, keyed by the
// earliest transcript index at which each token was stated. It is the only
// cross-metric shared state, rebuilt from scratch on every scoring run.
type GoalTokenSet struct {
	firstSeen map[string]int
}

// ExtractGoalTokens scans customer turns strictly in order and captures the
// 1-3 tokens following each cue word.
func ExtractGoalTokens(tr Transcript) *GoalTokenSet {
	gs := &GoalTokenSet{firstSeen: make(map[string]int)}
	for _, turn := range tr {
		if turn.Speaker != SpeakerCustomer {
			continue
		}
		tokens := tokenize(turn.Text)
		for i, tok := range tokens {
			if !isGoalCue(tok) {
				continue
			}
			for j := i + 1; j <= i+goalCaptureWindow && j < len(tokens); j++ {
				captured := tokens[j]
				if isGoalCue(captured) {
					continue
				}
				if _, seen := gs.firstSeen[captured]; !seen {
					gs.firstSeen[captured] = turn.Index
				}
			}
		}
	}
	return gs
}

func isGoalCue(tok string) bool {
	for _, c := range goalCues {
		if tok == c {
			return true
		}
	}
	return false
}

// AnyVisibleBefore reports whether any of the tokens was extracted from a
// customer turn strictly before the given transcript index. The gate prevents
// crediting a rep turn for anticipating a need the customer had not yet
// stated.
func (gs *GoalTokenSet) AnyVisibleBefore(tokens []string, turnIndex int) bool {
	for _, t := range tokens {
		if seen, ok := gs.firstSeen[t]; ok && seen < turnIndex {
			return true
		}
	}
	return false
}

// Len returns the number of distinct goal tokens extracted.
func (gs *GoalTokenSet) Len() int {
	return len(gs.firstSeen)
}
