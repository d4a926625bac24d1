package analyze

import "strings"

// classifyIntent scores every intent rule against the text and
// returns the best one. The raw score for a rule is
// (0.3*keywordHits + 0.7*patternHits) * weight; rules are evaluated
// in declared order and ties keep the earlier rule. The stored
// confidence is the raw score capped at 1.
func (a *Analyzer) classifyIntent(text string) Intent {
	textLower := strings.ToLower(text)

	best := Intent{Name: IntentUnknown, MatchedKeywords: []string{}, MatchedPatterns: []string{}}
	bestScore := 0.0

	for _, intent := range a.intents {
		var matchedKeywords []string
		for _, keyword := range intent.rule.Keywords {
			if strings.Contains(textLower, strings.ToLower(keyword)) {
				matchedKeywords = append(matchedKeywords, keyword)
			}
		}

		var matchedPatterns []string
		for _, pattern := range intent.patterns {
			if pattern.MatchString(text) {
				matchedPatterns = append(matchedPatterns, pattern.String())
			}
		}

		score := (0.3*float64(len(matchedKeywords)) + 0.7*float64(len(matchedPatterns))) * intent.rule.Weight

		if score > bestScore {
			bestScore = score
			best = Intent{
				Name:            intent.rule.Name,
				Confidence:      min(score, 1),
				MatchedKeywords: matchedKeywords,
				MatchedPatterns: matchedPatterns,
			}
		}
	}

	return best
}

// expansionFor returns the enhancement terms declared for an intent,
// or the empty string if the intent carries none.
func (a *Analyzer) expansionFor(intentName string) string {
	for _, intent := range a.intents {
		if intent.rule.Name == intentName {
			return intent.rule.Expansion
		}
	}
	return ""
}

// suggestionsFor returns the advisory hints declared for an intent.
func (a *Analyzer) suggestionsFor(intentName string) []string {
	for _, intent := range a.intents {
		if intent.rule.Name == intentName {
			return intent.rule.Suggestions
		}
	}
	return nil
}
