package analyze

import "strings"

// detectLanguage scores each language rule as 0.7*patternHits +
// 0.3*commonWordHits and returns the highest scorer, defaulting to
// the configured primary language when nothing matches.
func (a *Analyzer) detectLanguage(text string) Language {
	words := strings.Fields(strings.ToLower(text))
	wordSet := make(map[string]bool, len(words))
	for _, word := range words {
		wordSet[word] = true
	}

	bestName := a.defaultLang
	bestScore := 0.0

	for _, language := range a.languages {
		patternHits := 0
		for _, pattern := range language.patterns {
			if pattern.MatchString(text) {
				patternHits++
			}
		}

		commonHits := 0
		for _, word := range language.rule.CommonWords {
			if wordSet[strings.ToLower(word)] {
				commonHits++
			}
		}

		score := 0.7*float64(patternHits) + 0.3*float64(commonHits)
		if score > bestScore {
			bestScore = score
			bestName = language.rule.Name
		}
	}

	alternative := ""
	if bestName != a.defaultLang {
		alternative = a.defaultLang
	}

	return Language{
		Name:        bestName,
		Confidence:  bestScore,
		Alternative: alternative,
	}
}
