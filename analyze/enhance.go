package analyze

import (
	"fmt"
	"strings"
)

// maxSuggestions caps how many advisory hints an analysis carries.
const maxSuggestions = 3

// EnhanceQuery rewrites a query for dispatch by appending the
// expansion terms of the detected intent and the values of any
// extracted time entities. Queries with an unknown intent and no time
// entities pass through unchanged.
func (a *Analyzer) EnhanceQuery(query string, analysis Analysis) string {
	var b strings.Builder
	b.WriteString(query)

	if expansion := a.expansionFor(analysis.Intent.Name); expansion != "" {
		b.WriteString(" ")
		b.WriteString(expansion)
	}

	for _, entity := range entitiesOfType(analysis.Entities, "time") {
		b.WriteString(" ")
		b.WriteString(entity.Value)
	}

	return b.String()
}

// suggestions assembles the advisory hints for an analysis: the
// detected intent's declared hints, a focus hint per distinct entity
// type, and status-check hints when sentiment is negative. At most
// maxSuggestions survive, in that priority order.
func (a *Analyzer) suggestions(analysis *Analysis) []string {
	suggestions := append([]string{}, a.suggestionsFor(analysis.Intent.Name)...)

	seen := make(map[string]bool)
	for _, entity := range analysis.Entities {
		if seen[entity.Type] {
			continue
		}
		seen[entity.Type] = true
		suggestions = append(suggestions, fmt.Sprintf("Focus on %s related information", entity.Type))
	}

	if analysis.Sentiment.Label == SentimentNegative {
		suggestions = append(suggestions,
			"Consider checking system status",
			"Look for error reports or issues",
		)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
