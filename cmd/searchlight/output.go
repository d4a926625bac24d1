package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lumina-dev/searchlight/analyze"
	"github.com/lumina-dev/searchlight/core"
)

var (
	nameColor   = color.New(color.Bold)
	matchColor  = color.New(color.FgYellow, color.Bold)
	typeColor   = color.New(color.FgCyan)
	scoreColor  = color.New(color.FgGreen)
	statusColor = map[string]*color.Color{
		"active":   color.New(color.FgGreen),
		"error":    color.New(color.FgRed),
		"inactive": color.New(color.FgHiBlack),
	}
)

// highlight wraps case-insensitive occurrences of the query inside
// text with the match color.
func highlight(text, query string) string {
	if query == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	var b strings.Builder
	for {
		i := strings.Index(lowerText, lowerQuery)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:i])
		b.WriteString(matchColor.Sprint(text[i : i+len(query)]))
		text = text[i+len(query):]
		lowerText = lowerText[i+len(lowerQuery):]
	}
}

func printResult(rank int, res *core.ScoredResult, query string) {
	status := res.Record.Status
	if c, ok := statusColor[status]; ok {
		status = c.Sprint(status)
	}

	fmt.Printf("%2d. %s  %s  %s  %s\n",
		rank,
		nameColor.Sprint(highlight(res.Record.Name, query)),
		typeColor.Sprint(res.Record.SourceType),
		status,
		scoreColor.Sprintf("%.2f", res.RelevanceScore),
	)
	if res.Record.Description != "" {
		fmt.Printf("    %s\n", highlight(res.Record.Description, query))
	}
	if len(res.MatchedFields) > 0 {
		fmt.Printf("    matched: %s\n", strings.Join(res.MatchedFields, ", "))
	}
}

func printAnalysis(a analyze.Analysis, enhanced string) {
	fmt.Printf("intent:     %s (%.2f)\n", typeColor.Sprint(a.Intent.Name), a.Intent.Confidence)
	for _, e := range a.Entities {
		fmt.Printf("entity:     %s=%q at %d\n", typeColor.Sprint(e.Type), e.Value, e.Position)
	}
	fmt.Printf("sentiment:  %s (score %.2f, confidence %.2f)\n", a.Sentiment.Label, a.Sentiment.Score, a.Sentiment.Confidence)
	fmt.Printf("language:   %s", a.Language.Name)
	if a.Language.Alternative != "" {
		fmt.Printf(" (alternative: %s)", a.Language.Alternative)
	}
	fmt.Println()
	fmt.Printf("confidence: %.2f\n", a.Confidence)
	if enhanced != a.OriginalText {
		fmt.Printf("enhanced:   %s\n", enhanced)
	}
	for _, s := range a.Suggestions {
		fmt.Printf("suggestion: %s\n", s)
	}
}
