package analyze

// IntentRule describes one intent category: the keywords and regex
// patterns that signal it, the weight applied to its raw score, the
// terms appended to enhanced queries when it wins, and the advisory
// suggestions shown for it.
type IntentRule struct {
	Name        string   `yaml:"name"`
	Keywords    []string `yaml:"keywords"`
	Patterns    []string `yaml:"patterns"`
	Weight      float64  `yaml:"weight"`
	Expansion   string   `yaml:"expansion,omitempty"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// EntityRule describes one entity type as a list of regex patterns.
// Every pattern match emits a separate entity; overlapping matches
// across types are intentionally not deduplicated.
type EntityRule struct {
	Type     string   `yaml:"type"`
	Patterns []string `yaml:"patterns"`
}

// SentimentLexicon holds the polarity word lists and the intensity
// modifiers that multiply the weight of the word following them.
type SentimentLexicon struct {
	Positive  []string           `yaml:"positive"`
	Negative  []string           `yaml:"negative"`
	Neutral   []string           `yaml:"neutral"`
	Modifiers map[string]float64 `yaml:"modifiers"`
}

// LanguageRule describes one detectable language.
type LanguageRule struct {
	Name        string   `yaml:"name"`
	Patterns    []string `yaml:"patterns"`
	CommonWords []string `yaml:"common_words"`
}

// Rules is the full rule-table set driving an Analyzer. Order matters:
// intents and languages are evaluated in declared order, and score
// ties keep the earlier entry.
type Rules struct {
	Intents         []IntentRule     `yaml:"intents"`
	Entities        []EntityRule     `yaml:"entities"`
	Sentiment       SentimentLexicon `yaml:"sentiment"`
	Languages       []LanguageRule   `yaml:"languages"`
	DefaultLanguage string           `yaml:"default_language"`
}

// DefaultRules returns the built-in rule tables.
func DefaultRules() Rules {
	return Rules{
		Intents: []IntentRule{
			{
				Name:      "search",
				Keywords:  []string{"search", "find", "look for", "show me", "where is", "how to"},
				Patterns:  []string{`(?i)search for (.+)`, `(?i)find (.+)`, `(?i)show me (.+)`, `(?i)where is (.+)`},
				Weight:    0.8,
				Expansion: "search results",
				Suggestions: []string{
					"Try being more specific about what you want to find",
					"Consider adding filters to narrow down results",
				},
			},
			{
				Name:     "navigation",
				Keywords: []string{"go to", "navigate to", "open", "visit", "access"},
				Patterns: []string{`(?i)go to (.+)`, `(?i)navigate to (.+)`, `(?i)open (.+)`, `(?i)visit (.+)`},
				Weight:   0.9,
			},
			{
				Name:     "information",
				Keywords: []string{"what is", "tell me about", "explain", "describe", "information about"},
				Patterns: []string{`(?i)what is (.+)`, `(?i)tell me about (.+)`, `(?i)explain (.+)`, `(?i)describe (.+)`},
				Weight:   0.85,
			},
			{
				Name:     "action",
				Keywords: []string{"create", "add", "delete", "update", "modify", "change"},
				Patterns: []string{`(?i)create (.+)`, `(?i)add (.+)`, `(?i)delete (.+)`, `(?i)update (.+)`},
				Weight:   0.9,
			},
			{
				Name:     "help",
				Keywords: []string{"help", "how do i", "how to", "can you", "support"},
				Patterns: []string{`(?i)help (.+)`, `(?i)how do i (.+)`, `(?i)how to (.+)`, `(?i)can you (.+)`},
				Weight:   0.8,
			},
			{
				Name:      "monitoring",
				Keywords:  []string{"status", "health", "performance", "metrics", "monitor"},
				Patterns:  []string{`(?i)status of (.+)`, `(?i)health of (.+)`, `(?i)performance of (.+)`},
				Weight:    0.85,
				Expansion: "status health metrics",
				Suggestions: []string{
					"Check system health dashboard",
					"View performance metrics",
				},
			},
			{
				Name:      "troubleshooting",
				Keywords:  []string{"error", "problem", "issue", "broken", "not working", "failed"},
				Patterns:  []string{`(?i)error with (.+)`, `(?i)problem with (.+)`, `(?i)issue with (.+)`},
				Weight:    0.9,
				Expansion: "error problem solution",
				Suggestions: []string{
					"Check error logs for more details",
					"Contact support if the issue persists",
				},
			},
		},
		Entities: []EntityRule{
			{Type: "service", Patterns: []string{`(?i)(\w+)-service`, `(?i)(\w+) api`, `(?i)(\w+) endpoint`}},
			{Type: "metric", Patterns: []string{`(?i)(\w+) metric`, `(?i)(\w+) performance`, `(?i)(\w+) stats`}},
			{Type: "user", Patterns: []string{`(?i)(\w+) user`, `(?i)user (\w+)`, `(?i)(\w+) account`}},
			{Type: "system", Patterns: []string{`(?i)(\w+) system`, `(?i)(\w+) server`, `(?i)(\w+) database`}},
			{Type: "time", Patterns: []string{`(?i)(\d+)\s*(?:hour|day|week|month|year)s?`, `(?i)last (\w+)`, `(\d+):(\d+)`}},
			{Type: "number", Patterns: []string{`\d+`, `(?i)(\d+\.?\d*)\s*(?:%|percent)`, `\$(\d+)`}},
			{Type: "url", Patterns: []string{`(?i)https?://[\w\-.]+`, `(?i)www\.[\w\-.]+`, `(?i)[\w\-.]+\.(?:com|org|net)`}},
		},
		Sentiment: SentimentLexicon{
			Positive:  []string{"good", "great", "excellent", "amazing", "fantastic", "perfect", "working", "healthy", "fast", "efficient"},
			Negative:  []string{"bad", "terrible", "awful", "broken", "slow", "error", "problem", "issue", "failed", "down"},
			Neutral:   []string{"okay", "average", "normal", "standard", "regular", "typical"},
			Modifiers: map[string]float64{"very": 1.5, "extremely": 2.0, "quite": 1.2, "somewhat": 0.8, "slightly": 0.6},
		},
		Languages: []LanguageRule{
			{
				Name:        "english",
				Patterns:    []string{`(?i)the\s+\w+`, `(?i)and\s+\w+`, `(?i)is\s+\w+`, `(?i)are\s+\w+`},
				CommonWords: []string{"the", "and", "is", "are", "for", "with", "this", "that"},
			},
			{
				Name:        "spanish",
				Patterns:    []string{`(?i)el\s+\w+`, `(?i)la\s+\w+`, `(?i)de\s+\w+`, `(?i)que\s+\w+`},
				CommonWords: []string{"el", "la", "de", "que", "en", "un", "una", "por"},
			},
			{
				Name:        "french",
				Patterns:    []string{`(?i)le\s+\w+`, `(?i)la\s+\w+`, `(?i)de\s+\w+`, `(?i)du\s+\w+`},
				CommonWords: []string{"le", "la", "de", "du", "et", "en", "un", "une"},
			},
			{
				Name:        "german",
				Patterns:    []string{`(?i)der\s+\w+`, `(?i)die\s+\w+`, `(?i)das\s+\w+`, `(?i)und\s+\w+`},
				CommonWords: []string{"der", "die", "das", "und", "in", "zu", "den", "von"},
			},
		},
		DefaultLanguage: "english",
	}
}
