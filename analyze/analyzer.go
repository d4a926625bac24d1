package analyze

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"
)

// Analysis is the full result of analyzing one query.
// Created fresh per query; never persisted.
type Analysis struct {
	OriginalText string
	Timestamp    time.Time
	Intent       Intent
	Entities     []Entity
	Sentiment    Sentiment
	Language     Language

	// Confidence is the weighted combination of the sub-scorer
	// confidences: 0.4 intent + 0.3 mean entity + 0.2 sentiment +
	// 0.1 language, capped at 1.
	Confidence float64

	// Suggestions holds up to 3 advisory hints derived from the
	// detected intent, entities, and sentiment.
	Suggestions []string
}

// Intent is the inferred high-level purpose of a query.
type Intent struct {
	Name            string
	Confidence      float64
	MatchedKeywords []string
	MatchedPatterns []string
}

// IntentUnknown is the intent assigned when no rule scores above zero.
const IntentUnknown = "unknown"

// Entity is a typed substring extracted from a query.
type Entity struct {
	Type       string
	Value      string
	Confidence float64
	Position   int
}

// Sentiment labels for Sentiment.Label.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Sentiment is the polarity scoring of a query.
type Sentiment struct {
	Label      string
	Score      float64
	Confidence float64

	// WordCount is the number of sentiment-bearing tokens found.
	WordCount int
}

// Language is the detected query language.
type Language struct {
	Name       string
	Confidence float64

	// Alternative names the fallback language when the winner is not
	// the default; empty otherwise.
	Alternative string
}

// compiled rule forms, built once at construction
type compiledIntent struct {
	rule     IntentRule
	patterns []*regexp.Regexp
}

type compiledEntity struct {
	entityType string
	patterns   []*regexp.Regexp
}

type compiledLanguage struct {
	rule     LanguageRule
	patterns []*regexp.Regexp
}

// Analyzer classifies queries against a set of rule tables.
// Safe for concurrent use once constructed.
type Analyzer struct {
	intents     []compiledIntent
	entities    []compiledEntity
	languages   []compiledLanguage
	lexicon     sentimentWeights
	modifiers   map[string]float64
	defaultLang string
	logger      *slog.Logger
}

// Option configures an Analyzer.
type Option func(*analyzerOptions)

type analyzerOptions struct {
	rules  Rules
	logger *slog.Logger
}

// WithRules replaces the built-in rule tables.
func WithRules(rules Rules) Option {
	return func(o *analyzerOptions) {
		o.rules = rules
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *analyzerOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// NewAnalyzer creates an analyzer, compiling every rule pattern.
// Returns ErrInvalidRules (wrapped) if any pattern does not compile.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	options := &analyzerOptions{
		rules:  DefaultRules(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	a := &Analyzer{
		lexicon:     newSentimentWeights(options.rules.Sentiment),
		modifiers:   options.rules.Sentiment.Modifiers,
		defaultLang: options.rules.DefaultLanguage,
		logger:      options.logger,
	}
	if a.defaultLang == "" {
		a.defaultLang = "english"
	}

	for _, rule := range options.rules.Intents {
		compiled, err := compilePatterns(rule.Patterns)
		if err != nil {
			return nil, fmt.Errorf("%w: intent %q: %w", ErrInvalidRules, rule.Name, err)
		}
		a.intents = append(a.intents, compiledIntent{rule: rule, patterns: compiled})
	}
	for _, rule := range options.rules.Entities {
		compiled, err := compilePatterns(rule.Patterns)
		if err != nil {
			return nil, fmt.Errorf("%w: entity %q: %w", ErrInvalidRules, rule.Type, err)
		}
		a.entities = append(a.entities, compiledEntity{entityType: rule.Type, patterns: compiled})
	}
	for _, rule := range options.rules.Languages {
		compiled, err := compilePatterns(rule.Patterns)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %w", ErrInvalidRules, rule.Name, err)
		}
		a.languages = append(a.languages, compiledLanguage{rule: rule, patterns: compiled})
	}

	return a, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Analyze runs all four sub-scorers over the text and combines their
// confidences. Analyze never fails: empty or malformed input yields
// an unknown-intent analysis with zero confidence.
func (a *Analyzer) Analyze(text string) Analysis {
	analysis := Analysis{
		OriginalText: text,
		Timestamp:    time.Now().UTC(),
		Intent:       a.classifyIntent(text),
		Entities:     a.extractEntities(text),
		Sentiment:    a.analyzeSentiment(text),
		Language:     a.detectLanguage(text),
	}

	analysis.Confidence = overallConfidence(&analysis)
	analysis.Suggestions = a.suggestions(&analysis)

	return analysis
}

// overallConfidence combines the sub-scorer confidences with fixed
// weights: 0.4 intent, 0.3 mean entity (0 without entities),
// 0.2 sentiment, 0.1 language. Capped at 1.
func overallConfidence(analysis *Analysis) float64 {
	confidence := analysis.Intent.Confidence * 0.4

	if len(analysis.Entities) > 0 {
		var sum float64
		for _, entity := range analysis.Entities {
			sum += entity.Confidence
		}
		confidence += sum / float64(len(analysis.Entities)) * 0.3
	}

	confidence += analysis.Sentiment.Confidence * 0.2
	confidence += analysis.Language.Confidence * 0.1

	return min(confidence, 1)
}
