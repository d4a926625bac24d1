package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer()
	require.NoError(t, err)
	return a
}

func TestNewAnalyzer(t *testing.T) {
	t.Run("default rules compile", func(t *testing.T) {
		a, err := NewAnalyzer()
		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("bad intent pattern rejected", func(t *testing.T) {
		rules := DefaultRules()
		rules.Intents = append(rules.Intents, IntentRule{
			Name:     "broken",
			Patterns: []string{`(unclosed`},
			Weight:   1,
		})
		_, err := NewAnalyzer(WithRules(rules))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRules)
	})

	t.Run("bad entity pattern rejected", func(t *testing.T) {
		rules := DefaultRules()
		rules.Entities = append(rules.Entities, EntityRule{
			Type:     "broken",
			Patterns: []string{`[`},
		})
		_, err := NewAnalyzer(WithRules(rules))
		assert.ErrorIs(t, err, ErrInvalidRules)
	})
}

func TestClassifyIntent(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "search phrasing", text: "search for payment service", want: "search"},
		{name: "navigation phrasing", text: "go to the dashboard", want: "navigation"},
		{name: "information phrasing", text: "what is the api gateway", want: "information"},
		{name: "monitoring phrasing", text: "status of payment service", want: "monitoring"},
		{name: "troubleshooting phrasing", text: "error with payment service", want: "troubleshooting"},
		{name: "no signal", text: "zebra", want: IntentUnknown},
		{name: "empty text", text: "", want: IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := a.classifyIntent(tt.text)
			assert.Equal(t, tt.want, intent.Name)
			if tt.want != IntentUnknown {
				assert.Greater(t, intent.Confidence, 0.0)
				assert.LessOrEqual(t, intent.Confidence, 1.0)
			} else {
				assert.Zero(t, intent.Confidence)
			}
		})
	}

	t.Run("keyword hit without pattern still scores", func(t *testing.T) {
		intent := a.classifyIntent("gateway status")
		assert.Equal(t, "monitoring", intent.Name)
		assert.Contains(t, intent.MatchedKeywords, "status")
		assert.Empty(t, intent.MatchedPatterns)
	})
}

func TestExtractEntities(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("service entity from suffix form", func(t *testing.T) {
		entities := a.extractEntities("payment-service error for 3 days")
		services := entitiesOfType(entities, "service")
		require.NotEmpty(t, services)
		assert.Equal(t, "payment", services[0].Value)
		assert.Equal(t, 0.8, services[0].Confidence)
		assert.Equal(t, 0, services[0].Position)
	})

	t.Run("time entity keeps the captured amount", func(t *testing.T) {
		entities := a.extractEntities("payment-service error for 3 days")
		times := entitiesOfType(entities, "time")
		require.NotEmpty(t, times)
		assert.Equal(t, "3", times[0].Value)
	})

	t.Run("url entity keeps the whole domain", func(t *testing.T) {
		entities := a.extractEntities("open status.example.com now")
		urls := entitiesOfType(entities, "url")
		require.NotEmpty(t, urls)
		assert.Equal(t, "status.example.com", urls[0].Value)
	})

	t.Run("overlapping types are all kept", func(t *testing.T) {
		entities := a.extractEntities("show cpu stats for the last week")
		types := make(map[string]bool)
		for _, e := range entities {
			types[e.Type] = true
		}
		assert.True(t, types["metric"])
		assert.True(t, types["time"])
	})

	t.Run("no entities in plain text", func(t *testing.T) {
		entities := a.extractEntities("hello there")
		assert.Empty(t, entities)
	})
}

func TestAnalyzeSentiment(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("negative with intensifier", func(t *testing.T) {
		s := a.analyzeSentiment("the service is extremely broken")
		assert.Equal(t, SentimentNegative, s.Label)
		assert.InDelta(t, -2.0, s.Score, 1e-9)
		assert.Equal(t, 1, s.WordCount)
	})

	t.Run("positive", func(t *testing.T) {
		s := a.analyzeSentiment("everything is working great")
		assert.Equal(t, SentimentPositive, s.Label)
		assert.Greater(t, s.Score, 0.2)
		assert.Equal(t, 2, s.WordCount)
	})

	t.Run("neutral without lexicon words", func(t *testing.T) {
		s := a.analyzeSentiment("show me the dashboard")
		assert.Equal(t, SentimentNeutral, s.Label)
		assert.Zero(t, s.Score)
		assert.Zero(t, s.WordCount)
	})

	t.Run("dampening modifier keeps score small", func(t *testing.T) {
		s := a.analyzeSentiment("it is slightly slow")
		assert.InDelta(t, -0.6, s.Score, 1e-9)
		assert.Equal(t, SentimentNegative, s.Label)
	})

	t.Run("mixed polarity averages", func(t *testing.T) {
		s := a.analyzeSentiment("good but slow")
		assert.InDelta(t, 0.0, s.Score, 1e-9)
		assert.Equal(t, SentimentNeutral, s.Label)
		assert.Equal(t, 2, s.WordCount)
	})

	t.Run("confidence saturates at five bearing words", func(t *testing.T) {
		s := a.analyzeSentiment("bad terrible awful broken slow down")
		assert.Equal(t, 1.0, s.Confidence)
	})
}

func TestDetectLanguage(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("english", func(t *testing.T) {
		lang := a.detectLanguage("the service is broken and the gateway is slow")
		assert.Equal(t, "english", lang.Name)
		assert.Empty(t, lang.Alternative)
		assert.Greater(t, lang.Confidence, 0.0)
	})

	t.Run("spanish falls back to english alternative", func(t *testing.T) {
		lang := a.detectLanguage("el estado de que un servicio en la red por favor")
		assert.Equal(t, "spanish", lang.Name)
		assert.Equal(t, "english", lang.Alternative)
	})

	t.Run("no signal defaults", func(t *testing.T) {
		lang := a.detectLanguage("xyzzy")
		assert.Equal(t, "english", lang.Name)
		assert.Zero(t, lang.Confidence)
		assert.Empty(t, lang.Alternative)
	})
}

func TestAnalyze(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("combines sub-scorers", func(t *testing.T) {
		analysis := a.Analyze("search for payment-service errors")

		assert.Equal(t, "search for payment-service errors", analysis.OriginalText)
		assert.Equal(t, "search", analysis.Intent.Name)
		assert.NotEmpty(t, analysis.Entities)
		assert.Greater(t, analysis.Confidence, 0.0)
		assert.LessOrEqual(t, analysis.Confidence, 1.0)
		assert.False(t, analysis.Timestamp.IsZero())
	})

	t.Run("never fails on empty input", func(t *testing.T) {
		analysis := a.Analyze("")
		assert.Equal(t, IntentUnknown, analysis.Intent.Name)
		assert.Empty(t, analysis.Entities)
	})

	t.Run("suggestions are capped at three", func(t *testing.T) {
		analysis := a.Analyze("search for the extremely broken payment-service user account")
		assert.LessOrEqual(t, len(analysis.Suggestions), 3)
		assert.NotEmpty(t, analysis.Suggestions)
	})

	t.Run("negative sentiment adds status hints when room remains", func(t *testing.T) {
		analysis := a.Analyze("everything broken")
		require.Equal(t, SentimentNegative, analysis.Sentiment.Label)
		joined := strings.Join(analysis.Suggestions, " ")
		assert.Contains(t, joined, "status")
	})
}

func TestEnhanceQuery(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("search intent appends expansion", func(t *testing.T) {
		query := "search for payments"
		analysis := a.Analyze(query)
		require.Equal(t, "search", analysis.Intent.Name)

		enhanced := a.EnhanceQuery(query, analysis)
		assert.Equal(t, "search for payments search results", enhanced)
	})

	t.Run("time entity values are appended", func(t *testing.T) {
		query := "error with payments in the last 3 days"
		analysis := a.Analyze(query)

		enhanced := a.EnhanceQuery(query, analysis)
		assert.True(t, strings.HasPrefix(enhanced, query))
		assert.Contains(t, enhanced, " 3")
	})

	t.Run("unknown intent passes through", func(t *testing.T) {
		query := "zebra"
		analysis := a.Analyze(query)
		require.Equal(t, IntentUnknown, analysis.Intent.Name)
		assert.Equal(t, query, a.EnhanceQuery(query, analysis))
	})
}
