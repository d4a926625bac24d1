package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-dev/searchlight/core"
)

func demoCorpus() []*core.Record {
	return []*core.Record{
		{
			Id: "api-gateway", SourceType: core.SourceTypeService,
			Name: "API Gateway", Description: "Main API gateway service",
			Status: "active", Tags: []string{"api", "gateway"}, Category: "general",
		},
		{
			Id: "user-service", SourceType: core.SourceTypeService,
			Name: "User Service", Description: "User management service",
			Status: "active", Tags: []string{"users", "auth"}, Category: "general",
		},
		{
			Id: "payment-service", SourceType: core.SourceTypeService,
			Name: "Payment Service", Description: "Payment processing service",
			Status: "error", Tags: []string{"payments", "finance"}, Category: "general",
		},
		{
			Id: "response-time", SourceType: core.SourceTypeMetric,
			Name: "Response Time", Description: "Average API response time",
			Status: "unknown", Category: "performance",
		},
		{
			Id: "admin-user", SourceType: core.SourceTypeUser,
			Name: "Admin User", Description: "System administrator",
			Status: "active", Category: "general",
		},
	}
}

func TestNewRanker(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := NewRanker()
		require.NoError(t, err)
		assert.Equal(t, DefaultFuzzyThreshold, r.threshold)
		assert.Equal(t, DefaultMaxResults, r.maxResults)
	})

	t.Run("custom threshold and cap", func(t *testing.T) {
		r, err := NewRanker(WithThreshold(0.8), WithMaxResults(10))
		require.NoError(t, err)
		assert.Equal(t, 0.8, r.threshold)
		assert.Equal(t, 10, r.maxResults)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		_, err := NewRanker(WithThreshold(0))
		assert.Equal(t, ErrInvalidThreshold, err)

		_, err = NewRanker(WithThreshold(1.5))
		assert.Equal(t, ErrInvalidThreshold, err)
	})

	t.Run("max results below one", func(t *testing.T) {
		_, err := NewRanker(WithMaxResults(0))
		assert.Equal(t, ErrInvalidMaxResults, err)
	})
}

func TestSearch(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)
	corpus := demoCorpus()

	t.Run("exact substring scores one", func(t *testing.T) {
		results := r.Search("gateway", corpus, core.DefaultFilters())
		require.NotEmpty(t, results)
		assert.Equal(t, "api-gateway", results[0].Record.Id)
		assert.Equal(t, 1.0, results[0].RelevanceScore)
	})

	t.Run("single-word typo still matches", func(t *testing.T) {
		results := r.Search("gatway", corpus, core.DefaultFilters())
		require.NotEmpty(t, results)
		assert.Equal(t, "api-gateway", results[0].Record.Id)
		assert.GreaterOrEqual(t, results[0].RelevanceScore, DefaultFuzzyThreshold)
		assert.Less(t, results[0].RelevanceScore, 1.0)
		assert.Empty(t, results[0].MatchedFields)
	})

	t.Run("query casing is irrelevant", func(t *testing.T) {
		lower := r.Search("payment", corpus, core.DefaultFilters())
		upper := r.Search("PAYMENT", corpus, core.DefaultFilters())
		require.Len(t, upper, len(lower))
		for i := range lower {
			assert.Equal(t, lower[i].Record.Id, upper[i].Record.Id)
		}
	})

	t.Run("unrelated query matches nothing", func(t *testing.T) {
		results := r.Search("zzzzqqqq", corpus, core.DefaultFilters())
		assert.Empty(t, results)
	})

	t.Run("type filter narrows results", func(t *testing.T) {
		filters := core.FilterState{Type: "services", Status: core.FilterAll}
		results := r.Search("service", corpus, filters)
		require.NotEmpty(t, results)
		for _, res := range results {
			assert.Equal(t, core.SourceTypeService, res.Record.SourceType)
		}
	})

	t.Run("status filter narrows results", func(t *testing.T) {
		filters := core.FilterState{Type: core.FilterAll, Status: "error"}
		results := r.Search("service", corpus, filters)
		require.Len(t, results, 1)
		assert.Equal(t, "payment-service", results[0].Record.Id)
	})

	t.Run("results ordered by descending score", func(t *testing.T) {
		results := r.Search("user", corpus, core.DefaultFilters())
		require.NotEmpty(t, results)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].RelevanceScore, results[i].RelevanceScore)
		}
	})

	t.Run("equal scores keep corpus order", func(t *testing.T) {
		results := r.Search("service", corpus, core.DefaultFilters())
		var exact []string
		for _, res := range results {
			if res.RelevanceScore == 1.0 {
				exact = append(exact, res.Record.Id)
			}
		}
		assert.Equal(t, []string{"api-gateway", "user-service", "payment-service"}, exact)
	})

	t.Run("result cap truncates", func(t *testing.T) {
		capped, err := NewRanker(WithMaxResults(2))
		require.NoError(t, err)
		results := capped.Search("service", corpus, core.DefaultFilters())
		assert.Len(t, results, 2)
	})

	t.Run("nil records are skipped", func(t *testing.T) {
		withNil := append([]*core.Record{nil}, corpus...)
		results := r.Search("gateway", withNil, core.DefaultFilters())
		require.NotEmpty(t, results)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		first := r.Search("service", corpus, core.DefaultFilters())
		second := r.Search("service", corpus, core.DefaultFilters())
		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].Record.Id, second[i].Record.Id)
			assert.Equal(t, first[i].RelevanceScore, second[i].RelevanceScore)
		}
	})
}

func TestRelevanceScore(t *testing.T) {
	t.Run("substring hit", func(t *testing.T) {
		record := &core.Record{Name: "API Gateway", SourceType: core.SourceTypeService}
		assert.Equal(t, 1.0, relevanceScore("gateway", record))
	})

	t.Run("fuzzy score is normalized distance against full text", func(t *testing.T) {
		record := &core.Record{Name: "api", SourceType: "svc"}
		blob := record.SearchableText()

		// One edit away from the full searchable text.
		query := blob[:len(blob)-1] + "x"
		score := relevanceScore(query, record)
		assert.Less(t, score, 1.0)
		assert.GreaterOrEqual(t, score, DefaultFuzzyThreshold)
	})

	t.Run("distant query scores low", func(t *testing.T) {
		record := &core.Record{Name: "API Gateway", SourceType: core.SourceTypeService}
		assert.Less(t, relevanceScore("zzzz", record), DefaultFuzzyThreshold)
	})
}

func TestMatchedFields(t *testing.T) {
	record := &core.Record{
		Id: "api-gateway", SourceType: core.SourceTypeService,
		Name: "API Gateway", Description: "Main API gateway service",
		Tags: []string{"api", "gateway"}, Category: "general",
	}

	t.Run("name and description", func(t *testing.T) {
		fields := matchedFields("gateway", record)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "description")
	})

	t.Run("tags reported once", func(t *testing.T) {
		fields := matchedFields("api", record)
		count := 0
		for _, f := range fields {
			if f == "tags" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("pure fuzzy match has no fields", func(t *testing.T) {
		fields := matchedFields("gatexay", record)
		assert.Empty(t, fields)
	})
}
