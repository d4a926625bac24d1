package rank

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/lumina-dev/searchlight/core"
	"github.com/lumina-dev/searchlight/match"
)

const (
	// DefaultFuzzyThreshold is the minimum normalized similarity a
	// record needs to qualify as a fuzzy match.
	DefaultFuzzyThreshold = 0.6

	// DefaultMaxResults caps how many scored results a search returns.
	DefaultMaxResults = 50
)

// Ranker scores corpus records against queries.
type Ranker struct {
	threshold  float64
	maxResults int
	logger     *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithThreshold sets the fuzzy match threshold.
// Default is DefaultFuzzyThreshold.
func WithThreshold(threshold float64) Option {
	return func(r *Ranker) error {
		if threshold <= 0 || threshold > 1 {
			return ErrInvalidThreshold
		}
		r.threshold = threshold
		return nil
	}
}

// WithMaxResults sets the result cap.
// Default is DefaultMaxResults.
func WithMaxResults(maxResults int) Option {
	return func(r *Ranker) error {
		if maxResults < 1 {
			return ErrInvalidMaxResults
		}
		r.maxResults = maxResults
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(opts ...Option) (*Ranker, error) {
	r := &Ranker{
		threshold:  DefaultFuzzyThreshold,
		maxResults: DefaultMaxResults,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Search scores every corpus record against the query, applies the
// filters, and returns qualifying records ordered by descending
// relevance. Records scoring below the fuzzy threshold are dropped,
// and the result set is truncated to the configured cap.
//
// Search is deterministic: for a fixed corpus and query the output
// order is always the same. Nil or malformed records are skipped
// rather than reported.
func (r *Ranker) Search(query string, corpus []*core.Record, filters core.FilterState) []*core.ScoredResult {
	queryLower := strings.ToLower(query)
	results := make([]*core.ScoredResult, 0)

	for _, record := range corpus {
		if record == nil {
			continue
		}
		if !filters.MatchesType(record.SourceType) {
			continue
		}
		if !filters.MatchesStatus(record.Status) {
			continue
		}

		score := relevanceScore(queryLower, record)
		if score < r.threshold {
			continue
		}

		results = append(results, &core.ScoredResult{
			Record:         record,
			RelevanceScore: score,
			MatchedFields:  matchedFields(queryLower, record),
		})
	}

	// Stable sort keeps corpus order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	if len(results) > r.maxResults {
		results = results[:r.maxResults]
	}

	return results
}

// relevanceScore computes the relevance of one record: 1.0 when the
// searchable blob contains the lowercased query as a substring,
// normalized edit-distance similarity otherwise. The fuzzy score is
// the best of the whole-blob comparison and the per-token
// comparisons, so a one-word typo still scores against the word it
// almost matches rather than drowning in the full blob.
func relevanceScore(queryLower string, record *core.Record) float64 {
	blob := record.SearchableText()
	if strings.Contains(blob, queryLower) {
		return 1.0
	}

	best := match.Similarity(queryLower, blob)
	for _, token := range strings.Fields(blob) {
		if sim := match.Similarity(queryLower, token); sim > best {
			best = sim
		}
	}
	return best
}
