package session

import (
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lumina-dev/searchlight/core"
)

// startSearch claims a new search token, records the query in
// history, flips the view to Searching, and resolves the search on
// the calling goroutine. Callers must not hold the mutex.
func (c *Controller) startSearch(query string) {
	c.mu.Lock()
	c.seq++
	token := c.seq
	filters := c.filters
	c.view = View{State: StateSearching, Query: query, Selected: -1}
	c.mu.Unlock()

	c.recordHistory(query)
	c.resolveSearch(token, query, filters)
}

// resolveSearch runs analysis, ranking, and caching for one search
// token. The outcome is published only if the token is still the
// newest when it resolves; stale results are discarded. Panics from
// the ranking path are converted into the Error view state.
func (c *Controller) resolveSearch(token uint64, query string, filters core.FilterState) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("search failed", "query", query, "panic", r)
			c.publishError(token, query, fmt.Sprintf("search failed: %v", r))
		}
	}()

	analysis := c.analyzer.Analyze(query)
	dispatched := query
	if c.cfg.EnhanceQueries {
		dispatched = c.analyzer.EnhanceQuery(query, analysis)
	}

	results, err := c.rankedResults(dispatched, filters)
	if err != nil {
		c.logger.Warn("search unavailable", "query", query, "error", err)
		c.publishError(token, query, "search data is not available yet, try again shortly")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return
	}

	view := View{
		Query:    query,
		Analysis: &analysis,
		Selected: -1,
	}
	if len(results) == 0 {
		view.State = StateNoResults
	} else {
		view.State = StateResults
		view.Items = resultItems(results)
	}
	c.view = view
}

// rankedResults serves a search from the result cache when possible,
// falling back to a full ranking pass over the current corpus.
func (c *Controller) rankedResults(query string, filters core.FilterState) ([]*core.ScoredResult, error) {
	key := cacheKey(query, filters)
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return cached.([]*core.ScoredResult), nil
		}
	}

	corpus := c.provider.Snapshot()
	if corpus == nil {
		return nil, ErrCorpusUnavailable
	}

	results := c.ranker.Search(query, corpus, filters)
	if c.cache != nil {
		c.cache.Set(key, results, gocache.DefaultExpiration)
	}
	return results, nil
}

func (c *Controller) publishError(token uint64, query, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return
	}
	c.view = View{
		State:    StateError,
		Query:    query,
		Message:  message,
		Selected: -1,
	}
}

func cacheKey(query string, filters core.FilterState) string {
	return query + "|" + filters.Type + "|" + filters.Status
}

func resultItems(results []*core.ScoredResult) []Item {
	items := make([]Item, 0, len(results))
	for _, res := range results {
		items = append(items, Item{
			Kind:   ItemKindResult,
			Text:   res.Record.Name,
			Result: res,
		})
	}
	return items
}
