package session

// defaultPopularQueries are the stock phrases offered while input is
// too short to search.
var defaultPopularQueries = []string{
	"services status",
	"performance metrics",
	"active users",
	"error logs",
	"system health",
	"security alerts",
}

// suggestionItemsLocked builds the suggestion list for short input:
// one "show <type>" entry per source type the provider serves, then
// the popular phrases, truncated to the cap. No corpus scan and no
// ranking pass run for short input. Callers must hold the mutex.
func (c *Controller) suggestionItemsLocked() []Item {
	texts := make([]string, 0, c.cfg.SuggestionCap)
	for _, sourceType := range c.provider.SourceTypes() {
		texts = append(texts, "show "+string(sourceType))
	}
	texts = append(texts, c.popular...)
	if len(texts) > c.cfg.SuggestionCap {
		texts = texts[:c.cfg.SuggestionCap]
	}

	items := make([]Item, 0, len(texts))
	for _, text := range texts {
		items = append(items, Item{Kind: ItemKindSuggestion, Text: text})
	}
	return items
}
