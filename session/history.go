package session

import (
	"context"
	"sort"
	"time"

	"github.com/lumina-dev/searchlight/core"
)

// recordHistory upserts the query into the session history and
// persists the updated set. Re-running a query bumps its use count
// and freshness instead of adding a duplicate; the least recently
// used entries are evicted past the cap. Persistence failures are
// logged and do not interrupt the search.
func (c *Controller) recordHistory(query string) {
	now := time.Now().UTC()

	c.mu.Lock()
	updated := false
	for i := range c.entries {
		if c.entries[i].Query == query {
			c.entries[i].Count++
			c.entries[i].LastUsed = now
			updated = true
			break
		}
	}
	if !updated {
		c.entries = append(c.entries, core.HistoryEntry{
			Query:    query,
			Count:    1,
			LastUsed: now,
		})
	}

	sort.SliceStable(c.entries, func(i, j int) bool {
		return c.entries[i].LastUsed.After(c.entries[j].LastUsed)
	})
	if len(c.entries) > c.cfg.HistoryCap {
		c.entries = c.entries[:c.cfg.HistoryCap]
	}

	snapshot := make([]core.HistoryEntry, len(c.entries))
	copy(snapshot, c.entries)
	c.mu.Unlock()

	if err := c.history.Save(context.Background(), snapshot); err != nil {
		c.logger.Warn("failed to persist search history", "error", err)
	}
}

// recentItemsLocked returns the most recent history entries as
// activatable items. Callers must hold the mutex.
func (c *Controller) recentItemsLocked() []Item {
	n := min(len(c.entries), c.cfg.RecentShown)
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		entry := c.entries[i]
		items = append(items, Item{
			Kind:  ItemKindRecent,
			Text:  entry.Query,
			Entry: &entry,
		})
	}
	return items
}
