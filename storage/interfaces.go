package storage

import (
	"context"

	"github.com/lumina-dev/searchlight/core"
)

// HistoryRepository persists search history entries.
// Implementations must be thread-safe and support concurrent access.
type HistoryRepository interface {
	// Load returns all persisted history entries ordered by LastUsed,
	// most recent first. An empty store yields an empty slice, not an
	// error.
	Load(ctx context.Context) ([]core.HistoryEntry, error)

	// Save replaces the full persisted history with entries.
	// The write is atomic: a failed save leaves the previous history
	// intact.
	Save(ctx context.Context, entries []core.HistoryEntry) error

	// Close closes the storage backend and releases resources.
	Close() error
}
