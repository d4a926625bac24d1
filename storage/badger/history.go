package badger

import (
	"context"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/lumina-dev/searchlight/core"
	"github.com/lumina-dev/searchlight/storage"
)

// historyRepository implements storage.HistoryRepository on BadgerDB.
// One key per entry under the history prefix; Save replaces the full
// set in a single transaction.
type historyRepository struct {
	backend *Backend
}

var _ storage.HistoryRepository = (*historyRepository)(nil)

// NewHistoryRepository creates a history repository on the given backend.
func NewHistoryRepository(backend *Backend) (storage.HistoryRepository, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &historyRepository{backend: backend}, nil
}

func (r *historyRepository) Load(ctx context.Context) ([]core.HistoryEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	entries := []core.HistoryEntry{}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(historyPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				entry, err := storage.UnmarshalHistoryEntry(val)
				if err != nil {
					return err
				}
				entries = append(entries, *entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Most recently used first.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastUsed.After(entries[j].LastUsed)
	})

	return entries, nil
}

func (r *historyRepository) Save(ctx context.Context, entries []core.HistoryEntry) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	for i := range entries {
		if err := core.ValidateHistoryEntry(&entries[i]); err != nil {
			return err
		}
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		// Drop the previous set so deleted and evicted entries do not
		// linger.
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(historyPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var stale [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			stale = append(stale, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range stale {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}

		for i := range entries {
			key := makeHistoryKey(entries[i].Query)
			if err := tx.Set(key, storage.MarshalHistoryEntry(&entries[i])); err != nil {
				return err
			}
		}
		return nil
	}, true)
}

func (r *historyRepository) Close() error {
	// The backend is shared and closed by its owner.
	return nil
}
