package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-dev/searchlight/core"
)

func TestHistoryEntrySerialization(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		entry := &core.HistoryEntry{
			Query:    "payment service errors",
			Count:    7,
			LastUsed: time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC),
		}

		data := MarshalHistoryEntry(entry)
		require.NotEmpty(t, data)

		decoded, err := UnmarshalHistoryEntry(data)
		require.NoError(t, err)
		assert.Equal(t, entry.Query, decoded.Query)
		assert.Equal(t, entry.Count, decoded.Count)
		assert.True(t, entry.LastUsed.Equal(decoded.LastUsed))
	})

	t.Run("sub-second precision survives", func(t *testing.T) {
		entry := &core.HistoryEntry{
			Query:    "gateway",
			Count:    1,
			LastUsed: time.Date(2025, 6, 14, 9, 30, 0, 123456000, time.UTC),
		}

		decoded, err := UnmarshalHistoryEntry(MarshalHistoryEntry(entry))
		require.NoError(t, err)
		assert.True(t, entry.LastUsed.Equal(decoded.LastUsed))
	})

	t.Run("size matches marshaled length", func(t *testing.T) {
		entry := core.HistoryEntry{Query: "cpu usage", Count: 3, LastUsed: time.Now().UTC()}
		data := MarshalHistoryEntry(&entry)
		assert.Len(t, data, HistoryEntryMUS.Size(entry))
	})

	t.Run("unicode query", func(t *testing.T) {
		entry := &core.HistoryEntry{Query: "métricas de servicio", Count: 2, LastUsed: time.Now().UTC()}
		decoded, err := UnmarshalHistoryEntry(MarshalHistoryEntry(entry))
		require.NoError(t, err)
		assert.Equal(t, entry.Query, decoded.Query)
	})

	t.Run("truncated data fails", func(t *testing.T) {
		entry := &core.HistoryEntry{Query: "gateway", Count: 1, LastUsed: time.Now().UTC()}
		data := MarshalHistoryEntry(entry)

		_, err := UnmarshalHistoryEntry(data[:2])
		assert.Error(t, err)
	})
}
