package searchlight

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-dev/searchlight/core"
	"github.com/lumina-dev/searchlight/corpus"
	"github.com/lumina-dev/searchlight/session"
)

func demoSources() []corpus.Source {
	services := []core.Record{
		{Id: "api-gateway", Name: "API Gateway", Description: "Main API gateway service", Status: "active", Tags: []string{"api", "gateway"}},
		{Id: "payment-service", Name: "Payment Service", Description: "Payment processing service", Status: "error", Tags: []string{"payments"}},
	}
	metrics := []core.Record{
		{Id: "cpu-usage", Name: "CPU Usage", Description: "Server CPU utilization", Category: "infrastructure"},
	}

	return []corpus.Source{
		corpus.NewStaticSource(core.SourceTypeService, services),
		corpus.NewStaticSource(core.SourceTypeMetric, metrics),
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine("", demoSources(), WithInMemoryStorage())
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func waitForSettled(t *testing.T, sess *session.Controller) session.View {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		view := sess.CurrentView()
		if view.State != session.StateSearching {
			return view
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("search did not settle")
	return session.View{}
}

func TestEngine(t *testing.T) {
	t.Run("search before any load errors", func(t *testing.T) {
		engine := newTestEngine(t)

		sess, err := engine.NewSession()
		require.NoError(t, err)

		sess.OnSubmit("gateway")
		view := waitForSettled(t, sess)
		assert.Equal(t, session.StateError, view.State)
	})

	t.Run("refresh then search end to end", func(t *testing.T) {
		engine := newTestEngine(t)
		require.NoError(t, engine.RefreshCorpus(context.Background()))

		sess, err := engine.NewSession()
		require.NoError(t, err)

		sess.OnSubmit("gateway")
		view := waitForSettled(t, sess)
		require.Equal(t, session.StateResults, view.State)
		require.NotEmpty(t, view.Items)
		assert.Equal(t, "api-gateway", view.Items[0].Result.Record.Id)
	})

	t.Run("history survives across sessions", func(t *testing.T) {
		engine := newTestEngine(t)
		require.NoError(t, engine.RefreshCorpus(context.Background()))

		first, err := engine.NewSession()
		require.NoError(t, err)
		first.OnSubmit("payment errors")
		waitForSettled(t, first)

		second, err := engine.NewSession()
		require.NoError(t, err)

		history := second.History()
		require.NotEmpty(t, history)
		assert.Equal(t, "payment errors", history[0].Query)
	})

	t.Run("refresh invalidates session caches", func(t *testing.T) {
		engine := newTestEngine(t)
		require.NoError(t, engine.RefreshCorpus(context.Background()))

		sess, err := engine.NewSession()
		require.NoError(t, err)

		sess.OnSubmit("gateway")
		require.Equal(t, session.StateResults, waitForSettled(t, sess).State)

		require.NoError(t, engine.RefreshCorpus(context.Background()))
		sess.OnSubmit("gateway")
		assert.Equal(t, session.StateResults, waitForSettled(t, sess).State)
	})

	t.Run("close is idempotent for sessions", func(t *testing.T) {
		engine, err := NewEngine("", demoSources(), WithInMemoryStorage())
		require.NoError(t, err)

		_, err = engine.NewSession()
		require.NoError(t, err)
		assert.NoError(t, engine.Close())
	})
}

func TestEngineOnDisk(t *testing.T) {
	dir := t.TempDir()

	engine, err := NewEngine(dir, demoSources())
	require.NoError(t, err)
	require.NoError(t, engine.RefreshCorpus(context.Background()))

	sess, err := engine.NewSession()
	require.NoError(t, err)
	sess.OnSubmit("cpu usage")
	waitForSettled(t, sess)
	require.NoError(t, engine.Close())

	// Reopen and confirm the history persisted.
	reopened, err := NewEngine(dir, demoSources())
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.HistoryRepository().Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "cpu usage", entries[0].Query)
}
