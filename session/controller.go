package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lumina-dev/searchlight/analyze"
	"github.com/lumina-dev/searchlight/core"
	"github.com/lumina-dev/searchlight/rank"
	"github.com/lumina-dev/searchlight/storage"
)

// CorpusProvider yields the current searchable corpus. A nil snapshot
// means no corpus has been loaded yet. SourceTypes must be cheap: it
// feeds the suggestion surface on every short keystroke.
type CorpusProvider interface {
	Snapshot() []*core.Record
	SourceTypes() []core.SourceType
}

// Controller drives one interactive search session. All methods are
// safe for concurrent use.
type Controller struct {
	cfg      Config
	provider CorpusProvider
	history  storage.HistoryRepository
	ranker   *rank.Ranker
	analyzer *analyze.Analyzer
	cache    *gocache.Cache
	logger   *slog.Logger
	popular  []string

	mu       sync.Mutex
	view     View
	filters  core.FilterState
	entries  []core.HistoryEntry
	seq      uint64
	inputGen uint64
	timer    *time.Timer
}

// Option configures a Controller.
type Option func(*Controller) error

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(c *Controller) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.cfg = cfg
		return nil
	}
}

// WithRanker replaces the default ranker.
func WithRanker(r *rank.Ranker) Option {
	return func(c *Controller) error {
		c.ranker = r
		return nil
	}
}

// WithAnalyzer replaces the default query analyzer.
func WithAnalyzer(a *analyze.Analyzer) Option {
	return func(c *Controller) error {
		c.analyzer = a
		return nil
	}
}

// WithPopularQueries replaces the stock suggestion phrases shown for
// short input.
func WithPopularQueries(queries []string) Option {
	return func(c *Controller) error {
		c.popular = queries
		return nil
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) error {
		c.logger = logger
		return nil
	}
}

// NewController creates a search session over the given corpus and
// history repository. Previously persisted history is loaded eagerly;
// a load failure is logged and the session starts with empty history.
func NewController(provider CorpusProvider, history storage.HistoryRepository, opts ...Option) (*Controller, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if history == nil {
		return nil, ErrHistoryRequired
	}

	c := &Controller{
		cfg:      DefaultConfig(),
		provider: provider,
		history:  history,
		popular:  defaultPopularQueries,
		view:     View{State: StateIdle, Selected: -1},
		filters:  core.DefaultFilters(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.ranker == nil {
		r, err := rank.NewRanker(rank.WithLogger(c.logger))
		if err != nil {
			return nil, err
		}
		c.ranker = r
	}
	if c.analyzer == nil {
		a, err := analyze.NewAnalyzer(analyze.WithLogger(c.logger))
		if err != nil {
			return nil, err
		}
		c.analyzer = a
	}
	if c.cfg.CacheTTL > 0 {
		c.cache = gocache.New(c.cfg.CacheTTL, 2*c.cfg.CacheTTL)
	}

	entries, err := history.Load(context.Background())
	if err != nil {
		c.logger.Warn("failed to load search history", "error", err)
	} else {
		c.entries = entries
	}

	return c, nil
}

// OnQueryInput reports a change of the query field. Empty input
// returns to Idle, input shorter than the minimum shows suggestions,
// and qualifying input schedules a debounced search. Only the last
// keystroke within the debounce window dispatches.
func (c *Controller) OnQueryInput(text string) {
	query := strings.TrimSpace(text)

	c.mu.Lock()
	c.inputGen++
	gen := c.inputGen
	c.cancelTimerLocked()

	switch {
	case query == "":
		c.seq++ // invalidate any in-flight search
		c.view = View{State: StateIdle, Selected: -1}
		c.mu.Unlock()

	case len([]rune(query)) < c.cfg.MinQueryLength:
		c.seq++
		c.view = View{
			State:    StateSuggesting,
			Query:    query,
			Items:    c.suggestionItemsLocked(),
			Selected: -1,
		}
		c.mu.Unlock()

	default:
		c.view.Query = query
		c.timer = time.AfterFunc(c.cfg.DebounceDelay, func() {
			c.mu.Lock()
			stale := gen != c.inputGen
			c.mu.Unlock()
			if stale {
				return
			}
			c.startSearch(query)
		})
		c.mu.Unlock()
	}
}

// OnSubmit runs a search for the given text immediately, bypassing
// the debounce window. Input below the minimum length is ignored.
func (c *Controller) OnSubmit(text string) {
	query := strings.TrimSpace(text)
	if len([]rune(query)) < c.cfg.MinQueryLength {
		return
	}

	c.mu.Lock()
	c.inputGen++
	c.cancelTimerLocked()
	c.mu.Unlock()

	c.startSearch(query)
}

// OnFocus reports that the query field gained focus. With empty
// input it surfaces the most recent history entries.
func (c *Controller) OnFocus() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view.Query != "" {
		return
	}

	items := c.recentItemsLocked()
	if len(items) == 0 {
		return
	}
	c.view = View{State: StateSuggesting, Items: items, Selected: -1}
}

// OnFilterChange applies new filters. An active qualifying query is
// re-searched immediately, without debounce.
func (c *Controller) OnFilterChange(filters core.FilterState) {
	c.mu.Lock()
	c.filters = filters
	c.invalidateCacheLocked()
	query := c.view.Query
	c.mu.Unlock()

	if len([]rune(query)) >= c.cfg.MinQueryLength {
		c.startSearch(query)
	}
}

// OnKeyboardEvent moves the keyboard cursor, activates the selected
// item, or dismisses the session. Unknown keys are ignored.
func (c *Controller) OnKeyboardEvent(key Key) {
	c.mu.Lock()

	switch key {
	case KeyArrowDown:
		if n := len(c.view.Items); n > 0 && c.view.Selected < n-1 {
			c.view.Selected++
		}
		c.mu.Unlock()

	case KeyArrowUp:
		if c.view.Selected > 0 {
			c.view.Selected--
		}
		c.mu.Unlock()

	case KeyEnter:
		if c.view.Selected < 0 || c.view.Selected >= len(c.view.Items) {
			c.mu.Unlock()
			return
		}
		text := c.view.Items[c.view.Selected].Text
		c.inputGen++
		c.cancelTimerLocked()
		c.view.Query = text
		c.mu.Unlock()
		c.startSearch(text)

	case KeyEscape:
		c.inputGen++
		c.seq++
		c.cancelTimerLocked()
		c.view = View{State: StateIdle, Selected: -1}
		c.mu.Unlock()

	default:
		c.mu.Unlock()
	}
}

// Retry re-runs the last query after an error.
func (c *Controller) Retry() {
	c.mu.Lock()
	query := c.view.Query
	c.mu.Unlock()

	if len([]rune(query)) >= c.cfg.MinQueryLength {
		c.startSearch(query)
	}
}

// CurrentView returns a snapshot of the session state. The Items
// slice is shared and must be treated as read-only.
func (c *Controller) CurrentView() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// History returns the current in-memory history, most recent first.
func (c *Controller) History() []core.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]core.HistoryEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// InvalidateCache drops all cached result sets. Call after the
// corpus is reloaded.
func (c *Controller) InvalidateCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateCacheLocked()
}

// Close cancels any pending debounce timer. It does not close the
// history repository, which the controller does not own.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputGen++
	c.seq++
	c.cancelTimerLocked()
}

func (c *Controller) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) invalidateCacheLocked() {
	if c.cache != nil {
		c.cache.Flush()
	}
}
