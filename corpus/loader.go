package corpus

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/lumina-dev/searchlight/core"
)

// Source supplies records for one source type. Implementations may
// call out to HTTP endpoints, local stores, or anything else; the
// loader only requires that failures surface as errors rather than
// malformed data.
type Source interface {
	// Type is the source type stamped onto every fetched record.
	Type() core.SourceType

	// Fetch returns the current record set for this source.
	Fetch(ctx context.Context) ([]core.Record, error)
}

// Loader merges records from a set of sources into one corpus.
type Loader struct {
	sources []Source
	pool    *ants.Pool
	logger  *slog.Logger

	mu         sync.Mutex
	generation uint64 // last issued load generation
	applied    uint64 // generation of the corpus currently visible
	corpus     []*core.Record
}

// Option configures a Loader.
type Option func(*loaderOptions)

type loaderOptions struct {
	poolSize int
	logger   *slog.Logger
}

// WithPoolSize sets the fetch worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(o *loaderOptions) {
		if size < 1 {
			size = 1
		}
		o.poolSize = size
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *loaderOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// NewLoader creates a loader over the given sources.
func NewLoader(sources []Source, opts ...Option) (*Loader, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	options := &loaderOptions{
		poolSize: poolSize,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	pool, err := ants.NewPool(options.poolSize)
	if err != nil {
		return nil, err
	}

	return &Loader{
		sources: sources,
		pool:    pool,
		logger:  options.logger,
	}, nil
}

// Load fetches every source concurrently, merges the results, and
// swaps the corpus atomically. A failing source contributes zero
// records and is reported through a *LoadError once all fetches have
// settled; the records from healthy sources are swapped in
// regardless. When loads overlap, only the most recently issued one
// gets to swap (last-write-wins).
func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	l.generation++
	generation := l.generation
	l.mu.Unlock()

	type fetchResult struct {
		records []core.Record
		err     error
	}

	results := make([]fetchResult, len(l.sources))
	var wg sync.WaitGroup

	for i, source := range l.sources {
		wg.Add(1)
		err := l.pool.Submit(func() {
			defer wg.Done()
			records, err := source.Fetch(ctx)
			results[i] = fetchResult{records: records, err: err}
		})
		if err != nil {
			// Pool rejected the task; run inline rather than lose the source.
			records, fetchErr := source.Fetch(ctx)
			results[i] = fetchResult{records: records, err: fetchErr}
			wg.Done()
		}
	}
	wg.Wait()

	failures := make(map[core.SourceType]error)
	merged := make([]*core.Record, 0)
	byKey := make(map[core.Key]int)

	for i, source := range l.sources {
		if results[i].err != nil {
			l.logger.Warn("corpus source fetch failed",
				"sourceType", source.Type(), "err", results[i].err)
			failures[source.Type()] = results[i].err
			continue
		}

		for _, fetched := range results[i].records {
			record := fetched
			record.SourceType = source.Type()
			core.NormalizeRecord(&record)

			if err := core.ValidateRecord(&record); err != nil {
				l.logger.Warn("skipping invalid record",
					"sourceType", source.Type(), "err", err)
				continue
			}

			// Later occurrences of the same (sourceType, id) replace
			// earlier ones in place, keeping corpus order stable.
			if idx, ok := byKey[record.Key()]; ok {
				merged[idx] = &record
				continue
			}
			byKey[record.Key()] = len(merged)
			merged = append(merged, &record)
		}
	}

	// Last-write-wins: a load that resolved after a newer one has
	// already been applied is discarded.
	l.mu.Lock()
	if generation > l.applied {
		l.corpus = merged
		l.applied = generation
	}
	l.mu.Unlock()

	if len(failures) > 0 {
		return &LoadError{Failures: failures}
	}
	return nil
}

// Snapshot returns the currently visible corpus. The returned slice
// is replaced wholesale on each successful load and must be treated
// as read-only.
func (l *Loader) Snapshot() []*core.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.corpus
}

// SourceTypes returns the distinct source types this loader serves,
// in declared order. Known without touching the corpus.
func (l *Loader) SourceTypes() []core.SourceType {
	seen := make(map[core.SourceType]struct{}, len(l.sources))
	types := make([]core.SourceType, 0, len(l.sources))
	for _, source := range l.sources {
		if _, ok := seen[source.Type()]; ok {
			continue
		}
		seen[source.Type()] = struct{}{}
		types = append(types, source.Type())
	}
	return types
}

// Release releases the fetch worker pool.
// The loader should not be used after calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}
