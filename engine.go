// Copyright 2025 Lumina Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package searchlight

import (
	"context"
	"log/slog"

	"github.com/lumina-dev/searchlight/corpus"
	"github.com/lumina-dev/searchlight/session"
	"github.com/lumina-dev/searchlight/storage"
	"github.com/lumina-dev/searchlight/storage/badger"
)

// Engine wires the corpus loader, history storage, and session
// construction behind one handle. It owns the storage backend;
// sessions created from it share the same corpus and history.
type Engine struct {
	backend     *badger.Backend
	historyRepo storage.HistoryRepository
	loader      *corpus.Loader
	sessions    []*session.Controller
	logger      *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	inMemory   bool
	logger     *slog.Logger
	loaderOpts []corpus.Option
}

// WithInMemoryStorage keeps history in memory instead of on disk.
func WithInMemoryStorage() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithEngineLogger sets the logger. Defaults to slog.Default().
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithLoaderOptions forwards options to the corpus loader.
func WithLoaderOptions(opts ...corpus.Option) EngineOption {
	return func(o *engineOptions) {
		o.loaderOpts = append(o.loaderOpts, opts...)
	}
}

// NewEngine opens the history store at filePath and prepares a
// loader over the given sources. The corpus is not loaded yet; call
// RefreshCorpus before searching.
func NewEngine(filePath string, sources []corpus.Source, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	historyRepo, err := badger.NewHistoryRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	loaderOpts := append([]corpus.Option{corpus.WithLogger(options.logger)}, options.loaderOpts...)
	loader, err := corpus.NewLoader(sources, loaderOpts...)
	if err != nil {
		historyRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Engine{
		backend:     backend,
		historyRepo: historyRepo,
		loader:      loader,
		logger:      options.logger,
	}, nil
}

// RefreshCorpus reloads all sources and invalidates every session's
// result cache. A partial failure still swaps in the records that
// did load; the returned error reports which sources failed.
func (e *Engine) RefreshCorpus(ctx context.Context) error {
	err := e.loader.Load(ctx)
	for _, s := range e.sessions {
		s.InvalidateCache()
	}
	return err
}

// NewSession creates a search session over the engine's corpus and
// history.
func (e *Engine) NewSession(opts ...session.Option) (*session.Controller, error) {
	sessionOpts := append([]session.Option{session.WithLogger(e.logger)}, opts...)
	s, err := session.NewController(e.loader, e.historyRepo, sessionOpts...)
	if err != nil {
		return nil, err
	}
	e.sessions = append(e.sessions, s)
	return s, nil
}

// HistoryRepository exposes the persisted search history.
func (e *Engine) HistoryRepository() storage.HistoryRepository {
	return e.historyRepo
}

// Loader exposes the corpus loader.
func (e *Engine) Loader() *corpus.Loader {
	return e.loader
}

func (e *Engine) Close() error {
	for _, s := range e.sessions {
		s.Close()
	}
	e.loader.Release()

	if err := e.historyRepo.Close(); err != nil {
		e.logger.Error("error closing history repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
