package corpus

import (
	"context"

	"github.com/lumina-dev/searchlight/core"
)

// StaticSource serves a fixed record set. Useful for tests and for
// embedding reference data alongside live sources.
type StaticSource struct {
	sourceType core.SourceType
	records    []core.Record
}

var _ Source = (*StaticSource)(nil)

// NewStaticSource creates a source that always returns records.
func NewStaticSource(sourceType core.SourceType, records []core.Record) *StaticSource {
	return &StaticSource{sourceType: sourceType, records: records}
}

func (s *StaticSource) Type() core.SourceType {
	return s.sourceType
}

func (s *StaticSource) Fetch(ctx context.Context) ([]core.Record, error) {
	return s.records, nil
}

// FuncSource adapts a fetch function into a Source.
type FuncSource struct {
	sourceType core.SourceType
	fetch      func(ctx context.Context) ([]core.Record, error)
}

var _ Source = (*FuncSource)(nil)

// NewFuncSource creates a source backed by fn.
func NewFuncSource(sourceType core.SourceType, fn func(ctx context.Context) ([]core.Record, error)) *FuncSource {
	return &FuncSource{sourceType: sourceType, fetch: fn}
}

func (s *FuncSource) Type() core.SourceType {
	return s.sourceType
}

func (s *FuncSource) Fetch(ctx context.Context) ([]core.Record, error) {
	return s.fetch(ctx)
}
