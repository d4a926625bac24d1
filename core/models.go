package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Key is a content-derived identifier for corpus records.
// Two records with the same (SourceType, Id) pair always map to the
// same Key, which is what makes reload-replace semantics work.
type Key uint64

// KeyFromParts generates a deterministic Key from a source type and a
// record id using BLAKE2b hashing.
func KeyFromParts(sourceType SourceType, id string) Key {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(sourceType))
	h.Write([]byte{0})
	h.Write([]byte(id))
	sum := h.Sum(nil)
	return Key(binary.LittleEndian.Uint64(sum))
}

// SourceType tags a record with the data source it came from.
// The set is open: loaders may introduce new source types at any time.
type SourceType string

// Well-known source types used by the built-in demo sources and the
// default filter chips.
const (
	SourceTypeService SourceType = "services"
	SourceTypeMetric  SourceType = "metrics"
	SourceTypeUser    SourceType = "users"
	SourceTypeLog     SourceType = "logs"
)

// Record is a flat, source-agnostic unit of search.
// Records are immutable once merged into a corpus; a reload replaces
// matching records wholesale rather than mutating them.
type Record struct {
	Id          string
	SourceType  SourceType
	Name        string
	Description string
	Status      string
	Tags        []string
	Category    string
}

// Key returns the content-derived corpus key for this record.
func (r *Record) Key() Key {
	return KeyFromParts(r.SourceType, r.Id)
}

// SearchableText returns the lowercased text blob matching runs
// against: name, description, source type, category, and tags joined
// by single spaces.
func (r *Record) SearchableText() string {
	parts := make([]string, 0, 4+len(r.Tags))
	parts = append(parts, r.Name, r.Description, string(r.SourceType), r.Category)
	parts = append(parts, r.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// ScoredResult is a Record plus the relevance signals attached to it
// for a single query. Created per query and discarded after rendering.
type ScoredResult struct {
	Record *Record

	// RelevanceScore is in [0,1]: 1.0 for exact substring matches,
	// normalized edit-distance similarity otherwise.
	RelevanceScore float64

	// MatchedFields lists the record fields whose text contains the
	// query as a literal substring. Empty for pure fuzzy matches.
	MatchedFields []string
}

// HistoryEntry records one distinct past query.
// Entries are keyed by exact query text, case-sensitive.
type HistoryEntry struct {
	Query    string
	Count    int
	LastUsed time.Time
}

// FilterAll is the filter value that disables a filter dimension.
const FilterAll = "all"

// FilterState holds the active source-type and status filters.
// It is mutated only by explicit user filter selection and is never
// reset automatically.
type FilterState struct {
	Type   string
	Status string
}

// DefaultFilters returns a FilterState with both dimensions open.
func DefaultFilters() FilterState {
	return FilterState{Type: FilterAll, Status: FilterAll}
}

// MatchesType reports whether a record passes the source-type filter.
func (f FilterState) MatchesType(t SourceType) bool {
	return f.Type == "" || f.Type == FilterAll || f.Type == string(t)
}

// MatchesStatus reports whether a record passes the status filter.
func (f FilterState) MatchesStatus(status string) bool {
	return f.Status == "" || f.Status == FilterAll || f.Status == status
}
