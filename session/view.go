package session

import (
	"github.com/lumina-dev/searchlight/analyze"
	"github.com/lumina-dev/searchlight/core"
)

// State identifies what the search surface should currently display.
type State string

const (
	// StateIdle hides all result surfaces.
	StateIdle State = "idle"

	// StateSuggesting shows suggestions or recent history in place of
	// results.
	StateSuggesting State = "suggesting"

	// StateSearching marks a dispatched search that has not resolved.
	StateSearching State = "searching"

	// StateResults shows a non-empty ranked result list.
	StateResults State = "results"

	// StateNoResults marks a completed search that matched nothing.
	// Distinct from StateError: the search itself succeeded.
	StateNoResults State = "no_results"

	// StateError marks a failed search; View.Message carries the
	// human-readable reason and Retry re-runs the query.
	StateError State = "error"
)

// ItemKind distinguishes the entries of a flattened view item list.
type ItemKind string

const (
	ItemKindRecent     ItemKind = "recent"
	ItemKindSuggestion ItemKind = "suggestion"
	ItemKindResult     ItemKind = "result"
)

// Item is one activatable row of the current view, in render order.
type Item struct {
	Kind ItemKind

	// Text is written into the query field and executed when the
	// item is activated.
	Text string

	// Result is set for ItemKindResult items.
	Result *core.ScoredResult

	// Entry is set for ItemKindRecent items.
	Entry *core.HistoryEntry
}

// Key is a navigation key fed into OnKeyboardEvent.
type Key string

const (
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
)

// View is a pull-based snapshot of the controller state for
// rendering. The controller tracks the keyboard cursor itself, so
// Selected is meaningful regardless of where input focus lives.
type View struct {
	State State
	Query string
	Items []Item

	// Selected is the index of the keyboard-focused item, or -1.
	Selected int

	// Analysis is the query analysis behind the most recent search,
	// nil outside of search states.
	Analysis *analyze.Analysis

	// Message is a human-readable error description in StateError.
	Message string
}
