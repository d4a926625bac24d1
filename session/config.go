package session

import "time"

// Defaults for Config.
const (
	DefaultDebounceDelay  = 300 * time.Millisecond
	DefaultMinQueryLength = 2
	DefaultHistoryCap     = 20
	DefaultRecentShown    = 5
	DefaultSuggestionCap  = 6
	DefaultCacheTTL       = 5 * time.Minute
)

// Config tunes a Controller.
type Config struct {
	// DebounceDelay is how long input must stay quiet before a
	// qualifying keystroke triggers a search.
	DebounceDelay time.Duration

	// MinQueryLength is the trimmed length below which input shows
	// suggestions instead of searching.
	MinQueryLength int

	// HistoryCap bounds the persisted history to the N most recently
	// used distinct queries.
	HistoryCap int

	// RecentShown is how many history entries appear on focus.
	RecentShown int

	// SuggestionCap bounds the suggestion list for short input.
	SuggestionCap int

	// CacheTTL is the lifetime of cached result sets. Zero disables
	// the cache.
	CacheTTL time.Duration

	// EnhanceQueries dispatches the analyzer's enhanced query instead
	// of the raw input.
	EnhanceQueries bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		DebounceDelay:  DefaultDebounceDelay,
		MinQueryLength: DefaultMinQueryLength,
		HistoryCap:     DefaultHistoryCap,
		RecentShown:    DefaultRecentShown,
		SuggestionCap:  DefaultSuggestionCap,
		CacheTTL:       DefaultCacheTTL,
		EnhanceQueries: true,
	}
}

// Validate checks the configuration for nonsensical values.
func (c Config) Validate() error {
	if c.DebounceDelay < 0 {
		return ErrInvalidConfig
	}
	if c.MinQueryLength < 1 {
		return ErrInvalidConfig
	}
	if c.HistoryCap < 1 || c.RecentShown < 1 || c.SuggestionCap < 1 {
		return ErrInvalidConfig
	}
	if c.CacheTTL < 0 {
		return ErrInvalidConfig
	}
	return nil
}
