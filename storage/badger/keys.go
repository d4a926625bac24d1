package badger

// Key prefixes for different data types
const (
	historyPrefix = "hist"
)

// makeHistoryKey generates a key for a history entry. Entries are
// keyed by exact query text, case-sensitive.
func makeHistoryKey(query string) []byte {
	prefix := historyPrefix + ":"
	buf := make([]byte, len(prefix)+len(query))
	offset := copy(buf, prefix)
	copy(buf[offset:], query)
	return buf
}
