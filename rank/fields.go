package rank

import (
	"strings"

	"github.com/lumina-dev/searchlight/core"
)

// matchedFields returns the names of the record fields whose
// lowercased text contains the query as a literal substring.
// Fuzzy-only matches produce an empty set.
func matchedFields(queryLower string, record *core.Record) []string {
	fields := make([]string, 0, 2)

	if strings.Contains(strings.ToLower(record.Name), queryLower) {
		fields = append(fields, "name")
	}
	if record.Description != "" && strings.Contains(strings.ToLower(record.Description), queryLower) {
		fields = append(fields, "description")
	}
	if strings.Contains(strings.ToLower(string(record.SourceType)), queryLower) {
		fields = append(fields, "sourceType")
	}
	if record.Category != "" && strings.Contains(strings.ToLower(record.Category), queryLower) {
		fields = append(fields, "category")
	}
	for _, tag := range record.Tags {
		if strings.Contains(strings.ToLower(tag), queryLower) {
			fields = append(fields, "tags")
			break
		}
	}

	return fields
}
