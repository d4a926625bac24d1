package analyze

import "strings"

// entityConfidence is the fixed confidence assigned to every
// pattern-extracted entity.
const entityConfidence = 0.8

// extractEntities emits one entity per matching pattern per type.
// The value is the first capture group when the pattern has one, the
// whole match otherwise; the position is the offset of the first
// occurrence of the matched text. Overlapping matches across types
// are kept as-is: disambiguation is left to the caller.
func (a *Analyzer) extractEntities(text string) []Entity {
	var entities []Entity

	for _, entity := range a.entities {
		for _, pattern := range entity.patterns {
			groups := pattern.FindStringSubmatch(text)
			if groups == nil {
				continue
			}

			value := groups[0]
			if len(groups) > 1 && groups[1] != "" {
				value = groups[1]
			}

			entities = append(entities, Entity{
				Type:       entity.entityType,
				Value:      value,
				Confidence: entityConfidence,
				Position:   strings.Index(text, groups[0]),
			})
		}
	}

	return entities
}

// entitiesOfType filters an entity list down to one type, preserving
// order.
func entitiesOfType(entities []Entity, entityType string) []Entity {
	var filtered []Entity
	for _, entity := range entities {
		if entity.Type == entityType {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}
