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


package core

import "fmt"

// StatusUnknown is the status assigned to records that arrive without one.
const StatusUnknown = "unknown"

// CategoryGeneral is the category assigned to records that arrive without one.
const CategoryGeneral = "general"

// ValidateRecord validates a Record according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - SourceType must not be empty
//   - Name must not be empty
//
// NOT validated (defaulted by NormalizeRecord):
//   - Description (empty is valid)
//   - Status (defaults to "unknown")
//   - Category (defaults to "general")
//   - Tags (empty is valid)
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyRecordID)
	}

	if record.SourceType == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptySourceType)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyRecordName)
	}

	return nil
}

// NormalizeRecord fills the defaults for optional fields so that
// downstream matching never has to branch on absent data.
func NormalizeRecord(record *Record) {
	if record == nil {
		return
	}
	if record.Status == "" {
		record.Status = StatusUnknown
	}
	if record.Category == "" {
		record.Category = CategoryGeneral
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}
}

// ValidateHistoryEntry validates a HistoryEntry according to domain rules.
//
// Validation rules:
//   - Query must not be empty
//   - Count must be at least 1
func ValidateHistoryEntry(entry *HistoryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidHistoryEntry)
	}

	if entry.Query == "" {
		return fmt.Errorf("%w: %w", ErrInvalidHistoryEntry, ErrEmptyHistoryQuery)
	}

	if entry.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidHistoryEntry, entry.Count)
	}

	return nil
}
