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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a Record failed validation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrEmptyRecordID indicates the Id field is empty.
	ErrEmptyRecordID = errors.New("record id cannot be empty")

	// ErrEmptyRecordName indicates the Name field is empty.
	ErrEmptyRecordName = errors.New("record name cannot be empty")

	// ErrEmptySourceType indicates the SourceType field is empty.
	ErrEmptySourceType = errors.New("record source type cannot be empty")

	// ErrInvalidHistoryEntry indicates a HistoryEntry failed validation.
	ErrInvalidHistoryEntry = errors.New("invalid history entry")

	// ErrEmptyHistoryQuery indicates the Query field is empty.
	ErrEmptyHistoryQuery = errors.New("history query cannot be empty")
)
