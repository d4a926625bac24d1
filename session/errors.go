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


package session

import "errors"

var (
	// ErrProviderRequired is returned when a corpus provider is not provided.
	ErrProviderRequired = errors.New("corpus provider required")

	// ErrHistoryRequired is returned when a history repository is not provided.
	ErrHistoryRequired = errors.New("history repository required")

	// ErrInvalidConfig is returned for out-of-range configuration values.
	ErrInvalidConfig = errors.New("invalid session config")

	// ErrCorpusUnavailable signals that no corpus has been loaded yet.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)
