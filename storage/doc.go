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


// Package storage provides the persistence abstraction for search
// history.
//
// The HistoryRepository interface decouples the session controller
// from any concrete store; the badger subpackage provides the durable
// implementation, and tests use its in-memory mode.
//
// Public constructors in implementation packages return the interface
// type, never the concrete repository, so backends stay swappable.
//
// All repository implementations must be thread-safe. All methods
// accept a context.Context for cancellation; pass
// context.Background() when no deadline applies.
package storage
