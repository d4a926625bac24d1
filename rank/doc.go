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


// Package rank scores and orders corpus records against a query.
//
// The Ranker type implements relevance ranking that combines:
//   - Exact substring detection (short-circuits to a perfect score)
//   - Normalized Levenshtein similarity for fuzzy matches
//   - Filter predicates over source type and status
//
// Results are sorted by descending score with a stable sort, so ties
// keep their original corpus order and identical inputs always yield
// identical output order.
package rank
