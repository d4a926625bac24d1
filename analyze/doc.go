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


// Package analyze classifies raw search queries before dispatch.
//
// The Analyzer type runs four independent rule-driven sub-scorers
// over a query:
//   - Intent classification (keyword lists plus regex patterns)
//   - Entity extraction (typed regex tables)
//   - Sentiment scoring (lexicon with intensity modifiers)
//   - Language detection (pattern and common-word scoring)
//
// All models are plain data tables (see Rules); deployments can
// replace or extend them, including from YAML, without code changes.
// Analysis never fails: malformed or empty input degrades to an
// unknown-intent, zero-confidence result.
package analyze
