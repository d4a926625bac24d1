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


// Package corpus loads and merges searchable records from external
// data sources.
//
// A Loader fans fetches out over a worker pool, tags every record
// with its source type, and swaps the merged collection in
// atomically: consumers always observe either the previous full
// corpus or the new full corpus, never a mix. One failing source
// never blocks the others, and overlapping loads resolve
// last-write-wins.
package corpus
