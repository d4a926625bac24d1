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


// Package session owns the interactive search loop.
//
// A Controller is a state machine over one search box: it debounces
// keystrokes, decides between suggestions, history, and a full
// search, runs the query analyzer and the ranker, records history,
// and exposes the outcome as a pull-based View snapshot. It never
// touches a display surface and never lets an internal error escape
// its public entry points; failures surface as the Error view state
// with a retryable message.
//
// Overlapping searches resolve last-write-wins: every dispatched
// search carries a monotonically increasing token, and a result only
// becomes visible if its token is still the newest when it resolves.
//
// Controllers are constructed explicitly and injected where needed;
// there is no shared global instance.
package session
