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


package analyze

import "errors"

var (
	// ErrInvalidRules is returned when a rule table contains a pattern
	// that does not compile.
	ErrInvalidRules = errors.New("invalid analyzer rules")
)
