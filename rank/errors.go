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


package rank

import "errors"

var (
	// ErrInvalidThreshold is returned when the fuzzy threshold is outside (0, 1].
	ErrInvalidThreshold = errors.New("fuzzy threshold must be in (0, 1]")

	// ErrInvalidMaxResults is returned when the result cap is not positive.
	ErrInvalidMaxResults = errors.New("max results must be greater than 0")
)
