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


package corpus

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lumina-dev/searchlight/core"
)

var (
	// ErrNoSources is returned when a loader is constructed without any sources.
	ErrNoSources = errors.New("at least one source required")
)

// LoadError reports the sources that failed during a load cycle.
// It signals partial degradation, not a fatal condition: the sources
// that succeeded have already been merged and swapped in by the time
// a LoadError is returned.
type LoadError struct {
	Failures map[core.SourceType]error
}

func (e *LoadError) Error() string {
	types := make([]string, 0, len(e.Failures))
	for sourceType := range e.Failures {
		types = append(types, string(sourceType))
	}
	sort.Strings(types)
	return fmt.Sprintf("corpus load failed for sources: %s", strings.Join(types, ", "))
}

// Unwrap exposes the underlying fetch errors for errors.Is / errors.As.
func (e *LoadError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, err := range e.Failures {
		errs = append(errs, err)
	}
	return errs
}
