// Copyright 2025 The Rivaas Authors
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

package pathmatch

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRecorder indicates that a nil observability recorder was supplied.
	ErrNilRecorder = errors.New("observability recorder is nil")

	// ErrNilTracerProvider indicates that a nil tracer provider was supplied.
	ErrNilTracerProvider = errors.New("tracer provider is nil")

	// ErrNilMeterProvider indicates that a nil meter provider was supplied.
	ErrNilMeterProvider = errors.New("meter provider is nil")

	// ErrUnsupportedProvider indicates an unknown metrics provider name.
	ErrUnsupportedProvider = errors.New("unsupported metrics provider")
)

// DuplicateRouteError reports that two registered patterns reduce to the
// identical sequence of trie transitions, making them indistinguishable at
// match time. Pattern is the pattern being inserted when the collision was
// detected; Existing is the pattern already occupying that trie position.
type DuplicateRouteError struct {
	Pattern  string
	Existing string
}

// Error implements the error interface.
func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("duplicate route %q: already registered as %q", e.Pattern, e.Existing)
}
