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
	"strings"

	"rivaas.dev/pathmatch/compiler"
)

// Parse splits a route pattern on '/' and parses every segment.
//
// Leading, trailing, and doubled slashes produce empty segments, which match
// only the literal empty string; "/users" and "users" are different
// patterns.
//
// Errors are *compiler.ParseError values whose position is rebased to a byte
// index within the whole pattern rather than within the failing segment.
func Parse(pattern string) ([]compiler.Segment, error) {
	parts := strings.Split(pattern, "/")
	segments := make([]compiler.Segment, len(parts))

	offset := 0
	for i, part := range parts {
		seg, err := compiler.ParseSegment(part)
		if err != nil {
			var perr *compiler.ParseError
			if errors.As(err, &perr) {
				return nil, &compiler.ParseError{
					Input:  pattern,
					Pos:    offset + perr.Pos,
					Reason: perr.Reason,
				}
			}

			return nil, err
		}
		segments[i] = seg
		offset += len(part) + 1 // +1 for the '/' separator
	}

	return segments, nil
}
