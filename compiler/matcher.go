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

package compiler

import (
	"slices"
	"strings"
)

// Matcher tests one runtime pathname segment against a compiled segment
// shape. On success it returns the captured parameter values in token order;
// on failure it returns (nil, false).
//
// Matchers are pure functions: immutable, stateless, and safe for concurrent
// use. A Matcher carries no parameter names: segments that differ only in
// parameter names share one Matcher (see Key and Cache).
type Matcher func(segment string) (values []string, ok bool)

// Compile builds a Matcher for the given parsed segment.
//
// The matcher walks the token list left to right, maintaining a scan offset
// into the input:
//
//   - A literal token must match verbatim at the current offset.
//   - A trailing parameter captures the remainder of the input.
//   - A non-trailing parameter captures up to the first occurrence of the
//     next token's literal text (the parser guarantees the next token is a
//     literal). Leftmost occurrence wins; there is no backtracking.
//   - A parameter must capture at least one character.
//   - The whole input must be consumed.
//
// The empty segment compiles to a matcher that accepts only the empty
// string. A segment consisting of a single literal token is normally handled
// upstream as a static trie transition and never reaches Compile, but
// compiling one works and matches exactly that literal.
func Compile(segment Segment) Matcher {
	if len(segment) == 0 {
		return matchEmpty
	}

	// The matcher closure outlives registration; clone so it cannot observe
	// later mutation of the caller's slice.
	tokens := slices.Clone(segment)
	nparams := segment.ParamCount()

	return func(input string) ([]string, bool) {
		values := make([]string, 0, nparams)
		offset := 0

		for i, tok := range tokens {
			if !tok.IsParam() {
				if !strings.HasPrefix(input[offset:], tok.Text) {
					return nil, false
				}
				offset += len(tok.Text)

				continue
			}

			if i == len(tokens)-1 {
				// Trailing parameter: capture the remainder, which must be
				// non-empty.
				if offset >= len(input) {
					return nil, false
				}
				values = append(values, input[offset:])
				offset = len(input)

				continue
			}

			// Non-trailing parameter: its extent runs to the first occurrence
			// of the next literal. rel == -1 means the delimiter is absent;
			// rel == 0 would make the capture empty. Both fail.
			rel := strings.Index(input[offset:], tokens[i+1].Text)
			if rel <= 0 {
				return nil, false
			}
			values = append(values, input[offset:offset+rel])
			offset += rel
		}

		if offset != len(input) {
			return nil, false
		}

		return values, true
	}
}

// matchEmpty accepts only the empty segment and captures nothing.
func matchEmpty(input string) ([]string, bool) {
	if input != "" {
		return nil, false
	}

	return nil, true
}
