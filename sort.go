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
	"cmp"
	"fmt"
	"slices"

	"rivaas.dev/pathmatch/compiler"
)

// parsedRoute pairs a pattern with its parsed segments. Parsing happens once
// here; the parsed segments ride along to the trie builder so no pattern is
// ever parsed twice.
type parsedRoute struct {
	pattern  string
	segments []compiler.Segment
}

// sortRoutes parses every pattern and stable-sorts the result from most to
// least specific. The sorted order is the trie insertion order, which in
// turn is the match enumeration order; sorting is the mechanism that makes
// "static beats dynamic" and "more specific beats less specific" hold across
// the whole route table.
//
// A malformed pattern aborts the whole registration with the failing pattern
// named in the wrapped error.
func sortRoutes(patterns []string) ([]parsedRoute, error) {
	parsed := make([]parsedRoute, 0, len(patterns))
	for _, p := range patterns {
		segments, err := Parse(p)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", p, err)
		}
		parsed = append(parsed, parsedRoute{pattern: p, segments: segments})
	}

	slices.SortStableFunc(parsed, compareRoutes)

	return parsed, nil
}

// compareRoutes orders routes most-specific first:
//
//  1. Fewer segments sorts first. Shorter patterns match more precisely
//     before longer ones fall through to catch-alls.
//  2. Equal segment counts compare segment-by-segment (see compareSegments).
//  3. Fully equal routes keep their input order (the caller sorts stably).
func compareRoutes(a, b parsedRoute) int {
	if c := cmp.Compare(len(a.segments), len(b.segments)); c != 0 {
		return c
	}

	for i := range a.segments {
		if c := compareSegments(a.segments[i], b.segments[i]); c != 0 {
			return c
		}
	}

	return 0
}

// compareSegments compares two parsed segments token-by-token: a literal
// sorts before a parameter at the same position, two literals compare
// lexicographically, and two parameters are equal for ordering purposes.
// If one token list is a prefix of the other, the shorter sorts first.
func compareSegments(a, b compiler.Segment) int {
	for i := range min(len(a), len(b)) {
		at, bt := a[i], b[i]
		switch {
		case at.IsParam() && bt.IsParam():
			// Equal; parameter names do not affect priority.
		case at.IsParam():
			return 1
		case bt.IsParam():
			return -1
		default:
			if c := cmp.Compare(at.Text, bt.Text); c != 0 {
				return c
			}
		}
	}

	return cmp.Compare(len(a), len(b))
}
