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

import "strings"

// Token is one fragment of a parsed pattern segment: either a run of literal
// text or a named parameter. Exactly one of Text and Name is set.
type Token struct {
	Text string // literal text; empty for parameter tokens
	Name string // parameter name; empty for literal tokens
}

// IsParam reports whether the token is a named parameter.
func (t Token) IsParam() bool {
	return t.Name != ""
}

// Segment is the parsed form of one '/'-delimited pattern segment: an
// ordered token list. The parser guarantees that two parameter tokens are
// never adjacent and that literal tokens are non-empty, so an empty Segment
// (zero tokens) unambiguously represents the empty pattern segment.
type Segment []Token

// ParamCount returns the number of parameter tokens in the segment.
func (s Segment) ParamCount() int {
	count := 0
	for _, t := range s {
		if t.IsParam() {
			count++
		}
	}

	return count
}

// String re-serializes the segment to its original pattern text:
// literal text concatenated with "[name]" for each parameter.
// For any segment produced by ParseSegment, String returns the input exactly.
func (s Segment) String() string {
	var b strings.Builder
	for _, t := range s {
		if t.IsParam() {
			b.WriteByte('[')
			b.WriteString(t.Name)
			b.WriteByte(']')
		} else {
			b.WriteString(t.Text)
		}
	}

	return b.String()
}
