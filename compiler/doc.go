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

// Package compiler parses pattern segments and compiles them into matchers
// for the pathmatch engine.
//
// A route pattern is split on '/' into segments. Each segment is a mix of
// literal text and named parameters written as "[name]", where a name is one
// or more Unicode letters or digits:
//
//	users          one literal token
//	[id]           one parameter token
//	v[major].[minor]  literal "v", parameter, literal ".", parameter
//
// # Segment Grammar
//
//   - Literal characters: any character except '[' (a stray ']' outside a
//     parameter is literal text)
//   - Parameter: '[' + one-or-more letters/digits + ']'
//   - Two parameters must be separated by at least one literal character;
//     adjacent parameters have no unambiguous boundary and are rejected
//   - The empty segment parses to an empty Segment and matches only the
//     empty string
//
// # Compilation
//
// Compile turns a parsed Segment into a Matcher, a pure function from a
// runtime pathname segment to the extracted parameter values. Matching is
// purely textual and runs in O(len(segment)):
//
//   - A literal token must appear verbatim at the current offset
//   - A trailing parameter captures the remainder of the input
//   - A non-trailing parameter captures up to the first occurrence of the
//     following literal (leftmost, non-greedy)
//   - A parameter never captures the empty string
//
// No backtracking is needed: the leftmost-occurrence rule determines every
// parameter's extent uniquely.
//
// # Matcher Reuse
//
// Two segments with the same token shape (identical literals, parameters in
// the same positions) compile to identical matchers regardless of parameter
// names. Key computes a canonical structural key and Cache memoizes compiled
// matchers by that key, so a route table with many structurally identical
// dynamic segments shares a bounded set of Matcher instances. Parameter
// names are not part of the key; callers track names separately.
//
// # Thread Safety
//
// ParseSegment, Compile, and Key are pure functions. Compiled Matchers are
// immutable and safe for concurrent use. Cache is not synchronized; it is
// meant to be used during single-threaded router construction only.
package compiler
