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

// Package pathmatch matches pathnames against a registered set of route
// patterns and enumerates every matching route, most specific first,
// together with the extracted parameter values.
//
// It is a pure in-memory matching engine: no I/O, no network layer, no
// persistence. A server framework composes it into dispatch logic by
// supplying pathnames and consuming Results.
//
// # Key Features
//
//   - Bracket-parameter patterns: "users/[id]", "v[major].[minor]/docs"
//   - Every match enumerated lazily, in specificity order
//   - Deterministic priority: static beats dynamic, more specific beats less
//   - Structural matcher sharing bounds trie size
//   - Immutable after construction; lock-free concurrent matching
//   - Optional OpenTelemetry metrics and tracing hooks
//
// # Pattern Grammar
//
// Per '/'-delimited segment:
//
//   - Literal characters: any character except '[' (a stray ']' outside a
//     parameter is literal text)
//   - Parameter: '[' + one-or-more letters/digits + ']'
//   - Adjacent parameters within one segment are illegal
//   - Leading/trailing/doubled '/' produce empty segments, which match only
//     the literal empty string
//
// There are no wildcards, optional segments, or repeated parameters, and
// the engine never URL-decodes; values are extracted textually.
//
// # Constructor Pattern
//
// New returns (*Router, error): registration can fail on a malformed
// pattern (*compiler.ParseError) or a pattern collision
// (*DuplicateRouteError), and a failed New returns no partial router.
// MustNew panics instead, for route tables that are static in source.
//
// # Quick Start
//
//	r, err := pathmatch.New([]string{
//	    "users",
//	    "users/[id]",
//	    "users/[id]/posts/[post]",
//	    "[page]",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for m := range r.Match("users") {
//	    fmt.Println(m.Route, m.Keys, m.Values)
//	    // "users"  []     []
//	    // "[page]" [page] [users] (never reached if you break early)
//	}
//
// # Match Order
//
// Registration sorts routes from most to least specific (fewer segments
// first, then literals before parameters position by position) and inserts
// them into a segment-keyed trie in that order. Enumeration walks the trie
// depth first, static transitions before dynamic ones, so the sequence Match
// yields is exactly the sorted priority order restricted to the routes that
// match. Consumers that only need the best match break after the first
// Result; the rest of the search is never computed.
//
// # Concurrency
//
// The trie is built once and read-only afterwards. Any number of goroutines
// may call Match concurrently with no synchronization; each enumeration
// owns its search state.
//
// # Observability
//
// Matching itself is measurement-free. Installing a recorder adds hooks
// around each enumeration:
//
//	rec, err := pathmatch.NewMetricsRecorder(pathmatch.WithPrometheus())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := pathmatch.MustNew(routes, pathmatch.WithRecorder(rec))
//	http.Handle("/metrics", rec.Handler())
//
// See ObservabilityRecorder, NewMetricsRecorder, and NewTracingRecorder.
package pathmatch
