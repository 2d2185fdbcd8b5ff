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
	"fmt"
	"slices"

	"rivaas.dev/pathmatch/compiler"
)

// Router matches pathnames against a registered set of route patterns.
//
// A Router is built once by New and is immutable afterwards: the trie, the
// compiled matchers, and the sorted route list never change. The only way to
// alter routing behavior is to construct a new Router. All methods are safe
// for concurrent use.
type Router struct {
	root        *node
	routes      []string // patterns in sorted (match-priority) order
	shapes      int      // distinct dynamic segment shapes compiled
	recorder    ObservabilityRecorder
	recorderSet bool
}

// New builds a Router from the given route patterns.
//
// Registration runs parse → sort → compile → trie build. Any malformed
// pattern (*compiler.ParseError) or pattern collision (*DuplicateRouteError)
// aborts the whole call; no partial Router is ever returned.
//
// The pattern grammar, per '/'-delimited segment:
//
//   - Literal characters: any character except '[' (a stray ']' outside a
//     parameter is literal text)
//   - Parameter: '[' + one-or-more letters/digits + ']'
//   - Adjacent parameters within one segment are illegal
//   - Leading/trailing/doubled '/' produce empty segments, which match only
//     the literal empty string
//
// Registering zero routes is valid and yields a Router that matches nothing.
func New(routes []string, opts ...Option) (*Router, error) {
	r := &Router{}
	for _, opt := range opts {
		opt(r)
	}
	if r.recorderSet && r.recorder == nil {
		return nil, ErrNilRecorder
	}

	sorted, err := sortRoutes(routes)
	if err != nil {
		return nil, err
	}

	cache := compiler.NewCache()
	root, err := buildTrie(sorted, cache)
	if err != nil {
		return nil, err
	}

	r.root = root
	r.shapes = cache.Len()
	r.routes = make([]string, len(sorted))
	for i, route := range sorted {
		r.routes[i] = route.pattern
	}

	if rc, ok := r.recorder.(RouteCountRecorder); ok {
		rc.RecordRoutes(len(r.routes))
	}

	return r, nil
}

// MustNew is New but panics on error. Use it for route tables that are
// static in source and covered by tests.
func MustNew(routes []string, opts ...Option) *Router {
	r, err := New(routes, opts...)
	if err != nil {
		panic(fmt.Sprintf("pathmatch.MustNew: %v", err))
	}

	return r
}

// Routes returns the registered patterns in match-priority order: the order
// in which Match yields them when all of them match. The slice is a copy.
func (r *Router) Routes() []string {
	return slices.Clone(r.routes)
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	return len(r.routes)
}

// Shapes returns the number of distinct dynamic segment shapes compiled for
// this router. Structurally identical segments share one compiled matcher,
// so this is at most (and typically well below) the number of dynamic
// segments across all routes.
func (r *Router) Shapes() int {
	return r.shapes
}
