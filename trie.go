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

import "rivaas.dev/pathmatch/compiler"

// node is one level of the match trie, keyed by pathname segment.
//
// Each node branches two ways: static transitions (exact segment text, map
// lookup, at most one can match a given input segment) and dynamic
// transitions (compiled matchers, tried in insertion order). Insertion order
// is sorted-priority order, so the dynamic slice is the baked-in total order
// the enumerator relies on; it must never be reordered.
//
// Thread safety: the trie is built once during New and is immutable
// afterwards. Concurrent Match calls share it without locking.
type node struct {
	static   map[string]*node // literal segment text → child ("" = empty segment)
	dynamic  []dynamicEdge    // insertion order = match priority
	route    string           // terminal: the registered pattern, verbatim
	keys     []string         // terminal: parameter names along the path, in order
	terminal bool
}

// dynamicEdge is one dynamic transition: a compiled matcher and the subtree
// it guards. The structural key dedupes transitions within a node so that
// routes whose segments share a shape also share a child subtree.
type dynamicEdge struct {
	key     string // structural key (compiler.Key) of the segment shape
	matcher compiler.Matcher
	child   *node
}

// findDynamic returns the dynamic edge with the given structural key, or nil.
// Linear scan: nodes rarely carry more than a handful of dynamic edges.
func (n *node) findDynamic(key string) *dynamicEdge {
	for i := range n.dynamic {
		if n.dynamic[i].key == key {
			return &n.dynamic[i]
		}
	}

	return nil
}

// buildTrie inserts the sorted routes into a fresh trie. Routes must already
// be in priority order; insertion order determines enumeration order.
func buildTrie(routes []parsedRoute, cache *compiler.Cache) (*node, error) {
	root := &node{}
	for _, r := range routes {
		if err := root.insert(r, cache); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// insert threads one route through the trie, one segment per level.
//
// A segment with zero tokens (the empty segment) or exactly one literal
// token becomes a static transition keyed by its text. Every other shape
// becomes a dynamic transition: the segment's structural key either reuses
// an existing edge on this node or appends a new one whose matcher comes
// from the trie-wide cache. Parameter names accumulate per route and are
// stored on the terminal node, so routes sharing a dynamic edge still report
// their own names.
//
// Two routes that reduce to the same transition sequence collide on the
// terminal node and fail with *DuplicateRouteError.
func (n *node) insert(r parsedRoute, cache *compiler.Cache) error {
	current := n
	var keys []string

	for _, segment := range r.segments {
		for _, tok := range segment {
			if tok.IsParam() {
				keys = append(keys, tok.Name)
			}
		}

		if label, ok := staticLabel(segment); ok {
			if current.static == nil {
				current.static = make(map[string]*node, 4)
			}
			child := current.static[label]
			if child == nil {
				child = &node{}
				current.static[label] = child
			}
			current = child

			continue
		}

		key := compiler.Key(segment)
		edge := current.findDynamic(key)
		if edge == nil {
			current.dynamic = append(current.dynamic, dynamicEdge{
				key:     key,
				matcher: cache.Get(segment),
				child:   &node{},
			})
			edge = &current.dynamic[len(current.dynamic)-1]
		}
		current = edge.child
	}

	if current.terminal {
		return &DuplicateRouteError{Pattern: r.pattern, Existing: current.route}
	}
	current.terminal = true
	current.route = r.pattern
	current.keys = keys

	return nil
}

// staticLabel returns the static transition key for a segment and whether
// the segment is static at all: zero tokens (key "") or a single literal
// token (key = its text). Anything else is a dynamic segment.
func staticLabel(segment compiler.Segment) (string, bool) {
	switch {
	case len(segment) == 0:
		return "", true
	case len(segment) == 1 && !segment[0].IsParam():
		return segment[0].Text, true
	default:
		return "", false
	}
}
