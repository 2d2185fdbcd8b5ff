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
	"context"
	"iter"
	"slices"
	"strings"
)

// Result is one completed route match. Keys[i] names the parameter whose
// captured text is Values[i]; both slices have equal length and may be
// empty. Route is the registered pattern, verbatim.
type Result struct {
	Route  string
	Keys   []string
	Values []string
}

// frame is one suspended step of the depth-first search: a trie node paired
// with the pathname segment index it consumes. savedLen remembers the length
// of the shared values buffer before this frame's transition appended its
// captures; popping the frame truncates the buffer back, which is the
// backtracking step.
type frame struct {
	node       *node
	index      int // pathname segment index this frame consumes
	dynNext    int // next dynamic edge to try
	savedLen   int // values length to restore on pop
	staticDone bool
}

// Match returns a lazy sequence of every route matching pathname, ordered
// from most to least specific (trie insertion order). The sequence is
// finite, restartable (each call starts a fresh search), and yields nothing
// for an unmatched pathname. Matching never fails: any string is a valid
// pathname.
//
// Enumeration is demand-driven. Breaking out of the range loop abandons the
// search without computing lower-priority matches:
//
//	for m := range r.Match("/users/42") {
//	    dispatch(m)
//	    break // highest-priority match only
//	}
//
// Match is safe for concurrent use; the trie is read-only and all search
// state is local to the call.
func (r *Router) Match(pathname string) iter.Seq[Result] {
	return r.MatchContext(context.Background(), pathname)
}

// MatchContext is Match with a caller-supplied context, which is handed to
// the router's observability recorder (if any) for trace propagation. The
// context does not cancel the search; matching is bounded by pathname length
// and trie depth, never by time.
func (r *Router) MatchContext(ctx context.Context, pathname string) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		var state any
		if r.recorder != nil {
			ctx, state = r.recorder.OnMatchStart(ctx, pathname)
		}

		matches := 0
		if state != nil {
			defer func() {
				r.recorder.OnMatchEnd(ctx, state, pathname, matches)
			}()
		}

		segments := strings.Split(pathname, "/")

		// Explicit-stack DFS. Pushing a frame descends into a matched child;
		// popping restores the values buffer and resumes the parent at its
		// next candidate transition. Yield suspends the search mid-frame and
		// a false yield return abandons it; nothing is held beyond this
		// call's locals, so abandonment needs no cleanup.
		values := make([]string, 0, 8)
		stack := make([]frame, 1, len(segments)+1)
		stack[0] = frame{node: r.root}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]

			if f.index == len(segments) {
				// Pathname exhausted: this node yields iff it is terminal.
				if f.node.terminal {
					matches++
					if !yield(Result{
						Route:  f.node.route,
						Keys:   f.node.keys,
						Values: slices.Clone(values),
					}) {
						return
					}
				}
				values = values[:f.savedLen]
				stack = stack[:len(stack)-1]

				continue
			}

			segment := segments[f.index]

			// Static transition first. At most one static child can match a
			// given segment (keys are unique per node), so "in no particular
			// order" collapses to a single map lookup.
			if !f.staticDone {
				f.staticDone = true
				if child := f.node.static[segment]; child != nil {
					stack = append(stack, frame{
						node:     child,
						index:    f.index + 1,
						savedLen: len(values),
					})

					continue
				}
			}

			// Dynamic transitions in insertion order, i.e. sorted-priority
			// order.
			descended := false
			for f.dynNext < len(f.node.dynamic) {
				edge := &f.node.dynamic[f.dynNext]
				f.dynNext++

				vals, ok := edge.matcher(segment)
				if !ok {
					continue
				}

				saved := len(values)
				values = append(values, vals...)
				stack = append(stack, frame{
					node:     edge.child,
					index:    f.index + 1,
					savedLen: saved,
				})
				descended = true

				break
			}

			if !descended {
				values = values[:f.savedLen]
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// MatchFirst returns the highest-priority match for pathname, or ok=false if
// no route matches. It is the common dispatch case: enumerate lazily, take
// the first Result, abandon the rest of the search.
func (r *Router) MatchFirst(pathname string) (Result, bool) {
	for m := range r.Match(pathname) {
		return m, true
	}

	return Result{}, false
}
