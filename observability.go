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

import "context"

// ObservabilityRecorder provides lifecycle hooks around match enumeration.
// Implementations typically record metrics (NewMetricsRecorder), create
// trace spans (NewTracingRecorder), or both (Recorders).
//
// Lifecycle:
//  1. Router calls OnMatchStart(ctx, pathname) → (enrichedCtx, state) when
//     the consumer starts pulling from a Match sequence.
//     - The enriched context (e.g. carrying a trace span) is used for the
//       rest of the enumeration.
//     - state is an opaque token; returning nil excludes this enumeration
//       from OnMatchEnd entirely.
//  2. The enumeration runs; the consumer may abandon it early.
//  3. Router calls OnMatchEnd(ctx, state, pathname, matches) when the
//     enumeration finishes or is abandoned, ONLY IF state != nil. matches is
//     the number of Results yielded before that point.
//
// The recorder never observes individual Results and cannot influence
// matching; it is measurement only.
//
// Thread safety: all methods must be safe for concurrent use. One Match call
// produces at most one OnMatchStart/OnMatchEnd pair, but many Match calls
// may be in flight at once.
type ObservabilityRecorder interface {
	// OnMatchStart is called before the search begins. Return an enriched
	// context and an opaque state token, or a nil state to exclude this
	// enumeration from OnMatchEnd.
	OnMatchStart(ctx context.Context, pathname string) (context.Context, any)

	// OnMatchEnd is called once the enumeration completes or is abandoned,
	// with the state token from OnMatchStart and the number of Results
	// yielded. Not called when state was nil.
	OnMatchEnd(ctx context.Context, state any, pathname string, matches int)
}

// RouteCountRecorder is an optional interface a recorder may implement to
// learn how many routes a Router registered. New calls RecordRoutes once,
// after construction succeeds.
type RouteCountRecorder interface {
	RecordRoutes(count int)
}

// Recorders combines multiple recorders into one. OnMatchStart runs in
// argument order, threading the context through each recorder so that, for
// example, a tracing recorder can enrich the context a metrics recorder then
// observes. OnMatchEnd runs in reverse order. A recorder that returns a nil
// state is skipped at OnMatchEnd; the others still run.
func Recorders(recs ...ObservabilityRecorder) ObservabilityRecorder {
	return &multiRecorder{recs: recs}
}

type multiRecorder struct {
	recs []ObservabilityRecorder
}

func (m *multiRecorder) OnMatchStart(ctx context.Context, pathname string) (context.Context, any) {
	states := make([]any, len(m.recs))
	for i, rec := range m.recs {
		ctx, states[i] = rec.OnMatchStart(ctx, pathname)
	}

	return ctx, states
}

func (m *multiRecorder) OnMatchEnd(ctx context.Context, state any, pathname string, matches int) {
	states, ok := state.([]any)
	if !ok {
		return
	}
	for i := len(m.recs) - 1; i >= 0; i-- {
		if states[i] == nil {
			continue
		}
		m.recs[i].OnMatchEnd(ctx, states[i], pathname, matches)
	}
}

// RecordRoutes forwards the route count to every wrapped recorder that
// implements RouteCountRecorder.
func (m *multiRecorder) RecordRoutes(count int) {
	for _, rec := range m.recs {
		if rc, ok := rec.(RouteCountRecorder); ok {
			rc.RecordRoutes(count)
		}
	}
}
