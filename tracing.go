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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracingRecorder is an ObservabilityRecorder that wraps every match
// enumeration in an OpenTelemetry span named "pathmatch.match", carrying
// the pathname and the number of results as attributes. The enriched
// context returned from OnMatchStart propagates the span to whatever the
// consumer does between pulls; pass it via MatchContext to link matching
// into a surrounding request trace.
type TracingRecorder struct {
	tracer trace.Tracer
}

// NewTracingRecorder creates a tracing recorder from the given provider.
// Pass trace.NewNoopTracerProvider-style providers freely; span creation is
// cheap when nothing records. A nil provider fails with ErrNilTracerProvider.
func NewTracingRecorder(provider trace.TracerProvider) (*TracingRecorder, error) {
	if provider == nil {
		return nil, ErrNilTracerProvider
	}

	return &TracingRecorder{tracer: provider.Tracer(meterName)}, nil
}

// OnMatchStart implements ObservabilityRecorder.
func (t *TracingRecorder) OnMatchStart(ctx context.Context, pathname string) (context.Context, any) {
	ctx, span := t.tracer.Start(ctx, "pathmatch.match",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("pathmatch.pathname", pathname)),
	)

	return ctx, span
}

// OnMatchEnd implements ObservabilityRecorder.
func (t *TracingRecorder) OnMatchEnd(_ context.Context, state any, _ string, matches int) {
	span, ok := state.(trace.Span)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("pathmatch.matches", matches))
	span.End()
}
