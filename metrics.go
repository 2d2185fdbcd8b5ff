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
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// meterName identifies this library to OpenTelemetry.
const meterName = "rivaas.dev/pathmatch"

// DefaultDurationBuckets are histogram boundaries for match duration in
// seconds. Matching is in-memory and fast, so the buckets skew far lower
// than HTTP-request buckets: 100ns to 10ms.
var DefaultDurationBuckets = []float64{
	0.0000001, 0.0000005, 0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.01,
}

// MetricsProvider selects the built-in exporter backing a MetricsRecorder.
type MetricsProvider string

const (
	// PrometheusProvider exports metrics via a Prometheus registry exposed
	// through Handler.
	PrometheusProvider MetricsProvider = "prometheus"
	// OTLPProvider pushes metrics to an OTLP/HTTP collector endpoint.
	OTLPProvider MetricsProvider = "otlp"
	// StdoutProvider periodically prints metrics to stdout. Development only.
	StdoutProvider MetricsProvider = "stdout"
)

// EventType represents the severity of an internal operational event.
type EventType int

const (
	// EventError indicates an error event (e.g., exporter initialization failed).
	EventError EventType = iota
	// EventWarning indicates a warning event.
	EventWarning
	// EventInfo indicates an informational event.
	EventInfo
	// EventDebug indicates a debug event.
	EventDebug
)

// Event is an internal operational event from the metrics recorder. Events
// report exporter lifecycle and configuration issues; they never fire on the
// match path.
type Event struct {
	Type    EventType
	Message string
	Args    []any // slog-style key-value pairs
}

// EventHandler processes operational events. Implementations can log them,
// forward them to monitoring, or drop them.
type EventHandler func(Event)

// DefaultEventHandler returns an EventHandler that logs events to the given
// slog.Logger. A nil logger yields a no-op handler.
func DefaultEventHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		return func(Event) {}
	}

	return func(e Event) {
		switch e.Type {
		case EventError:
			logger.Error(e.Message, e.Args...)
		case EventWarning:
			logger.Warn(e.Message, e.Args...)
		case EventInfo:
			logger.Info(e.Message, e.Args...)
		case EventDebug:
			logger.Debug(e.Message, e.Args...)
		}
	}
}

// MetricsRecorder is an ObservabilityRecorder that records match metrics via
// OpenTelemetry:
//
//	pathmatch.match.total     counter, attribute "matched" (bool)
//	pathmatch.match.duration  histogram, seconds
//	pathmatch.match.results   histogram, results yielded per enumeration
//	pathmatch.routes          gauge, routes registered on the router
//
// Construct with NewMetricsRecorder, pick a provider with WithPrometheus,
// WithOTLP, WithStdout, or bring your own via WithMeterProvider, and install
// on a Router with WithRecorder.
type MetricsRecorder struct {
	provider       MetricsProvider
	meterProvider  metric.MeterProvider
	customProvider bool
	sdkProvider    *sdkmetric.MeterProvider // nil when customProvider
	meter          metric.Meter

	matchTotal    metric.Int64Counter
	matchDuration metric.Float64Histogram
	matchResults  metric.Int64Histogram
	routesGauge   metric.Int64Gauge

	prometheusRegistry *promclient.Registry
	prometheusHandler  http.Handler

	otlpEndpoint    string
	exportInterval  time.Duration
	durationBuckets []float64
	events          EventHandler
}

// MetricsOption configures a MetricsRecorder.
type MetricsOption func(*MetricsRecorder)

// WithPrometheus selects the Prometheus provider. Metrics are collected into
// a private registry (never the global one) and served by Handler.
func WithPrometheus() MetricsOption {
	return func(m *MetricsRecorder) {
		m.provider = PrometheusProvider
	}
}

// WithOTLP selects the OTLP/HTTP provider pushing to the given endpoint.
// An "http://" prefix selects an insecure connection; "https://" (or no
// scheme) selects TLS.
func WithOTLP(endpoint string) MetricsOption {
	return func(m *MetricsRecorder) {
		m.provider = OTLPProvider
		m.otlpEndpoint = endpoint
	}
}

// WithStdout selects the stdout provider. Development only.
func WithStdout() MetricsOption {
	return func(m *MetricsRecorder) {
		m.provider = StdoutProvider
	}
}

// WithMeterProvider supplies a caller-owned metric.MeterProvider, bypassing
// the built-in providers. The caller keeps responsibility for exporter
// lifecycle and shutdown. Tests typically pass a provider backed by
// sdkmetric.NewManualReader.
func WithMeterProvider(provider metric.MeterProvider) MetricsOption {
	return func(m *MetricsRecorder) {
		m.meterProvider = provider
		m.customProvider = true
	}
}

// WithExportInterval sets the push interval for periodic exporters
// (OTLP, stdout). Default: 30s.
func WithExportInterval(interval time.Duration) MetricsOption {
	return func(m *MetricsRecorder) {
		m.exportInterval = interval
	}
}

// WithDurationBuckets overrides DefaultDurationBuckets for the match
// duration histogram.
func WithDurationBuckets(buckets ...float64) MetricsOption {
	return func(m *MetricsRecorder) {
		m.durationBuckets = buckets
	}
}

// WithEventHandler sets the handler for operational events. Default: drop.
func WithEventHandler(handler EventHandler) MetricsOption {
	return func(m *MetricsRecorder) {
		m.events = handler
	}
}

// WithLogger routes operational events to the given slog.Logger. Shorthand
// for WithEventHandler(DefaultEventHandler(logger)).
func WithLogger(logger *slog.Logger) MetricsOption {
	return func(m *MetricsRecorder) {
		m.events = DefaultEventHandler(logger)
	}
}

// NewMetricsRecorder creates a metrics recorder. The default provider is
// Prometheus with a private registry.
func NewMetricsRecorder(opts ...MetricsOption) (*MetricsRecorder, error) {
	m := &MetricsRecorder{
		provider:        PrometheusProvider,
		exportInterval:  30 * time.Second,
		durationBuckets: DefaultDurationBuckets,
		events:          func(Event) {},
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.initProvider(); err != nil {
		return nil, err
	}
	if err := m.initInstruments(); err != nil {
		return nil, err
	}

	return m, nil
}

// initProvider sets up the meter provider for the configured backend.
func (m *MetricsRecorder) initProvider() error {
	if m.customProvider {
		if m.meterProvider == nil {
			return ErrNilMeterProvider
		}
		m.emit(EventDebug, "using custom meter provider")

		return nil
	}

	switch m.provider {
	case PrometheusProvider:
		return m.initPrometheus()
	case OTLPProvider:
		return m.initOTLP()
	case StdoutProvider:
		return m.initStdout()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedProvider, m.provider)
	}
}

func (m *MetricsRecorder) initPrometheus() error {
	// Private registry: never touch promclient's global default, so several
	// recorders can coexist in one process.
	m.prometheusRegistry = promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(m.prometheusRegistry))
	if err != nil {
		m.emit(EventError, "prometheus exporter init failed", "error", err)

		return fmt.Errorf("create prometheus exporter: %w", err)
	}

	m.sdkProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	m.meterProvider = m.sdkProvider
	m.prometheusHandler = promhttp.HandlerFor(m.prometheusRegistry, promhttp.HandlerOpts{})
	m.emit(EventInfo, "metrics provider initialized", "provider", PrometheusProvider)

	return nil
}

func (m *MetricsRecorder) initOTLP() error {
	var opts []otlpmetrichttp.Option
	if m.otlpEndpoint != "" {
		endpoint := m.otlpEndpoint
		insecure := false
		if rest, ok := strings.CutPrefix(endpoint, "http://"); ok {
			endpoint, insecure = rest, true
		} else {
			endpoint = strings.TrimPrefix(endpoint, "https://")
		}
		if idx := strings.Index(endpoint, "/"); idx != -1 {
			endpoint = endpoint[:idx]
		}
		opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
	}

	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		m.emit(EventError, "otlp exporter init failed", "error", err)

		return fmt.Errorf("create otlp exporter: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(m.exportInterval))
	m.sdkProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m.meterProvider = m.sdkProvider
	m.emit(EventInfo, "metrics provider initialized", "provider", OTLPProvider, "endpoint", m.otlpEndpoint)

	return nil
}

func (m *MetricsRecorder) initStdout() error {
	exporter, err := stdoutmetric.New()
	if err != nil {
		m.emit(EventError, "stdout exporter init failed", "error", err)

		return fmt.Errorf("create stdout exporter: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(m.exportInterval))
	m.sdkProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m.meterProvider = m.sdkProvider
	m.emit(EventInfo, "metrics provider initialized", "provider", StdoutProvider)

	return nil
}

func (m *MetricsRecorder) initInstruments() error {
	m.meter = m.meterProvider.Meter(meterName)

	var err error
	m.matchTotal, err = m.meter.Int64Counter("pathmatch.match.total",
		metric.WithDescription("Match enumerations, by whether any route matched"),
	)
	if err != nil {
		return fmt.Errorf("create match.total counter: %w", err)
	}

	m.matchDuration, err = m.meter.Float64Histogram("pathmatch.match.duration",
		metric.WithDescription("Duration of match enumerations"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(m.durationBuckets...),
	)
	if err != nil {
		return fmt.Errorf("create match.duration histogram: %w", err)
	}

	m.matchResults, err = m.meter.Int64Histogram("pathmatch.match.results",
		metric.WithDescription("Results yielded per match enumeration"),
	)
	if err != nil {
		return fmt.Errorf("create match.results histogram: %w", err)
	}

	m.routesGauge, err = m.meter.Int64Gauge("pathmatch.routes",
		metric.WithDescription("Routes registered on the router"),
	)
	if err != nil {
		return fmt.Errorf("create routes gauge: %w", err)
	}

	return nil
}

// matchState carries per-enumeration timing between the two hooks.
type matchState struct {
	start time.Time
}

// OnMatchStart implements ObservabilityRecorder.
func (m *MetricsRecorder) OnMatchStart(ctx context.Context, _ string) (context.Context, any) {
	return ctx, &matchState{start: time.Now()}
}

// OnMatchEnd implements ObservabilityRecorder.
func (m *MetricsRecorder) OnMatchEnd(ctx context.Context, state any, _ string, matches int) {
	ms, ok := state.(*matchState)
	if !ok {
		return
	}

	matched := attribute.Bool("matched", matches > 0)
	m.matchTotal.Add(ctx, 1, metric.WithAttributes(matched))
	m.matchDuration.Record(ctx, time.Since(ms.start).Seconds(), metric.WithAttributes(matched))
	m.matchResults.Record(ctx, int64(matches))
}

// RecordRoutes records the number of routes registered on a router. New
// calls this automatically when the recorder is installed via WithRecorder.
func (m *MetricsRecorder) RecordRoutes(count int) {
	m.routesGauge.Record(context.Background(), int64(count))
}

// Handler returns the Prometheus scrape handler, or nil for non-Prometheus
// providers. The caller mounts it wherever it serves HTTP; this library
// never opens sockets.
func (m *MetricsRecorder) Handler() http.Handler {
	return m.prometheusHandler
}

// Shutdown flushes and stops the built-in meter provider. It is a no-op for
// caller-supplied providers, whose lifecycle belongs to the caller.
func (m *MetricsRecorder) Shutdown(ctx context.Context) error {
	if m.sdkProvider == nil {
		return nil
	}
	m.emit(EventInfo, "metrics provider shutting down", "provider", m.provider)

	return m.sdkProvider.Shutdown(ctx)
}

func (m *MetricsRecorder) emit(t EventType, msg string, args ...any) {
	m.events(Event{Type: t, Message: msg, Args: args})
}
