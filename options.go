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

// Option configures a Router during construction.
type Option func(*Router)

// WithRecorder installs an observability recorder that is invoked around
// every Match enumeration. Passing nil fails New with ErrNilRecorder.
//
// Example with metrics:
//
//	rec, err := pathmatch.NewMetricsRecorder(pathmatch.WithPrometheus())
//	if err != nil {
//	    return err
//	}
//	r, err := pathmatch.New(routes, pathmatch.WithRecorder(rec))
//
// Example combining metrics and tracing:
//
//	r, err := pathmatch.New(routes,
//	    pathmatch.WithRecorder(pathmatch.Recorders(metricsRec, tracingRec)),
//	)
func WithRecorder(rec ObservabilityRecorder) Option {
	return func(r *Router) {
		r.recorder = rec
		r.recorderSet = true
	}
}
