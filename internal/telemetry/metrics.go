// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
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

// Package telemetry provides optional Prometheus export of operation
// counts and latencies, on top of the same numbers pkg/measurement
// keeps internally. Disabled by default; all public functions are
// no-ops until Enable is called, so callers can wire them
// unconditionally into the hot path.
package telemetry

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ycsbgo/pkg/ycsb"
)

var (
	modEnabled atomic.Bool

	opsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ycsbgo_ops_total",
		Help: "Total operations executed, by kind",
	}, []string{"op"})
	opLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ycsbgo_op_latency_seconds",
		Help:    "Per-operation latency distribution, by kind",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	opFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ycsbgo_op_failures_total",
		Help: "Total operations that returned a non-OK status or error, by kind",
	}, []string{"op"})
	currentRateGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ycsbgo_target_rate_ops_per_sec",
		Help: "Current configured target throughput, 0 meaning unbounded",
	})
)

func init() {
	prometheus.MustRegister(opsTotal, opLatencySeconds, opFailuresTotal, currentRateGauge)
}

// Enable turns on metric recording and, if addr is non-empty, starts a
// dedicated HTTP server exposing /metrics on addr.
func Enable(addr string) {
	modEnabled.Store(true)
	if addr != "" {
		startMetricsEndpoint(addr)
	}
}

// Enabled reports whether telemetry recording is active.
func Enabled() bool { return modEnabled.Load() }

// Observe records one completed operation's outcome and latency.
func Observe(kind ycsb.OpKind, elapsed time.Duration) {
	if !modEnabled.Load() {
		return
	}
	label := kind.String()
	opsTotal.WithLabelValues(label).Inc()
	opLatencySeconds.WithLabelValues(label).Observe(elapsed.Seconds())
	if kind >= ycsb.OpReadFailed && kind <= ycsb.OpDeleteFailed {
		opFailuresTotal.WithLabelValues(label).Inc()
	}
}

// SetTargetRate publishes the driver's current target throughput, 0
// meaning unbounded.
func SetTargetRate(opsPerSec float64) {
	if !modEnabled.Load() {
		return
	}
	currentRateGauge.Set(opsPerSec)
}

func startMetricsEndpoint(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		_ = server.ListenAndServe()
	}()
}

// Shutdown is a placeholder for symmetry with the rest of the driver's
// component lifecycle; the metrics HTTP server is intentionally left
// running for the process lifetime rather than torn down mid-run.
func Shutdown(ctx context.Context) error { return nil }
