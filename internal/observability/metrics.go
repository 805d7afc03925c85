// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

// Package observability holds the Prometheus instrumentation for the API.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the My Voice API.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can serve it.
	Registry *prometheus.Registry

	requestDuration    *prometheus.HistogramVec
	requestsTotal      *prometheus.CounterVec
	generationsTotal   *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	loginsTotal        *prometheus.CounterVec
	rateLimited        prometheus.Counter
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "myvoice_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myvoice_http_requests_total",
				Help: "Total HTTP requests by route and status code.",
			},
			[]string{"method", "route", "status"},
		),
		generationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myvoice_generations_total",
				Help: "Total copy generation attempts by provider and outcome.",
			},
			[]string{"provider", "status"},
		),
		generationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "myvoice_generation_duration_seconds",
				Help:    "End-to-end duration of copy generation calls.",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 90},
			},
			[]string{"provider"},
		),
		loginsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myvoice_logins_total",
				Help: "Total login attempts by outcome.",
			},
			[]string{"status"},
		),
		rateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "myvoice_rate_limited_total",
				Help: "Total requests rejected by the rate limiter.",
			},
		),
	}
}

// RecordRequest records one completed HTTP request.
func (m *Metrics) RecordRequest(method, route string, status int, d time.Duration) {
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	m.requestsTotal.WithLabelValues(method, route, code).Inc()
}

// RecordGeneration records one copy generation attempt.
func (m *Metrics) RecordGeneration(provider, status string, d time.Duration) {
	m.generationsTotal.WithLabelValues(provider, status).Inc()
	m.generationDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// IncrLogin increments the login counter with an outcome label
// ("success", "failure").
func (m *Metrics) IncrLogin(status string) {
	m.loginsTotal.WithLabelValues(status).Inc()
}

// IncrRateLimited increments the rejected-request counter.
func (m *Metrics) IncrRateLimited() {
	m.rateLimited.Inc()
}
