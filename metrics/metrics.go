// /home/krylon/go/src/github.com/blicero/camdash/metrics/metrics.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 20:15:08 krylon>

// Package metrics collects a few numbers about the dashboard and exposes
// them to Prometheus.
package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "camdash"

// Outcomes of API requests, used as label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Registry holds the application's metrics. A nil *Registry is valid and
// records nothing, so components do not have to check.
type Registry struct {
	reg *prometheus.Registry

	APIRequests *prometheus.CounterVec
	APILatency  *prometheus.HistogramVec
	Cameras     *prometheus.GaugeVec
	Sessions    prometheus.Gauge
	PageViews   *prometheus.CounterVec
}

// New creates a Registry with all metrics registered.
func New() *Registry {
	var r = &Registry{
		reg: prometheus.NewRegistry(),
		APIRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Requests sent to the camera API, by operation and outcome.",
			},
			[]string{"op", "outcome"},
		),
		APILatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "Duration of requests to the camera API.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		Cameras: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cameras",
				Help:      "Cameras in the most recently loaded list, by status.",
			},
			[]string{"status"},
		),
		Sessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions",
				Help:      "Dashboard sessions currently alive.",
			},
		),
		PageViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_views_total",
				Help:      "Rendered pages, by template.",
			},
			[]string{"page"},
		),
	}

	r.reg.MustRegister(
		r.APIRequests,
		r.APILatency,
		r.Cameras,
		r.Sessions,
		r.PageViews,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
} // func New() *Registry

// Handler returns an http.Handler that serves the metrics.
func (r *Registry) Handler(l *log.Logger) http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{
		ErrorLog: l,
	})
} // func (r *Registry) Handler(l *log.Logger) http.Handler

// ObserveRequest records one request to the camera API.
func (r *Registry) ObserveRequest(op string, started time.Time, err error) {
	if r == nil {
		return
	}

	var outcome = OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}

	r.APIRequests.WithLabelValues(op, outcome).Inc()
	r.APILatency.WithLabelValues(op).Observe(time.Since(started).Seconds())
} // func (r *Registry) ObserveRequest(op string, started time.Time, err error)

// SetCameras records the number of active and inactive cameras.
func (r *Registry) SetCameras(active, inactive int) {
	if r == nil {
		return
	}

	r.Cameras.WithLabelValues("Active").Set(float64(active))
	r.Cameras.WithLabelValues("Inactive").Set(float64(inactive))
} // func (r *Registry) SetCameras(active, inactive int)

// SetSessions records the number of live dashboard sessions.
func (r *Registry) SetSessions(n int) {
	if r == nil {
		return
	}

	r.Sessions.Set(float64(n))
} // func (r *Registry) SetSessions(n int)

// PageView counts a rendered page.
func (r *Registry) PageView(page string) {
	if r == nil {
		return
	}

	r.PageViews.WithLabelValues(page).Inc()
} // func (r *Registry) PageView(page string)
