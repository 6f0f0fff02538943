/*
 * Copyright (c) 2024, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	Handler() http.Handler

	// Collection
	IncRequests(route string, code int)
	ObserveResponseNS(route string, t int64)
}

type metricsStore struct {
	registry   *prometheus.Registry
	Requests   *prometheus.CounterVec
	ResponseNS *prometheus.HistogramVec
}

var (
	RouteLabel = "route"
	CodeLabel  = "code"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Millisecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "perihelion_requests",
			Help: "Request counts for the query API",
		}, []string{RouteLabel, CodeLabel}),
		ResponseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "perihelion_response_ns",
			Help:    "Response times for the query API",
			Buckets: buckets,
		}, []string{RouteLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.registry, promhttp.HandlerOpts{})
}

func (ms *metricsStore) IncRequests(route string, code int) {
	ms.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (ms *metricsStore) ObserveResponseNS(route string, t int64) {
	ms.ResponseNS.WithLabelValues(route).Observe(float64(t))
}
