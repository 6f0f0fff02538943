/*
 * Copyright (c) 2024, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package server exposes a read-only HTTP query surface over a built
// database. The database never changes after startup, so handlers read
// it without locking.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/astralkit/perihelion/pkg/database"
	"github.com/astralkit/perihelion/pkg/export"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore

	database *database.Database
	port     int
}

func New(log zerolog.Logger, db *database.Database, port int) Server {
	return Server{
		log,
		NewMetricsStore(),
		db,
		port,
	}
}

// ListenAndServe blocks, serving the query API and the /metrics
// endpoint on the configured port.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.Handle("/v1/query", s.instrument("/v1/query", s.handleQuery))
	mux.Handle("/v1/neo", s.instrument("/v1/neo", s.handleNEO))
	mux.Handle("/metrics", s.metrics.Handler())

	s.log.Info().Int("port", s.port).Msg("listening for query requests")
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), mux)
}

// statusRecorder captures the response code for logs and metrics.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(route string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		start := time.Now()
		h(rec, req)
		elapsed := time.Since(start)

		s.metrics.IncRequests(route, rec.code)
		s.metrics.ObserveResponseNS(route, elapsed.Nanoseconds())
		s.log.Info().
			Str("request-id", requestID).
			Str("route", route).
			Int("code", rec.code).
			Dur("elapsed", elapsed).
			Msg("handled request")
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("unable to write response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleQuery(w http.ResponseWriter, req *http.Request) {
	query, limit, err := QueryFromParams(req.URL.Query())
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	records := []export.Record{}
	for ca := range database.Limit(s.database.Query(query), limit) {
		records = append(records, export.NewRecord(ca))
	}

	s.writeJSON(w, http.StatusOK, records)
}

// neoResponse is a NEO plus all of its close approaches.
type neoResponse struct {
	export.NEORecord
	Approaches []export.Record `json:"approaches"`
}

func (s *Server) handleNEO(w http.ResponseWriter, req *http.Request) {
	params := req.URL.Query()

	var neo *database.NearEarthObject
	switch {
	case params.Get("designation") != "":
		neo = s.database.GetNEOByDesignation(params.Get("designation"))
	case params.Get("name") != "":
		neo = s.database.GetNEOByName(params.Get("name"))
	default:
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "designation or name parameter is required"})
		return
	}

	if neo == nil {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no matching NEO"})
		return
	}

	approaches := make([]export.Record, 0, len(neo.Approaches))
	for _, ca := range neo.Approaches {
		approaches = append(approaches, export.NewRecord(ca))
	}

	s.writeJSON(w, http.StatusOK, neoResponse{
		NEORecord:  export.NewNEORecord(neo),
		Approaches: approaches,
	})
}
