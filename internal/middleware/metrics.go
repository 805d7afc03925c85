// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"myvoice/internal/observability"
)

// Metrics records request count and duration for every HTTP request.
// The route label uses the chi route pattern ("/api/clients/{id}") rather
// than the raw path, to keep cardinality bounded.
func Metrics(m *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			m.RecordRequest(r.Method, route, wrapped.statusCode, time.Since(start))
		})
	}
}
