// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"myvoice/internal/auth"
	"myvoice/internal/models"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// ClaimsKey is the context key for the verified token claims.
	ClaimsKey contextKey = "claims"
)

// Authenticate verifies the Bearer token on every request and stores the
// claims in the request context. A missing token is 401, a token that fails
// verification (bad signature, expired, malformed) is 403.
func Authenticate(signer *auth.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				jsonError(w, "Token no proporcionado", http.StatusUnauthorized)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				jsonError(w, "Token inválido o expirado", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin returns 403 if the authenticated user is not an ADMIN.
// Must be applied after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromCtx(r.Context())
		if claims == nil || claims.Role != models.RoleAdmin {
			jsonError(w, "Acceso denegado: permiso insuficiente", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClaimsFromCtx extracts the verified claims from the request context.
// Returns nil if the request did not pass through Authenticate.
func ClaimsFromCtx(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(ClaimsKey).(*auth.Claims)
	return claims
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

// jsonError writes a JSON error body. Middleware cannot use the handlers
// package helpers without an import cycle.
func jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
