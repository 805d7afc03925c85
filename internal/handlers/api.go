// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"myvoice/internal/ai"
	"myvoice/internal/auth"
	"myvoice/internal/middleware"
	"myvoice/internal/models"
	"myvoice/internal/observability"
	"myvoice/internal/store"
)

// API groups the authenticated resource handlers with their dependencies.
type API struct {
	users    *store.UserStore
	clients  *store.ClientStore
	profiles *store.DNAProfileStore
	saved    *store.SavedStore
	projects *store.ProjectStore
	catalogs *store.CatalogStore
	gateway  *ai.Gateway
	metrics  *observability.Metrics
}

// NewAPI creates a new API handler group with the given dependencies.
func NewAPI(users *store.UserStore, clients *store.ClientStore, profiles *store.DNAProfileStore, saved *store.SavedStore, projects *store.ProjectStore, catalogs *store.CatalogStore, gateway *ai.Gateway, metrics *observability.Metrics) *API {
	return &API{
		users:    users,
		clients:  clients,
		profiles: profiles,
		saved:    saved,
		projects: projects,
		catalogs: catalogs,
		gateway:  gateway,
		metrics:  metrics,
	}
}

// claims returns the verified token claims; the router guarantees they are
// present on every authenticated route.
func (a *API) claims(r *http.Request) *auth.Claims {
	return middleware.ClaimsFromCtx(r.Context())
}

// brandScope returns the brand a CLIENT user is confined to, or nil for
// ADMIN users.
func brandScope(claims *auth.Claims) *uuid.UUID {
	if claims == nil || claims.Role != models.RoleClient {
		return nil
	}
	return claims.ClientID
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}
