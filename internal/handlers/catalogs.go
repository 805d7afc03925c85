// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"myvoice/internal/models"
)

// ListCatalogs returns the server-owned select lists (brand voices and
// campaign goals) the profile editor is built from.
func (a *API) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	voices, err := a.catalogs.ListByKind(models.CatalogVoice)
	if err != nil {
		slog.Error("catalog list failed", "error", err, "kind", models.CatalogVoice)
		writeError(w, http.StatusInternalServerError, "Error al obtener catálogos")
		return
	}

	goals, err := a.catalogs.ListByKind(models.CatalogGoal)
	if err != nil {
		slog.Error("catalog list failed", "error", err, "kind", models.CatalogGoal)
		writeError(w, http.StatusInternalServerError, "Error al obtener catálogos")
		return
	}

	writeJSON(w, http.StatusOK, map[string][]models.CatalogOption{
		"voices": voices,
		"goals":  goals,
	})
}
