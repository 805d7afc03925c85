// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"myvoice/internal/models"
)

// ListSaved returns the content library, newest first. CLIENT users see
// only their own brand's entries.
func (a *API) ListSaved(w http.ResponseWriter, r *http.Request) {
	variations, err := a.saved.List(brandScope(a.claims(r)))
	if err != nil {
		slog.Error("library list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al obtener la biblioteca")
		return
	}

	writeJSON(w, http.StatusOK, variations)
}

type saveVariationRequest struct {
	ClientID  uuid.UUID            `json:"clientId"`
	ProjectID *uuid.UUID           `json:"projectId"`
	Platform  models.Platform      `json:"platform"`
	Type      models.VariationType `json:"type"`
	Content   string               `json:"content"`
	CharCount int                  `json:"charCount"`
	Tags      []string             `json:"tags"`
}

// SaveVariation archives one generated variation into the library.
// CLIENT users can only save into their own brand. Content and charCount
// are stored as received; charCount is never recomputed.
func (a *API) SaveVariation(w http.ResponseWriter, r *http.Request) {
	var req saveVariationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if !req.Platform.Valid() {
		writeError(w, http.StatusBadRequest, "Plataforma inválida")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "El contenido es requerido")
		return
	}
	if msg := validateTags(req.Tags); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if scope := brandScope(a.claims(r)); scope != nil && *scope != req.ClientID {
		writeError(w, http.StatusForbidden, "No tienes permiso para usar esta marca")
		return
	}

	variation, err := a.saved.Create(&models.SavedVariation{
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		Platform:  req.Platform,
		Type:      req.Type,
		Content:   req.Content,
		CharCount: req.CharCount,
		Tags:      req.Tags,
	})
	if err != nil {
		slog.Error("library save failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al guardar en la biblioteca")
		return
	}

	writeJSON(w, http.StatusCreated, variation)
}

type updateVariationRequest struct {
	Content    string     `json:"content"`
	ProjectID  *uuid.UUID `json:"projectId"`
	Tags       []string   `json:"tags"`
	IsApproved bool       `json:"isApproved"`
}

// UpdateVariation edits a library entry: content, tags, project grouping
// and the approval flag.
func (a *API) UpdateVariation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var req updateVariationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "El contenido es requerido")
		return
	}
	if msg := validateTags(req.Tags); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing, found := a.findScopedVariation(w, r, id)
	if !found {
		return
	}

	variation, err := a.saved.Update(existing.ID, req.Content, req.ProjectID, req.Tags, req.IsApproved)
	if err != nil {
		slog.Error("library update failed", "error", err, "variation_id", id)
		writeError(w, http.StatusInternalServerError, "Error al actualizar la biblioteca")
		return
	}

	writeJSON(w, http.StatusOK, variation)
}

// DeleteVariation removes a library entry. Approved entries are immutable
// history and cannot be deleted; un-approve first.
func (a *API) DeleteVariation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	existing, found := a.findScopedVariation(w, r, id)
	if !found {
		return
	}
	if existing.IsApproved {
		writeError(w, http.StatusConflict, "No se puede eliminar una variación aprobada")
		return
	}

	if err := a.saved.Delete(existing.ID); err != nil {
		slog.Error("library delete failed", "error", err, "variation_id", id)
		writeError(w, http.StatusInternalServerError, "Error al eliminar de la biblioteca")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// findScopedVariation loads a library entry and enforces brand scoping.
// Entries outside a CLIENT's brand read as not found, so ids do not leak
// across tenants. Writes the error response itself when it returns false.
func (a *API) findScopedVariation(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*models.SavedVariation, bool) {
	variation, err := a.saved.FindByID(id)
	if err != nil {
		slog.Error("library lookup failed", "error", err, "variation_id", id)
		writeError(w, http.StatusInternalServerError, "Error al obtener la biblioteca")
		return nil, false
	}
	if variation == nil {
		writeError(w, http.StatusNotFound, "Variación no encontrada")
		return nil, false
	}
	if scope := brandScope(a.claims(r)); scope != nil && *scope != variation.ClientID {
		writeError(w, http.StatusNotFound, "Variación no encontrada")
		return nil, false
	}
	return variation, true
}
