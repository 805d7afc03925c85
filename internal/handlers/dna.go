// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"myvoice/internal/models"
)

type dnaProfileRequest struct {
	ClientID         uuid.UUID                `json:"clientId"`
	Name             string                   `json:"name"`
	Voice            string                   `json:"voice"`
	Goal             string                   `json:"goal"`
	Product          string                   `json:"product"`
	TargetAudience   string                   `json:"targetAudience"`
	Theme            string                   `json:"theme"`
	Keywords         string                   `json:"keywords"`
	VoiceGuidelines  string                   `json:"brandVoiceGuidelines"`
	ValueProposition string                   `json:"valueProposition"`
	PrimaryCTA       string                   `json:"primaryCTA"`
	FeedbackExamples []models.FeedbackExample `json:"feedbackExamples"`
}

func (req *dnaProfileRequest) validate() string {
	if msg := validateProfileName(req.Name); msg != "" {
		return msg
	}
	return validateProfileFields(
		req.Voice, req.Goal, req.Product, req.TargetAudience, req.Theme,
		req.Keywords, req.VoiceGuidelines, req.ValueProposition, req.PrimaryCTA,
	)
}

func (req *dnaProfileRequest) toModel() *models.DNAProfile {
	return &models.DNAProfile{
		ClientID:         req.ClientID,
		Name:             req.Name,
		Voice:            req.Voice,
		Goal:             req.Goal,
		Product:          req.Product,
		TargetAudience:   req.TargetAudience,
		Theme:            req.Theme,
		Keywords:         req.Keywords,
		VoiceGuidelines:  req.VoiceGuidelines,
		ValueProposition: req.ValueProposition,
		PrimaryCTA:       req.PrimaryCTA,
		FeedbackExamples: req.FeedbackExamples,
	}
}

// CreateDNAProfile creates a campaign brief for a brand. Admin only.
func (a *API) CreateDNAProfile(w http.ResponseWriter, r *http.Request) {
	var req dnaProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	brand, err := a.clients.FindByID(req.ClientID)
	if err != nil {
		slog.Error("profile brand lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al guardar perfil de ADN")
		return
	}
	if brand == nil {
		writeError(w, http.StatusBadRequest, "La marca indicada no existe")
		return
	}

	profile, err := a.profiles.Create(req.toModel())
	if err != nil {
		slog.Error("profile create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al guardar perfil de ADN")
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

// UpdateDNAProfile rewrites a campaign brief. Admin only. The owning brand
// never changes on update.
func (a *API) UpdateDNAProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var req dnaProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	profile, err := a.profiles.Update(id, req.toModel())
	if err != nil {
		slog.Error("profile update failed", "error", err, "profile_id", id)
		writeError(w, http.StatusInternalServerError, "Error al actualizar perfil de ADN")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "Perfil de ADN no encontrado")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// DeleteDNAProfile removes a campaign brief. Admin only.
func (a *API) DeleteDNAProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	if err := a.profiles.Delete(id); err != nil {
		slog.Error("profile delete failed", "error", err, "profile_id", id)
		writeError(w, http.StatusInternalServerError, "Error al eliminar perfil de ADN")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
