// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"myvoice/internal/models"
	"myvoice/internal/prompt"
)

type generateRequest struct {
	DNAProfileID uuid.UUID `json:"dnaProfileId"`
	Params       struct {
		Platforms []models.Platform `json:"platforms"`
	} `json:"params"`
}

type generateResponse struct {
	Variations []models.CopyVariation `json:"variations"`
}

// Generate builds the prompt for the selected DNA profile and platform
// list, calls the active provider, and passes the variations array through
// untouched.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	profile, err := a.profiles.FindByID(req.DNAProfileID)
	if err != nil {
		slog.Error("generate profile lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error en la generación de contenido")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "Perfil de ADN no encontrado")
		return
	}

	brand, err := a.clients.FindByID(profile.ClientID)
	if err != nil || brand == nil {
		slog.Error("generate brand lookup failed", "error", err, "client_id", profile.ClientID)
		writeError(w, http.StatusInternalServerError, "Error en la generación de contenido")
		return
	}

	userPrompt, err := prompt.Build(prompt.BuildParams{
		ClientName: brand.Name,
		Profile:    *profile,
		Platforms:  req.Params.Platforms,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "Selecciona al menos una plataforma válida")
		return
	}

	start := time.Now()
	variations, err := a.gateway.GenerateCopy(r.Context(), prompt.System, userPrompt)
	a.metrics.RecordGeneration(a.gateway.ProviderName(), generationStatus(err), time.Since(start))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error en la generación de contenido")
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Variations: variations})
}

func generationStatus(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
