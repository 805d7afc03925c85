// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
)

type brandRequest struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	LogoURL  string `json:"logoUrl"`
}

// ListClients returns all brands with their DNA profiles embedded. CLIENT
// users see only their own brand.
func (a *API) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := a.clients.List(brandScope(a.claims(r)))
	if err != nil {
		slog.Error("brand list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al obtener marcas")
		return
	}

	for i := range clients {
		profiles, err := a.profiles.ListByClient(clients[i].ID)
		if err != nil {
			slog.Error("brand profile list failed", "error", err, "client_id", clients[i].ID)
			writeError(w, http.StatusInternalServerError, "Error al obtener marcas")
			return
		}
		clients[i].DNAProfiles = profiles
	}

	writeJSON(w, http.StatusOK, clients)
}

// CreateClient creates a brand. Admin only.
func (a *API) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := validateBrand(req.Name, req.Industry, req.LogoURL); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	client, err := a.clients.Create(req.Name, req.Industry, req.LogoURL)
	if err != nil {
		slog.Error("brand create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al crear la marca")
		return
	}

	writeJSON(w, http.StatusCreated, client)
}

// UpdateClient updates a brand. Admin only.
func (a *API) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var req brandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := validateBrand(req.Name, req.Industry, req.LogoURL); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	client, err := a.clients.Update(id, req.Name, req.Industry, req.LogoURL)
	if err != nil {
		slog.Error("brand update failed", "error", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "Error al actualizar la marca")
		return
	}
	if client == nil {
		writeError(w, http.StatusNotFound, "Marca no encontrada")
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// DeleteClient removes a brand and, by cascade, its DNA profiles, its
// users, and its saved variations. Admin only.
func (a *API) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	if err := a.clients.Delete(id); err != nil {
		slog.Error("brand delete failed", "error", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "Error al eliminar la marca")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
