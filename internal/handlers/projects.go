// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"
)

// ListProjects returns all projects, newest first.
func (a *API) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := a.projects.List()
	if err != nil {
		slog.Error("project list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al obtener proyectos")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// CreateProject creates a grouping label for library entries. Admin only.
func (a *API) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "El nombre del proyecto es requerido")
		return
	}
	if utf8.RuneCountInString(req.Name) > maxNameLen {
		writeError(w, http.StatusBadRequest, "El nombre del proyecto es demasiado largo")
		return
	}

	project, err := a.projects.Create(req.Name)
	if err != nil {
		slog.Error("project create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al crear proyecto")
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// DeleteProject removes a project; its library entries stay and lose the
// grouping. Admin only.
func (a *API) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		slog.Error("project delete failed", "error", err, "project_id", id)
		writeError(w, http.StatusInternalServerError, "Error al eliminar proyecto")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
