// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
)

// ListUsers returns every platform user. Admin only. Password hashes are
// never serialized.
func (a *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.List()
	if err != nil {
		slog.Error("user list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al obtener usuarios")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// DeleteUser removes a user account. Admin only. Admins cannot delete
// themselves, so the platform always keeps at least the caller.
func (a *API) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	claims := a.claims(r)
	if claims != nil {
		if selfID, err := claims.UserID(); err == nil && selfID == id {
			writeError(w, http.StatusBadRequest, "No puedes eliminar tu propio usuario")
			return
		}
	}

	if err := a.users.Delete(id); err != nil {
		slog.Error("user delete failed", "error", err, "user_id", id)
		writeError(w, http.StatusInternalServerError, "Error al eliminar usuario")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
