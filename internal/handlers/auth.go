// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"myvoice/internal/auth"
	"myvoice/internal/models"
	"myvoice/internal/observability"
	"myvoice/internal/store"
)

// Auth groups the credential endpoints.
type Auth struct {
	users   *store.UserStore
	clients *store.ClientStore
	signer  *auth.Signer
	policy  *auth.Policy
	metrics *observability.Metrics
}

// NewAuth creates a new Auth handler group.
func NewAuth(users *store.UserStore, clients *store.ClientStore, signer *auth.Signer, policy *auth.Policy, metrics *observability.Metrics) *Auth {
	return &Auth{
		users:   users,
		clients: clients,
		signer:  signer,
		policy:  policy,
		metrics: metrics,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginUser is the user object returned by login, with the brand embedded
// for CLIENT users so the frontend can scope itself in one round trip.
type loginUser struct {
	ID     uuid.UUID      `json:"id"`
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Role   models.Role    `json:"role"`
	Client *models.Client `json:"client"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// Login authenticates by email and password. When the bcrypt check fails,
// the master-password policy may still authenticate an internal-domain
// email, creating (or reusing) its ADMIN account.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := validateCredentials(req.Email, req.Password); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := a.users.FindByEmail(email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error en el login")
		return
	}

	authenticated := user != nil && a.users.CheckPassword(user, req.Password)

	if !authenticated && a.policy.AllowMasterPassword(email, req.Password) {
		// First master-password login provisions the ADMIN account;
		// later ones reuse it.
		user, err = a.users.UpsertAdmin(email, req.Password, adminNameFor(email))
		if err != nil {
			slog.Error("master password upsert failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Error en el login")
			return
		}
		authenticated = true
	}

	if !authenticated {
		a.metrics.IncrLogin("failure")
		writeError(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	token, err := a.signer.Sign(user)
	if err != nil {
		slog.Error("token sign failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error en el login")
		return
	}

	resp := loginResponse{
		Token: token,
		User: loginUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}
	if user.ClientID != nil {
		brand, err := a.clients.FindByID(*user.ClientID)
		if err != nil {
			slog.Error("login brand lookup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Error en el login")
			return
		}
		resp.User.Client = brand
	}

	a.metrics.IncrLogin("success")
	writeJSON(w, http.StatusOK, resp)
}

type registerRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Name     string     `json:"name"`
	Role     string     `json:"role"`
	ClientID *uuid.UUID `json:"clientId"`
}

// Register creates a user account. Internal-domain emails always become
// ADMIN regardless of the requested role; everyone else registers as
// CLIENT and must name their brand.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := validateCredentials(req.Email, req.Password); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validatePassword(req.Password); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = adminNameFor(email)
	}

	existing, err := a.users.FindByEmail(email)
	if err != nil {
		slog.Error("register lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al registrar usuario")
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "El usuario ya existe")
		return
	}

	role := models.Role(req.Role)
	clientID := req.ClientID
	if a.policy.IsInternalEmail(email) {
		role = models.RoleAdmin
		clientID = nil
	} else {
		if !role.Valid() {
			role = models.RoleClient
		}
		if role == models.RoleClient {
			if clientID == nil {
				writeError(w, http.StatusBadRequest, "clientId es requerido para usuarios CLIENT")
				return
			}
			brand, err := a.clients.FindByID(*clientID)
			if err != nil {
				slog.Error("register brand lookup failed", "error", err)
				writeError(w, http.StatusInternalServerError, "Error al registrar usuario")
				return
			}
			if brand == nil {
				writeError(w, http.StatusBadRequest, "La marca indicada no existe")
				return
			}
		}
	}

	user, err := a.users.Create(email, req.Password, name, role, clientID)
	if err != nil {
		slog.Error("register create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al registrar usuario")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Usuario creado",
		"userId":  user.ID,
	})
}

// adminNameFor derives a display name from an email local part.
func adminNameFor(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	if local == "" {
		return email
	}
	return local
}
