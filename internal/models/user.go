// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's permission level in the system.
type Role string

const (
	// RoleAdmin is an internal (agency) user with unrestricted access.
	RoleAdmin Role = "ADMIN"
	// RoleClient is an external brand user, bound to exactly one client.
	RoleClient Role = "CLIENT"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// User represents a platform user.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never serialize the hash
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	ClientID     *uuid.UUID `json:"clientId,omitempty"` // Required when Role == CLIENT
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
