// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// VariationType is the rhetorical angle of a generated variation.
type VariationType string

const (
	VariationBenefit   VariationType = "Beneficio"
	VariationCuriosity VariationType = "Curiosidad"
	VariationUrgency   VariationType = "Urgencia"
)

// CopyVariation is one generated piece of copy for one platform and one
// rhetorical angle. It is ephemeral: nothing is persisted until the user
// explicitly saves it into the library.
//
// ID, content and charCount come straight from the generation engine and
// are passed through untouched; charCount is never recomputed server-side.
type CopyVariation struct {
	ID        string        `json:"id"`
	Platform  Platform      `json:"platform"`
	Type      VariationType `json:"type"`
	Content   string        `json:"content"`
	CharCount int           `json:"charCount"`
}

// SavedVariation is a CopyVariation the user chose to keep, scoped to a
// brand and optionally grouped under a project.
type SavedVariation struct {
	ID         uuid.UUID     `json:"id"`
	ClientID   uuid.UUID     `json:"clientId"`
	ProjectID  *uuid.UUID    `json:"projectId,omitempty"`
	Platform   Platform      `json:"platform"`
	Type       VariationType `json:"type"`
	Content    string        `json:"content"`
	CharCount  int           `json:"charCount"`
	Tags       []string      `json:"tags"`
	IsApproved bool          `json:"isApproved"`
	SavedAt    time.Time     `json:"savedAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
