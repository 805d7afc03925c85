// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a brand managed on the platform. LogoURL is an opaque
// image reference (data URI or CDN URL) supplied by the frontend.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	LogoURL   string    `json:"logoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// DNAProfiles is populated on brand listings so the frontend can
	// bootstrap its profile picker in a single request.
	DNAProfiles []DNAProfile `json:"dnaProfiles,omitempty"`
}
