// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a grouping label for saved library entries.
type Project struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CatalogOption is a server-owned select-list entry (brand voices, campaign
// goals). Kind distinguishes the catalog it belongs to.
type CatalogOption struct {
	ID       uuid.UUID `json:"id"`
	Kind     string    `json:"kind"` // "voice" or "goal"
	Label    string    `json:"label"`
	Position int       `json:"position"`
}

// Catalog kinds.
const (
	CatalogVoice = "voice"
	CatalogGoal  = "goal"
)
