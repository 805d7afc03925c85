// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"myvoice/internal/models"
)

// CatalogStore reads the server-owned select lists (brand voices, campaign
// goals) that the frontend previously kept as local constants.
type CatalogStore struct {
	db *sql.DB
}

// NewCatalogStore creates a new CatalogStore with the given database connection.
func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ListByKind returns the options of one catalog in display order.
func (s *CatalogStore) ListByKind(kind string) ([]models.CatalogOption, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, label, position FROM catalog_options
		WHERE kind = $1 ORDER BY position ASC
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("list catalog %s: %w", kind, err)
	}
	defer rows.Close()

	var options []models.CatalogOption
	for rows.Next() {
		var o models.CatalogOption
		if err := rows.Scan(&o.ID, &o.Kind, &o.Label, &o.Position); err != nil {
			return nil, fmt.Errorf("scan catalog option: %w", err)
		}
		options = append(options, o)
	}
	return options, rows.Err()
}
