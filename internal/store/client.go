// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"myvoice/internal/models"
)

// ClientStore handles all brand-related database operations.
type ClientStore struct {
	db *sql.DB
}

// NewClientStore creates a new ClientStore with the given database connection.
func NewClientStore(db *sql.DB) *ClientStore {
	return &ClientStore{db: db}
}

// List returns all brands ordered by creation date. When scope is non-nil,
// only that brand is returned (CLIENT-role visibility filtering happens here,
// at the data-access layer).
func (s *ClientStore) List(scope *uuid.UUID) ([]models.Client, error) {
	query := `
		SELECT id, name, industry, logo_url, created_at, updated_at
		FROM clients
	`
	args := []any{}
	if scope != nil {
		query += ` WHERE id = $1`
		args = append(args, *scope)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// FindByID retrieves a brand by its UUID. Returns nil if not found.
func (s *ClientStore) FindByID(id uuid.UUID) (*models.Client, error) {
	c := &models.Client{}
	err := s.db.QueryRow(`
		SELECT id, name, industry, logo_url, created_at, updated_at
		FROM clients WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Industry, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client by id: %w", err)
	}
	return c, nil
}

// Create inserts a new brand.
func (s *ClientStore) Create(name, industry, logoURL string) (*models.Client, error) {
	c := &models.Client{}
	err := s.db.QueryRow(`
		INSERT INTO clients (name, industry, logo_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, industry, logo_url, created_at, updated_at
	`, name, industry, logoURL).Scan(&c.ID, &c.Name, &c.Industry, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return c, nil
}

// Update modifies a brand's fields. Returns nil if the brand does not exist.
func (s *ClientStore) Update(id uuid.UUID, name, industry, logoURL string) (*models.Client, error) {
	c := &models.Client{}
	err := s.db.QueryRow(`
		UPDATE clients
		SET name = $1, industry = $2, logo_url = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, industry, logo_url, created_at, updated_at
	`, name, industry, logoURL, id).Scan(&c.ID, &c.Name, &c.Industry, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

// Delete removes a brand. DNA profiles and saved variations cascade at the
// database level; brand users go with them.
func (s *ClientStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
