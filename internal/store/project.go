// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"myvoice/internal/models"
)

// ProjectStore handles project grouping labels for the content library.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// List returns all projects, newest first.
func (s *ProjectStore) List() ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, name, created_at FROM projects ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// FindByID retrieves a project by its UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p := &models.Project{}
	err := s.db.QueryRow(`
		SELECT id, name, created_at FROM projects WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project.
func (s *ProjectStore) Create(name string) (*models.Project, error) {
	p := &models.Project{}
	err := s.db.QueryRow(`
		INSERT INTO projects (name) VALUES ($1)
		RETURNING id, name, created_at
	`, name).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// Delete removes a project. Library entries grouped under it are kept with
// their project reference cleared (FK is ON DELETE SET NULL).
func (s *ProjectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
