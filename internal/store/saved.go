// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"myvoice/internal/models"
)

// SavedStore handles the content library: variations the user chose to keep.
type SavedStore struct {
	db *sql.DB
}

// NewSavedStore creates a new SavedStore with the given database connection.
func NewSavedStore(db *sql.DB) *SavedStore {
	return &SavedStore{db: db}
}

const savedColumns = `id, client_id, project_id, platform, type, content,
	char_count, tags, is_approved, saved_at, updated_at`

func scanSaved(row interface{ Scan(...any) error }) (*models.SavedVariation, error) {
	v := &models.SavedVariation{}
	var tags []byte
	err := row.Scan(
		&v.ID, &v.ClientID, &v.ProjectID, &v.Platform, &v.Type, &v.Content,
		&v.CharCount, &tags, &v.IsApproved, &v.SavedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &v.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	return v, nil
}

// List returns library entries newest first. When scope is non-nil only the
// given brand's entries are returned; CLIENT-role visibility is enforced
// here, at the data-access layer.
func (s *SavedStore) List(scope *uuid.UUID) ([]models.SavedVariation, error) {
	query := `SELECT ` + savedColumns + ` FROM saved_variations`
	args := []any{}
	if scope != nil {
		query += ` WHERE client_id = $1`
		args = append(args, *scope)
	}
	query += ` ORDER BY saved_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list saved variations: %w", err)
	}
	defer rows.Close()

	var items []models.SavedVariation
	for rows.Next() {
		v, err := scanSaved(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved variation: %w", err)
		}
		items = append(items, *v)
	}
	return items, rows.Err()
}

// FindByID retrieves a library entry by its UUID. Returns nil if not found.
func (s *SavedStore) FindByID(id uuid.UUID) (*models.SavedVariation, error) {
	v, err := scanSaved(s.db.QueryRow(`
		SELECT `+savedColumns+` FROM saved_variations WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find saved variation by id: %w", err)
	}
	return v, nil
}

// Create persists a variation into the library. Content and charCount are
// stored exactly as received; charCount is never recomputed.
func (s *SavedStore) Create(v *models.SavedVariation) (*models.SavedVariation, error) {
	tags, err := json.Marshal(v.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	created, err := scanSaved(s.db.QueryRow(`
		INSERT INTO saved_variations (client_id, project_id, platform, type, content, char_count, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+savedColumns,
		v.ClientID, v.ProjectID, v.Platform, v.Type, v.Content, v.CharCount, tags,
	))
	if err != nil {
		return nil, fmt.Errorf("create saved variation: %w", err)
	}
	return created, nil
}

// Update edits a library entry's content, grouping, tags and approval flag.
// Returns nil if the entry does not exist.
func (s *SavedStore) Update(id uuid.UUID, content string, projectID *uuid.UUID, tags []string, isApproved bool) (*models.SavedVariation, error) {
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	updated, err := scanSaved(s.db.QueryRow(`
		UPDATE saved_variations
		SET content = $1, project_id = $2, tags = $3, is_approved = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING `+savedColumns,
		content, projectID, encoded, isApproved, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update saved variation: %w", err)
	}
	return updated, nil
}

// Delete removes a library entry by ID.
func (s *SavedStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM saved_variations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete saved variation: %w", err)
	}
	return nil
}
