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

// DNAProfileStore handles all campaign-brief database operations.
// Feedback examples are held as a JSONB document on the profile row.
type DNAProfileStore struct {
	db *sql.DB
}

// NewDNAProfileStore creates a new DNAProfileStore with the given database connection.
func NewDNAProfileStore(db *sql.DB) *DNAProfileStore {
	return &DNAProfileStore{db: db}
}

const dnaColumns = `id, client_id, name, voice, goal, product, target_audience,
	theme, keywords, voice_guidelines, value_proposition, primary_cta,
	feedback_examples, created_at, updated_at`

func scanDNAProfile(row interface{ Scan(...any) error }) (*models.DNAProfile, error) {
	p := &models.DNAProfile{}
	var examples []byte
	err := row.Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Voice, &p.Goal, &p.Product,
		&p.TargetAudience, &p.Theme, &p.Keywords, &p.VoiceGuidelines,
		&p.ValueProposition, &p.PrimaryCTA, &examples, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(examples, &p.FeedbackExamples); err != nil {
		return nil, fmt.Errorf("decode feedback examples: %w", err)
	}
	if p.FeedbackExamples == nil {
		p.FeedbackExamples = []models.FeedbackExample{}
	}
	return p, nil
}

// FindByID retrieves a profile by its UUID. Returns nil if not found.
func (s *DNAProfileStore) FindByID(id uuid.UUID) (*models.DNAProfile, error) {
	p, err := scanDNAProfile(s.db.QueryRow(`
		SELECT `+dnaColumns+` FROM dna_profiles WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find dna profile by id: %w", err)
	}
	return p, nil
}

// ListByClient returns all profiles belonging to a brand, newest first.
func (s *DNAProfileStore) ListByClient(clientID uuid.UUID) ([]models.DNAProfile, error) {
	rows, err := s.db.Query(`
		SELECT `+dnaColumns+` FROM dna_profiles
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list dna profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.DNAProfile
	for rows.Next() {
		p, err := scanDNAProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dna profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// Create inserts a new campaign brief for a brand.
func (s *DNAProfileStore) Create(p *models.DNAProfile) (*models.DNAProfile, error) {
	examples, err := json.Marshal(p.FeedbackExamples)
	if err != nil {
		return nil, fmt.Errorf("encode feedback examples: %w", err)
	}

	created, err := scanDNAProfile(s.db.QueryRow(`
		INSERT INTO dna_profiles (
			client_id, name, voice, goal, product, target_audience, theme,
			keywords, voice_guidelines, value_proposition, primary_cta,
			feedback_examples
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+dnaColumns,
		p.ClientID, p.Name, p.Voice, p.Goal, p.Product, p.TargetAudience,
		p.Theme, p.Keywords, p.VoiceGuidelines, p.ValueProposition,
		p.PrimaryCTA, examples,
	))
	if err != nil {
		return nil, fmt.Errorf("create dna profile: %w", err)
	}
	return created, nil
}

// Update overwrites a profile's brief fields. Returns nil if the profile
// does not exist.
func (s *DNAProfileStore) Update(id uuid.UUID, p *models.DNAProfile) (*models.DNAProfile, error) {
	examples, err := json.Marshal(p.FeedbackExamples)
	if err != nil {
		return nil, fmt.Errorf("encode feedback examples: %w", err)
	}

	updated, err := scanDNAProfile(s.db.QueryRow(`
		UPDATE dna_profiles
		SET name = $1, voice = $2, goal = $3, product = $4,
		    target_audience = $5, theme = $6, keywords = $7,
		    voice_guidelines = $8, value_proposition = $9, primary_cta = $10,
		    feedback_examples = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING `+dnaColumns,
		p.Name, p.Voice, p.Goal, p.Product, p.TargetAudience, p.Theme,
		p.Keywords, p.VoiceGuidelines, p.ValueProposition, p.PrimaryCTA,
		examples, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update dna profile: %w", err)
	}
	return updated, nil
}

// Delete removes a profile by ID.
func (s *DNAProfileStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM dna_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dna profile: %w", err)
	}
	return nil
}
