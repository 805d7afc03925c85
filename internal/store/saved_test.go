// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"myvoice/internal/models"
)

// TestSavedStoreRoundTrip verifies that saving a variation and re-reading it
// yields identical content and charCount. The count is stored as received,
// never recomputed.
func TestSavedStoreRoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewSavedStore(db)

	c := createTestClient(t, db, "Marca Biblioteca")

	// charCount deliberately disagrees with len(content): the store must
	// keep it untouched.
	created, err := s.Create(&models.SavedVariation{
		ClientID:  c.ID,
		Platform:  models.PlatformEmail,
		Type:      models.VariationBenefit,
		Content:   "[ASUNTO] - [HEADER] - [BODY] - [CTA]",
		CharCount: 999,
		Tags:      []string{"lanzamiento", "q3"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("FindByID returned nil")
	}
	if found.Content != created.Content {
		t.Errorf("content: got %q, want %q", found.Content, created.Content)
	}
	if found.CharCount != 999 {
		t.Errorf("charCount: got %d, want 999 (stored as received)", found.CharCount)
	}
	if len(found.Tags) != 2 || found.Tags[0] != "lanzamiento" {
		t.Errorf("tags did not round-trip: %v", found.Tags)
	}
	if found.IsApproved {
		t.Error("new entry must not be approved")
	}
}

// TestSavedStoreListScope verifies brand scoping of the library listing.
func TestSavedStoreListScope(t *testing.T) {
	db := testDB(t)
	s := NewSavedStore(db)

	mine := createTestClient(t, db, "Marca Mía")
	other := createTestClient(t, db, "Marca Otra")

	for _, brand := range []*models.Client{mine, other} {
		if _, err := s.Create(&models.SavedVariation{
			ClientID:  brand.ID,
			Platform:  models.PlatformPush,
			Type:      models.VariationUrgency,
			Content:   "Última oportunidad | Solo por hoy",
			CharCount: 33,
			Tags:      []string{},
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	scoped, err := s.List(&mine.ID)
	if err != nil {
		t.Fatalf("List scoped: %v", err)
	}
	if len(scoped) != 1 {
		t.Fatalf("scoped list has %d entries, want 1", len(scoped))
	}
	for _, v := range scoped {
		if v.ClientID != mine.ID {
			t.Errorf("scoped list leaked entry for brand %s", v.ClientID)
		}
	}
}

func TestSavedStoreUpdateAndApprove(t *testing.T) {
	db := testDB(t)
	s := NewSavedStore(db)
	projects := NewProjectStore(db)

	c := createTestClient(t, db, "Marca Edición")
	project, err := projects.Create("Campaña Q4")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	t.Cleanup(func() { projects.Delete(project.ID) })

	created, err := s.Create(&models.SavedVariation{
		ClientID:  c.ID,
		Platform:  models.PlatformInstagram,
		Type:      models.VariationCuriosity,
		Content:   "¿Sabías que...? #marca #historia",
		CharCount: 32,
		Tags:      []string{},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := s.Update(created.ID, "¿Sabías que todo cambió? #marca", &project.ID, []string{"aprobados"}, true)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("Update returned nil for existing entry")
	}
	if !updated.IsApproved {
		t.Error("approval flag not persisted")
	}
	if updated.ProjectID == nil || *updated.ProjectID != project.ID {
		t.Errorf("project id: got %v, want %s", updated.ProjectID, project.ID)
	}

	// Deleting the project keeps the entry but clears its grouping.
	if err := projects.Delete(project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("entry vanished with its project")
	}
	if found.ProjectID != nil {
		t.Errorf("project id after project delete: got %v, want nil", found.ProjectID)
	}
}
