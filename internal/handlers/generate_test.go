// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"myvoice/internal/models"
)

func createGenerateFixtures(t *testing.T, env *testEnv) (*models.DNAProfile, *models.User) {
	t.Helper()

	brand := env.createBrand(t, "Generate Brand")
	profile, err := env.Profiles.Create(&models.DNAProfile{
		ClientID:         brand.ID,
		Name:             "Campaña Generación",
		Voice:            "Cercana y Amigable",
		Goal:             "Conversión Directa",
		Product:          "Plan familiar",
		TargetAudience:   "Padres jóvenes",
		ValueProposition: "Protección sin letra pequeña",
		PrimaryCTA:       "Afíliate hoy",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	admin := env.createUser(t, "generate-admin@gen-test.local", "testpass123", models.RoleAdmin, nil)
	return profile, admin
}

func TestGeneratePassesVariationsThrough(t *testing.T) {
	env := newTestEnv(t)
	profile, admin := createGenerateFixtures(t, env)

	// Two platforms, three angles each: a well-behaved provider returns six.
	env.Provider.response = `{"variations":[
		{"id":"email-1","platform":"Email","type":"Beneficio","content":"a","charCount":1},
		{"id":"email-2","platform":"Email","type":"Curiosidad","content":"b","charCount":1},
		{"id":"email-3","platform":"Email","type":"Urgencia","content":"c","charCount":1},
		{"id":"push-1","platform":"Push Notification","type":"Beneficio","content":"d","charCount":1},
		{"id":"push-2","platform":"Push Notification","type":"Curiosidad","content":"e","charCount":1},
		{"id":"push-3","platform":"Push Notification","type":"Urgencia","content":"f","charCount":1}
	]}`

	body := map[string]any{
		"dnaProfileId": profile.ID,
		"params": map[string]any{
			"platforms": []string{"Email", "Push Notification"},
		},
	}

	rec := httptest.NewRecorder()
	env.API.Generate(rec, withClaims(jsonRequest(t, http.MethodPost, "/api/generate", body), env.claimsFor(t, admin)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp generateResponse
	decodeBody(t, rec.Body, &resp)
	if len(resp.Variations) != 6 {
		t.Fatalf("variations: got %d, want 6", len(resp.Variations))
	}
	if resp.Variations[0].ID != "email-1" || resp.Variations[0].Type != models.VariationBenefit {
		t.Errorf("first variation: got %+v", resp.Variations[0])
	}
}

func TestGenerateUnknownProfile(t *testing.T) {
	env := newTestEnv(t)
	_, admin := createGenerateFixtures(t, env)

	rec := httptest.NewRecorder()
	env.API.Generate(rec, withClaims(jsonRequest(t, http.MethodPost, "/api/generate", map[string]any{
		"dnaProfileId": uuid.New(),
		"params":       map[string]any{"platforms": []string{"Email"}},
	}), env.claimsFor(t, admin)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}

func TestGenerateEmptyPlatforms(t *testing.T) {
	env := newTestEnv(t)
	profile, admin := createGenerateFixtures(t, env)

	rec := httptest.NewRecorder()
	env.API.Generate(rec, withClaims(jsonRequest(t, http.MethodPost, "/api/generate", map[string]any{
		"dnaProfileId": profile.ID,
		"params":       map[string]any{"platforms": []string{}},
	}), env.claimsFor(t, admin)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	env := newTestEnv(t)
	profile, admin := createGenerateFixtures(t, env)

	env.Provider.err = errors.New("upstream timeout")

	rec := httptest.NewRecorder()
	env.API.Generate(rec, withClaims(jsonRequest(t, http.MethodPost, "/api/generate", map[string]any{
		"dnaProfileId": profile.ID,
		"params":       map[string]any{"platforms": []string{"Email"}},
	}), env.claimsFor(t, admin)))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	// The upstream detail never reaches the response body.
	if body := rec.Body.String(); strings.Contains(body, "timeout") || strings.Contains(body, "upstream") {
		t.Errorf("provider detail leaked: %s", body)
	}
}

func TestGenerateMalformedProviderOutput(t *testing.T) {
	env := newTestEnv(t)
	profile, admin := createGenerateFixtures(t, env)

	env.Provider.response = "Lo siento, no puedo generar eso."

	rec := httptest.NewRecorder()
	env.API.Generate(rec, withClaims(jsonRequest(t, http.MethodPost, "/api/generate", map[string]any{
		"dnaProfileId": profile.ID,
		"params":       map[string]any{"platforms": []string{"WhatsApp"}},
	}), env.claimsFor(t, admin)))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
}
