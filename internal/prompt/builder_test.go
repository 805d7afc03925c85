// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"strings"
	"testing"

	"myvoice/internal/models"
)

func sampleProfile() models.DNAProfile {
	return models.DNAProfile{
		Name:             "Campaña Evolución Terpel",
		Voice:            "Cercana y Amigable",
		Goal:             "Fidelización (Retención)",
		Product:          "Puntos Colombia / Gasolina Evo",
		TargetAudience:   "Conductores urbanos y transportadores",
		Theme:            "Redención de puntos por galonaje acumulado",
		Keywords:         "rendimiento, ahorro, energía, Colombia",
		VoiceGuidelines:  "Ser serviciales, evitar ser demasiado técnicos.",
		ValueProposition: "Terpel es la energía que conecta a todo un país.",
		PrimaryCTA:       "Redime tus puntos aquí",
		FeedbackExamples: []models.FeedbackExample{},
	}
}

func sampleParams() BuildParams {
	return BuildParams{
		ClientName: "Terpel",
		Profile:    sampleProfile(),
		Platforms:  []models.Platform{models.PlatformEmail, models.PlatformPush},
	}
}

// TestBuildContainsEveryProfileField: every brief field must appear verbatim.
func TestBuildContainsEveryProfileField(t *testing.T) {
	params := sampleParams()
	got, err := Build(params)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	p := params.Profile
	for name, field := range map[string]string{
		"value proposition": p.ValueProposition,
		"voice guidelines":  p.VoiceGuidelines,
		"voice":             p.Voice,
		"product":           p.Product,
		"target audience":   p.TargetAudience,
		"goal":              p.Goal,
		"primary cta":       p.PrimaryCTA,
		"theme":             p.Theme,
		"keywords":          p.Keywords,
	} {
		if !strings.Contains(got, field) {
			t.Errorf("prompt is missing %s %q", name, field)
		}
	}

	if !strings.Contains(got, `"Terpel"`) {
		t.Error("prompt is missing the brand name")
	}
}

// TestBuildContainsRequestedPlatforms: the variation instruction must list
// exactly the requested channels.
func TestBuildContainsRequestedPlatforms(t *testing.T) {
	got, err := Build(sampleParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if !strings.Contains(got, "plataformas: Email, Push Notification.") {
		t.Errorf("prompt does not enumerate the requested platforms:\n%s", got)
	}
	if !strings.Contains(got, "exactamente 3 variaciones") {
		t.Error("prompt is missing the 3-variations rule")
	}
	for _, angle := range []string{"Beneficio Directo", "Curiosidad/Storytelling", "Urgencia/Conversión"} {
		if !strings.Contains(got, angle) {
			t.Errorf("prompt is missing rhetorical angle %q", angle)
		}
	}
}

// TestBuildFormatRules: all six platform templates are always present.
func TestBuildFormatRules(t *testing.T) {
	got, err := Build(sampleParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rules := []string{
		"Email: Estructura [ASUNTO] - [HEADER] - [BODY] - [CTA].",
		"Push Notification: [Título] | [Cuerpo] (Max 45/120 carac.).",
		"WhatsApp: Negritas para énfasis, max 2 emojis.",
		"Instagram Post: Hook inicial, 3-5 hashtags, [IDEA VISUAL: descripción].",
		"Google Ads: [Título] | [Descripción] (Max 30/90 carac.).",
		"Pop up: [TÍTULO] | [CUERPO] | [CTA].",
	}
	for _, rule := range rules {
		if !strings.Contains(got, rule) {
			t.Errorf("prompt is missing format rule %q", rule)
		}
	}
}

// TestBuildFewShotOmittedWhenEmpty: no history means no HISTÓRICO section at
// all, not an empty one.
func TestBuildFewShotOmittedWhenEmpty(t *testing.T) {
	got, err := Build(sampleParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if strings.Contains(got, "HISTÓRICO DE ÉXITO") {
		t.Error("few-shot block present despite empty feedback examples")
	}
}

func TestBuildFewShotIncluded(t *testing.T) {
	params := sampleParams()
	params.Profile.FeedbackExamples = []models.FeedbackExample{
		{Platform: "Email", Content: "Tu tanque lleno suma doble"},
		{Platform: "Push Notification", Content: "Hoy tus puntos valen más"},
	}

	got, err := Build(params)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if !strings.Contains(got, "HISTÓRICO DE ÉXITO") {
		t.Fatal("few-shot block missing despite feedback examples")
	}
	if !strings.Contains(got, `- [Email]: "Tu tanque lleno suma doble"`) {
		t.Error("first feedback example not rendered verbatim")
	}
	if !strings.Contains(got, `- [Push Notification]: "Hoy tus puntos valen más"`) {
		t.Error("second feedback example not rendered verbatim")
	}
}

// TestBuildDeterministic: identical inputs must give byte-identical prompts.
func TestBuildDeterministic(t *testing.T) {
	params := sampleParams()
	params.Profile.FeedbackExamples = []models.FeedbackExample{
		{Platform: "WhatsApp", Content: "Pide el tuyo *hoy*"},
	}

	first, err := Build(params)
	if err != nil {
		t.Fatalf("Build (first): %v", err)
	}
	second, err := Build(params)
	if err != nil {
		t.Fatalf("Build (second): %v", err)
	}
	if first != second {
		t.Error("two builds with identical inputs differ")
	}
}

func TestBuildRejectsEmptyPlatforms(t *testing.T) {
	params := sampleParams()
	params.Platforms = nil

	if _, err := Build(params); err == nil {
		t.Fatal("Build accepted an empty platform list")
	}
}

func TestBuildRejectsUnknownPlatform(t *testing.T) {
	params := sampleParams()
	params.Platforms = []models.Platform{models.Platform("TikTok")}

	if _, err := Build(params); err == nil {
		t.Fatal("Build accepted an unknown platform")
	}
}

// TestBuildJSONContract: the strict response-structure instruction closes
// the prompt.
func TestBuildJSONContract(t *testing.T) {
	got, err := Build(sampleParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(got, `{"variations":[{"id":"string","platform":"string","type":"Beneficio"|"Curiosidad"|"Urgencia","content":"string","charCount":number}]}`) {
		t.Error("prompt is missing the JSON response contract")
	}
}
