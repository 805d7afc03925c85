// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

// Package prompt assembles the instruction block sent to the generation
// engine. Construction is fully deterministic: identical inputs produce a
// byte-identical prompt.
package prompt

import (
	"fmt"
	"strings"

	"myvoice/internal/models"
)

// System sets the model's behaviour for every generation call.
const System = "Eres un redactor creativo experto en estrategia de marca y marketing digital."

// BuildParams carries everything the builder needs: the brand name, the
// campaign brief, and the requested output channels.
type BuildParams struct {
	ClientName string
	Profile    models.DNAProfile
	Platforms  []models.Platform
}

// Build renders the full user prompt: role preamble, strategic-DNA section,
// optional few-shot history, per-platform formatting rules, the
// three-variations-per-platform instruction, and the strict JSON response
// contract.
//
// An empty platform list is an error: a request for zero variations must
// never reach the provider.
func Build(params BuildParams) (string, error) {
	if len(params.Platforms) == 0 {
		return "", fmt.Errorf("prompt: no platforms requested")
	}
	for _, p := range params.Platforms {
		if !p.Valid() {
			return "", fmt.Errorf("prompt: unknown platform %q", p)
		}
	}

	profile := params.Profile
	var b strings.Builder

	fmt.Fprintf(&b, "Actúa como \"My Voice\", el motor de copy estratégico de Grupo LoBueno.\n")
	fmt.Fprintf(&b, "Tu misión es generar contenido para %q basándote EXCLUSIVAMENTE en su ADN Estratégico.\n\n", params.ClientName)

	b.WriteString("ADN ESTRATÉGICO (PARÁMETROS OBLIGATORIOS):\n")
	fmt.Fprintf(&b, "- Propuesta de Valor: %s\n", profile.ValueProposition)
	fmt.Fprintf(&b, "- Guías de Voz: %s\n", profile.VoiceGuidelines)
	fmt.Fprintf(&b, "- Tono: %s\n", profile.Voice)
	fmt.Fprintf(&b, "- Producto: %s\n", profile.Product)
	fmt.Fprintf(&b, "- Público: %s\n", profile.TargetAudience)
	fmt.Fprintf(&b, "- Objetivo: %s\n", profile.Goal)
	fmt.Fprintf(&b, "- CTA Principal: %s\n", profile.PrimaryCTA)
	fmt.Fprintf(&b, "- Mensaje Central: %s\n", profile.Theme)
	fmt.Fprintf(&b, "- Keywords: %s\n", profile.Keywords)

	// Few-shot block: omitted entirely when there is no history, never
	// emitted as an empty section.
	if len(profile.FeedbackExamples) > 0 {
		b.WriteString("\nHISTÓRICO DE ÉXITO (USA ESTOS EJEMPLOS COMO GUÍA DE ESTILO Y EFECTIVIDAD):\n")
		for _, ex := range profile.FeedbackExamples {
			fmt.Fprintf(&b, "- [%s]: %q\n", ex.Platform, ex.Content)
		}
	}

	b.WriteString("\nREGLAS DE FORMATO:\n")
	b.WriteString("1. Email: Estructura [ASUNTO] - [HEADER] - [BODY] - [CTA].\n")
	b.WriteString("2. Push Notification: [Título] | [Cuerpo] (Max 45/120 carac.).\n")
	b.WriteString("3. WhatsApp: Negritas para énfasis, max 2 emojis.\n")
	b.WriteString("4. Instagram Post: Hook inicial, 3-5 hashtags, [IDEA VISUAL: descripción].\n")
	b.WriteString("5. Google Ads: [Título] | [Descripción] (Max 30/90 carac.).\n")
	b.WriteString("6. Pop up: [TÍTULO] | [CUERPO] | [CTA].\n")

	names := make([]string, len(params.Platforms))
	for i, p := range params.Platforms {
		names[i] = string(p)
	}
	fmt.Fprintf(&b, "\nGenera exactamente 3 variaciones por cada una de estas plataformas: %s.\n", strings.Join(names, ", "))
	b.WriteString("V1: Beneficio Directo.\n")
	b.WriteString("V2: Curiosidad/Storytelling.\n")
	b.WriteString("V3: Urgencia/Conversión.\n")

	b.WriteString("\nResponde estrictamente en formato JSON con la siguiente estructura:\n")
	b.WriteString(`{"variations":[{"id":"string","platform":"string","type":"Beneficio"|"Curiosidad"|"Urgencia","content":"string","charCount":number}]}`)
	b.WriteString("\n")

	return b.String(), nil
}
