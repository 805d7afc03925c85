// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"myvoice/internal/models"
)

// ErrGenerationFailed is the single error surfaced to callers when a
// generation attempt fails for any reason: transport error, non-2xx provider
// response, unparsable output, or a response that does not match the
// variations contract. Details are logged, never returned; there is no
// retry and no partial result.
var ErrGenerationFailed = errors.New("generation failed")

// generationResponse is the contract the prompt instructs the model to honor.
type generationResponse struct {
	Variations []models.CopyVariation `json:"variations"`
}

// Gateway submits prompts to the active provider and returns typed copy
// variations. Every invocation is a fresh provider call; nothing is cached.
type Gateway struct {
	registry *Registry
}

// NewGateway creates a Gateway over the given provider registry.
func NewGateway(registry *Registry) *Gateway {
	return &Gateway{registry: registry}
}

// ProviderName reports the active provider name, for instrumentation.
func (g *Gateway) ProviderName() string {
	return g.registry.ActiveName()
}

// GenerateCopy sends the prompt to the active provider and parses its output.
// The returned slice is whatever well-formed array the provider produced;
// the gateway never enforces a variation count of its own.
func (g *Gateway) GenerateCopy(ctx context.Context, systemPrompt, userPrompt string) ([]models.CopyVariation, error) {
	raw, err := g.registry.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		slog.Error("generation provider call failed",
			"provider", g.registry.ActiveName(),
			"error", err,
		)
		return nil, ErrGenerationFailed
	}

	variations, err := ParseVariations(raw)
	if err != nil {
		slog.Error("generation response rejected",
			"provider", g.registry.ActiveName(),
			"error", err,
		)
		return nil, ErrGenerationFailed
	}
	return variations, nil
}

// ParseVariations decodes a provider response into typed variations.
// The response must be a JSON object with a "variations" array. Invalid
// JSON and a missing or null key are errors. An explicit empty array is
// well-formed and passes through as such.
func ParseVariations(raw string) ([]models.CopyVariation, error) {
	cleaned := stripCodeFence(raw)

	var resp generationResponse
	dec := json.NewDecoder(strings.NewReader(cleaned))
	if err := dec.Decode(&resp); err != nil {
		return nil, errors.New("response is not valid JSON")
	}
	if resp.Variations == nil {
		return nil, errors.New(`response has no "variations" array`)
	}
	return resp.Variations, nil
}

// stripCodeFence removes a surrounding markdown code fence. Some models wrap
// their JSON in ```json blocks even when asked for a bare document.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
