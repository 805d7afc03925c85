// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackExample is a historically successful piece of copy, supplied to
// the generation engine as a few-shot style hint.
type FeedbackExample struct {
	Platform string `json:"platform"`
	Content  string `json:"content"`
}

// DNAProfile is a campaign brief: the strategic parameters that constrain
// every piece of copy generated for a brand.
type DNAProfile struct {
	ID               uuid.UUID         `json:"id"`
	ClientID         uuid.UUID         `json:"clientId"`
	Name             string            `json:"name"`
	Voice            string            `json:"voice"`
	Goal             string            `json:"goal"`
	Product          string            `json:"product"`
	TargetAudience   string            `json:"targetAudience"`
	Theme            string            `json:"theme"`
	Keywords         string            `json:"keywords"`
	VoiceGuidelines  string            `json:"brandVoiceGuidelines"`
	ValueProposition string            `json:"valueProposition"`
	PrimaryCTA       string            `json:"primaryCTA"`
	FeedbackExamples []FeedbackExample `json:"feedbackExamples"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}
