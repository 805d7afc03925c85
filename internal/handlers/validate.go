// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for user-supplied fields.
const (
	maxEmailLen       = 254
	maxNameLen        = 200
	maxIndustryLen    = 200
	maxLogoURLLen     = 2_000_000 // data URIs
	maxProfileTextLen = 5_000
	maxContentLen     = 20_000
	maxTagLen         = 100
	maxTags           = 20
	minPasswordLen    = 8
)

// validateCredentials checks login/register inputs and returns the first
// error found, or "".
func validateCredentials(email, password string) string {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "Email y contraseña son requeridos"
	}
	if utf8.RuneCountInString(email) > maxEmailLen || !strings.Contains(email, "@") {
		return "Email inválido"
	}
	return ""
}

// validatePassword applies the registration password policy.
func validatePassword(password string) string {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "La contraseña debe tener al menos 8 caracteres"
	}
	return ""
}

// validateBrand checks brand create/update inputs.
func validateBrand(name, industry, logoURL string) string {
	if strings.TrimSpace(name) == "" {
		return "El nombre de la marca es requerido"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "El nombre de la marca es demasiado largo"
	}
	if utf8.RuneCountInString(industry) > maxIndustryLen {
		return "La industria es demasiado larga"
	}
	if len(logoURL) > maxLogoURLLen {
		return "El logo es demasiado grande"
	}
	return ""
}

// validateProfileName checks the campaign name of a DNA profile. The other
// profile fields are free text bounded by maxProfileTextLen.
func validateProfileName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "El nombre de la campaña es requerido"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "El nombre de la campaña es demasiado largo"
	}
	return ""
}

// validateProfileFields bounds the free-text DNA fields.
func validateProfileFields(fields ...string) string {
	for _, f := range fields {
		if utf8.RuneCountInString(f) > maxProfileTextLen {
			return "Un campo del perfil excede la longitud máxima"
		}
	}
	return ""
}

// validateTags bounds the tag list on saved variations.
func validateTags(tags []string) string {
	if len(tags) > maxTags {
		return "Demasiadas etiquetas"
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > maxTagLen {
			return "Una etiqueta excede la longitud máxima"
		}
	}
	return ""
}
