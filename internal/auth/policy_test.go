// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package auth

import "testing"

func TestPolicyIsInternalEmail(t *testing.T) {
	p := NewPolicy([]string{"lobueno.co", "grupolobueno.com"}, "")

	tests := []struct {
		email string
		want  bool
	}{
		{"ana@lobueno.co", true},
		{"ANA@LOBUENO.CO", true},
		{"ops@grupolobueno.com", true},
		{"ana@gmail.com", false},
		{"ana@lobueno.co.evil.com", false},
		{"ana@sublobueno.co", false},
		{"no-at-sign", false},
		{"trailing@", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := p.IsInternalEmail(tt.email); got != tt.want {
			t.Errorf("IsInternalEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestPolicyAllowMasterPassword(t *testing.T) {
	p := NewPolicy([]string{"lobueno.co"}, "Lobueno2025*")

	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"internal email, right password", "user@lobueno.co", "Lobueno2025*", true},
		{"internal email, wrong password", "user@lobueno.co", "guess", false},
		{"external email, right password", "user@gmail.com", "Lobueno2025*", false},
		{"empty password", "user@lobueno.co", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.AllowMasterPassword(tt.email, tt.password); got != tt.want {
				t.Errorf("AllowMasterPassword(%q, %q) = %v, want %v", tt.email, tt.password, got, tt.want)
			}
		})
	}
}

// TestPolicyDisabledWithoutMasterPassword checks the single-switch off state:
// no configured master password means the rule never matches, even for
// internal emails.
func TestPolicyDisabledWithoutMasterPassword(t *testing.T) {
	p := NewPolicy([]string{"lobueno.co"}, "")

	if p.AllowMasterPassword("user@lobueno.co", "") {
		t.Error("empty master password must disable the rule, not match empty input")
	}
	if p.AllowMasterPassword("user@lobueno.co", "anything") {
		t.Error("rule matched with the feature disabled")
	}
	// Domain promotion is independent of the master password.
	if !p.IsInternalEmail("user@lobueno.co") {
		t.Error("IsInternalEmail must keep working with the backdoor disabled")
	}
}
