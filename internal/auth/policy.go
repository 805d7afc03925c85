// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package auth

import "strings"

// Policy decides which accounts belong to the agency itself.
//
// Two deliberate operational rules are concentrated here:
//
//  1. Emails on an internal domain are auto-promoted to admin at
//     registration and login time.
//  2. When a master password is configured, it authenticates any
//     internal-domain email regardless of stored credentials, creating the
//     account on first use.
//
// Both rules are product sign-off territory; keeping them behind this one
// type means the backdoor can be disabled by leaving MasterPassword empty.
type Policy struct {
	internalDomains []string
	masterPassword  string
}

// NewPolicy creates a Policy. Domains are matched case-insensitively; an
// empty masterPassword disables the master-password rule entirely.
func NewPolicy(internalDomains []string, masterPassword string) *Policy {
	domains := make([]string, 0, len(internalDomains))
	for _, d := range internalDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			domains = append(domains, d)
		}
	}
	return &Policy{internalDomains: domains, masterPassword: masterPassword}
}

// IsInternalEmail reports whether the email's domain is on the internal
// allowlist.
func (p *Policy) IsInternalEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, d := range p.internalDomains {
		if domain == d {
			return true
		}
	}
	return false
}

// AllowMasterPassword reports whether the given credentials satisfy the
// master-password rule: the feature is enabled, the email is internal, and
// the password matches exactly.
func (p *Policy) AllowMasterPassword(email, password string) bool {
	if p.masterPassword == "" {
		return false
	}
	return p.IsInternalEmail(email) && password == p.masterPassword
}
