// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

// Package auth implements bearer-token issuing and verification plus the
// access policy for internal-domain accounts. The domain auto-promotion and
// master-password rules live only in this package so they can be audited or
// disabled in one place.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"myvoice/internal/models"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

// Claims is the payload carried by every access token.
type Claims struct {
	Role     models.Role `json:"role"`
	ClientID *uuid.UUID  `json:"clientId,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim parsed as a UUID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Signer issues and verifies HMAC-signed access tokens.
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer with the given HMAC secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign issues a token for the given user, valid for TokenTTL.
func (s *Signer) Sign(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:     user.Role,
		ClientID: user.ClientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			Issuer:    "myvoice-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
// Expired tokens, bad signatures, and non-HMAC algorithms all fail.
func (s *Signer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("invalid role claim %q", claims.Role)
	}
	return claims, nil
}
