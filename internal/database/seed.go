// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: the agency
// super-admin account and a handful of demo brands. It is a no-op when any
// user already exists.
func Seed(db *sql.DB, adminPassword string) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	if adminPassword == "" {
		adminPassword = "Lobueno2025*"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
	`, "admin@lobueno.co", string(hash), "Super Admin Lobueno", "ADMIN")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	brands := []struct {
		name     string
		industry string
	}{
		{"Terpel", "Energía y Combustibles"},
		{"Huggies", "Cuidado Infantil"},
		{"Volkswagen", "Automotriz"},
		{"Colmédica", "Salud"},
	}

	for _, b := range brands {
		if _, err := db.Exec(`
			INSERT INTO clients (name, industry) VALUES ($1, $2)
		`, b.name, b.industry); err != nil {
			return fmt.Errorf("seed insert brand %s: %w", b.name, err)
		}
	}

	slog.Info("database seeded with default admin and demo brands",
		"email", "admin@lobueno.co",
	)

	return nil
}
