// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"myvoice/internal/database"
	"myvoice/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "myvoice")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "myvoice")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// createTestClient inserts a brand and registers cleanup for it (cascades
// take dependent rows with it).
func createTestClient(t *testing.T, db *sql.DB, name string) *models.Client {
	t.Helper()

	s := NewClientStore(db)
	c, err := s.Create(name, "Testing", "")
	if err != nil {
		t.Fatalf("create test client: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM clients WHERE id = $1`, c.ID)
	})
	return c
}

// createTestProfile inserts a minimal campaign brief for the given brand.
func createTestProfile(t *testing.T, db *sql.DB, clientID uuid.UUID, name string) *models.DNAProfile {
	t.Helper()

	s := NewDNAProfileStore(db)
	p, err := s.Create(&models.DNAProfile{
		ClientID:         clientID,
		Name:             name,
		Voice:            "Cercana y Amigable",
		Goal:             "Conversión (Venta)",
		Product:          "Producto de prueba",
		TargetAudience:   "Audiencia de prueba",
		Theme:            "Mensaje central",
		Keywords:         "prueba, test",
		VoiceGuidelines:  "Tono cercano",
		ValueProposition: "Propuesta de valor",
		PrimaryCTA:       "Compra ya",
		FeedbackExamples: []models.FeedbackExample{},
	})
	if err != nil {
		t.Fatalf("create test profile: %v", err)
	}
	return p
}

func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, email := range emails {
		if _, err := db.Exec(`DELETE FROM users WHERE email = $1`, email); err != nil {
			t.Logf("cleanup user %s: %v", email, err)
		}
	}
}
