// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"myvoice/internal/ai"
	"myvoice/internal/auth"
	"myvoice/internal/database"
	"myvoice/internal/middleware"
	"myvoice/internal/models"
	"myvoice/internal/observability"
	"myvoice/internal/store"
)

// mockAIProvider implements ai.Provider for handler tests.
type mockAIProvider struct {
	name     string
	response string
	err      error
}

func (m *mockAIProvider) Name() string { return m.name }
func (m *mockAIProvider) Generate(_ context.Context, _, _ string) (string, error) {
	return m.response, m.err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "myvoice")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "myvoice")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

const testMasterPassword = "TestMaster2025*"

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB       *sql.DB
	Users    *store.UserStore
	Clients  *store.ClientStore
	Profiles *store.DNAProfileStore
	Saved    *store.SavedStore
	Projects *store.ProjectStore
	Catalogs *store.CatalogStore
	Provider *mockAIProvider
	Signer   *auth.Signer
	Policy   *auth.Policy
	Auth     *Auth
	API      *API
}

// newTestEnv creates a complete test environment with all handler
// dependencies and a mocked AI provider.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	users := store.NewUserStore(db)
	clients := store.NewClientStore(db)
	profiles := store.NewDNAProfileStore(db)
	saved := store.NewSavedStore(db)
	projects := store.NewProjectStore(db)
	catalogs := store.NewCatalogStore(db)

	provider := &mockAIProvider{name: "test", response: `{"variations":[]}`}
	registry := ai.NewRegistry("test", nil)
	registry.Register("test", provider)

	signer := auth.NewSigner("handlers-test-secret")
	policy := auth.NewPolicy([]string{"lobueno.co", "grupolobueno.com"}, testMasterPassword)
	metrics := observability.NewMetrics()

	return &testEnv{
		DB:       db,
		Users:    users,
		Clients:  clients,
		Profiles: profiles,
		Saved:    saved,
		Projects: projects,
		Catalogs: catalogs,
		Provider: provider,
		Signer:   signer,
		Policy:   policy,
		Auth:     NewAuth(users, clients, signer, policy, metrics),
		API:      NewAPI(users, clients, profiles, saved, projects, catalogs, ai.NewGateway(registry), metrics),
	}
}

// createBrand inserts a brand and removes it (with cascades) on cleanup.
func (env *testEnv) createBrand(t *testing.T, name string) *models.Client {
	t.Helper()

	brand, err := env.Clients.Create(name, "Testing", "")
	if err != nil {
		t.Fatalf("create brand: %v", err)
	}
	t.Cleanup(func() { env.Clients.Delete(brand.ID) })
	return brand
}

// createUser inserts a user and removes it on cleanup.
func (env *testEnv) createUser(t *testing.T, email, password string, role models.Role, clientID *uuid.UUID) *models.User {
	t.Helper()

	env.cleanUser(t, email)
	user, err := env.Users.Create(email, password, "Test User", role, clientID)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() { env.Users.Delete(user.ID) })
	return user
}

// cleanUser deletes a user row by email, now and again at cleanup.
func (env *testEnv) cleanUser(t *testing.T, email string) {
	t.Helper()

	del := func() { env.DB.Exec("DELETE FROM users WHERE email = $1", email) }
	del()
	t.Cleanup(del)
}

// claimsFor builds verified claims the way Authenticate would.
func (env *testEnv) claimsFor(t *testing.T, user *models.User) *auth.Claims {
	t.Helper()

	token, err := env.Signer.Sign(user)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := env.Signer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	return claims
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withClaims injects claims into the request context using the middleware key.
func withClaims(r *http.Request, claims *auth.Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.ClaimsKey, claims))
}

// withURLParam adds a chi URL parameter to a request.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeBody decodes a JSON response body into dst.
func decodeBody(t *testing.T, body io.Reader, dst any) {
	t.Helper()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
