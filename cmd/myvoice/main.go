// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the My Voice API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myvoice/internal/ai"
	"myvoice/internal/auth"
	"myvoice/internal/cache"
	"myvoice/internal/config"
	"myvoice/internal/database"
	"myvoice/internal/handlers"
	"myvoice/internal/observability"
	"myvoice/internal/router"
	"myvoice/internal/store"
)

// loginRateLimit allows this many credential attempts per IP per window.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if users already exist).
	if cfg.IsDev() {
		if err := database.Seed(db, cfg.MasterPassword); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey, which backs the shared login rate limiter.
	// The API stays up without it; the limiter is simply disabled.
	var limiter *cache.RateLimiter
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, login rate limiting disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		limiter = cache.NewRateLimiter(valkeyClient, "login", loginRateLimit, loginRateWindow)
	}

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	clientStore := store.NewClientStore(db)
	profileStore := store.NewDNAProfileStore(db)
	savedStore := store.NewSavedStore(db)
	projectStore := store.NewProjectStore(db)
	catalogStore := store.NewCatalogStore(db)

	// Initialize the AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai": {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"gemini": {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	gateway := ai.NewGateway(aiRegistry)

	// Access control: token signing plus the master-password and
	// internal-domain rules.
	signer := auth.NewSigner(cfg.JWTSecret)
	policy := auth.NewPolicy(cfg.InternalDomains, cfg.MasterPassword)

	metrics := observability.NewMetrics()

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(userStore, clientStore, signer, policy, metrics)
	api := handlers.NewAPI(userStore, clientStore, profileStore, savedStore, projectStore, catalogStore, gateway, metrics)

	// Set up the Chi router with all middleware and routes.
	r := router.New(signer, limiter, metrics, authHandlers, api)

	// WriteTimeout must accommodate generation endpoints that wait on LLM
	// responses (typically 5-30s, up to 60s for large platform sets).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
