package main

import (
	"context"
	"log"
	"net/http"

	"github.com/chris/regnet/pkg/backend"
	"github.com/chris/regnet/pkg/config"
	"github.com/chris/regnet/pkg/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := cfg.Logger()

	b, err := backend.Open(context.TODO(), cfg, logger)
	if err != nil {
		log.Fatalf("failed to open %s backend: %v", cfg.LedgerBackend, err)
	}
	defer b.Close()

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set, every request is anonymous")
	}

	router := handlers.NewRouter(b.Registry, logger, cfg.JWTSecret)

	logger.Info("Starting server", "port", cfg.HTTPPort, "ledger", cfg.LedgerBackend, "events", cfg.EventsBackend)

	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
