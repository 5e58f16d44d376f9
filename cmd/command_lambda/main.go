package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/regnet/pkg/backend"
	"github.com/chris/regnet/pkg/config"
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

	h := &Handler{Registry: b.Registry, Logger: logger}
	lambda.Start(h.HandleRequest)
}
