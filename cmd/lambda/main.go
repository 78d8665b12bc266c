// Package main is the entry point for the translation tools Lambda function.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/pricofy/azure-translator/internal/config"
	"github.com/pricofy/azure-translator/internal/document"
	"github.com/pricofy/azure-translator/internal/handler"
	"github.com/pricofy/azure-translator/internal/logging"
	"github.com/pricofy/azure-translator/internal/router"
	"github.com/pricofy/azure-translator/internal/tool"
	"github.com/pricofy/azure-translator/internal/translator"
	"go.uber.org/zap"
)

func main() {
	// A .env file is only present for local runs.
	_ = godotenv.Load()

	cfg, err := config.Load(config.Credentials{})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	client, err := translator.New(cfg.Translator, logger)
	if err != nil {
		logger.Fatal("Failed to create translator client", zap.Error(err))
	}

	loader := document.NewLoader(document.WithLogger(logger))
	r, err := router.New(
		tool.NewTextTool(client, cfg.DefaultTarget, logger),
		tool.NewDocumentTool(client, loader, cfg.DocumentMaxChars, logger),
	)
	if err != nil {
		logger.Fatal("Failed to register tools", zap.Error(err))
	}

	logger.Info("Translator tools ready",
		zap.Strings("tools", r.Names()),
		zap.String("endpoint", cfg.Translator.Endpoint),
		zap.Bool("region_set", cfg.Translator.Region != ""),
	)

	h := handler.New(r, logger)
	w := newWarmer(lambdaInvokerFromEnv, logger)
	lambda.Start(newRequestHandler(h, w))
}

func newRequestHandler(h *handler.Handler, w *warmer) func(context.Context, json.RawMessage) (interface{}, error) {
	return func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		// Warmup detection (MUST be first - before any other processing)
		if warmup, ok := IsWarmupEvent(event); ok {
			return w.Handle(ctx, warmup)
		}

		var req handler.Request
		if err := json.Unmarshal(event, &req); err != nil {
			return nil, err
		}

		return h.Handle(ctx, req)
	}
}
