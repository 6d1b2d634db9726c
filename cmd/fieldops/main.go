// Package main is the entry point for the fieldops CLI.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/field_ops_app/internal/cli"
	"github.com/SscSPs/field_ops_app/internal/platform/config"
	"github.com/SscSPs/field_ops_app/internal/platform/logging"
	"github.com/google/uuid"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr so session output on stdout stays machine readable.
	logger := logging.NewLogger(os.Stderr, logging.Options{
		Level: cfg.LogLevel,
		JSON:  cfg.JSONLogs(),
	}).With(slog.String("session_id", uuid.NewString()))
	slog.SetDefault(logger)

	ctx := logging.WithLogger(context.Background(), logger)
	if err := cli.Execute(ctx, cfg); err != nil {
		os.Exit(1)
	}
}
