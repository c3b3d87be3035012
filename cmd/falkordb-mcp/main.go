package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/falkordb-contrib/falkordb-mcp/internal/config"
	"github.com/falkordb-contrib/falkordb-mcp/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	srv, err := server.NewServer(ctx, cfg)
	if err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
	defer srv.Close()

	slog.Info("falkordb-mcp ready",
		"version", server.Version,
		"graph", cfg.GraphName,
		"transport", cfg.Transport,
		"read_only", cfg.ReadOnly)

	if err := srv.Serve(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
