package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/falkordb-contrib/falkordb-mcp/docs"
	"github.com/falkordb-contrib/falkordb-mcp/internal/analytics"
	"github.com/falkordb-contrib/falkordb-mcp/internal/config"
	"github.com/falkordb-contrib/falkordb-mcp/internal/database"
	"github.com/falkordb-contrib/falkordb-mcp/internal/graph"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/dynamic"
	"github.com/falkordb-contrib/falkordb-mcp/tools"
)

const (
	serverName = "falkordb-mcp"

	// Version is stamped into startup analytics events.
	Version = "0.1.0"
)

// FalkorDBMCPServer wires the graph client, the DB service, analytics, and the
// registered MCP tools behind a single server instance.
type FalkorDBMCPServer struct {
	MCPServer *server.MCPServer

	config    *config.Config
	client    *graph.Client
	dbService database.Service
	anService analytics.Service
}

// NewServer connects to FalkorDB, verifies connectivity, and returns a server
// with all enabled tools registered.
func NewServer(ctx context.Context, cfg *config.Config) (*FalkorDBMCPServer, error) {
	client, err := graph.Connect(ctx, &graph.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to FalkorDB at %s: %w", cfg.Addr, err)
	}

	dbService := database.NewService(client, cfg.GraphName)
	if err := dbService.VerifyConnectivity(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("connectivity check failed: %w", err)
	}

	anService := analytics.NewService(nil, !cfg.AnalyticsDisabled)

	s := &FalkorDBMCPServer{
		config:    cfg,
		client:    client,
		dbService: dbService,
		anService: anService,
	}
	s.MCPServer = server.NewMCPServer(
		serverName,
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(docs.GraphExplorationPrompt),
	)

	// Dynamic tools load from the embedded config tree unless a directory
	// on disk overrides it.
	dynamic.EmbeddedFS = tools.ConfigFiles

	if err := s.registerTools(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	anService.EmitEvent(anService.NewStartupEvent(analytics.StartupEventInfo{
		Version:   Version,
		Transport: cfg.Transport,
		ReadOnly:  cfg.ReadOnly,
	}))

	return s, nil
}

// Serve runs the server on the configured transport and blocks until the
// transport shuts down.
func (s *FalkorDBMCPServer) Serve() error {
	switch s.config.Transport {
	case "http":
		slog.Info("starting HTTP transport", "addr", s.config.HTTPAddr)
		httpServer := server.NewStreamableHTTPServer(s.MCPServer)
		return httpServer.Start(s.config.HTTPAddr)
	default:
		slog.Info("starting stdio transport")
		return server.ServeStdio(s.MCPServer)
	}
}

// Close releases the underlying database connection.
func (s *FalkorDBMCPServer) Close() error {
	return s.client.Close()
}
