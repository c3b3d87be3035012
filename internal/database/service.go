// Package database exposes the graph client to the tool layer behind a
// narrow service interface so handlers can be tested against mocks.
package database

//go:generate mockgen -destination=mocks/mock_database.go -package=database_mocks github.com/falkordb-contrib/falkordb-mcp/internal/database Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/falkordb-contrib/falkordb-mcp/internal/graph"
)

// Service is the database surface the MCP tools depend on.
type Service interface {
	// ExecuteReadQuery runs a read-only Cypher query against the configured graph.
	ExecuteReadQuery(ctx context.Context, query string, params map[string]interface{}) (*graph.QueryResult, error)
	// ExecuteWriteQuery runs a Cypher query that may mutate the graph.
	ExecuteWriteQuery(ctx context.Context, query string, params map[string]interface{}) (*graph.QueryResult, error)
	// GetGraphName returns the graph this service is bound to.
	GetGraphName() string
	// ListGraphs returns all graph names present on the server.
	ListGraphs(ctx context.Context) ([]string, error)
	// DeleteGraph removes the configured graph entirely.
	DeleteGraph(ctx context.Context) (*graph.QueryResult, error)
	// VerifyConnectivity checks the server is reachable.
	VerifyConnectivity(ctx context.Context) error
}

type service struct {
	client    *graph.Client
	graphName string
	cache     *graph.MemoryCatalogCache
}

// NewService binds a graph client to one graph. Reads share a catalog cache;
// writes invalidate it, since a write may introduce new labels, property
// keys or relationship types that the cached catalogs would miss.
func NewService(client *graph.Client, graphName string) Service {
	return &service{
		client:    client,
		graphName: graphName,
		cache:     graph.NewMemoryCatalogCache(),
	}
}

func (s *service) ExecuteReadQuery(ctx context.Context, query string, params map[string]interface{}) (*graph.QueryResult, error) {
	slog.Debug("executing read query", "graph", s.graphName)
	g := s.client.SelectGraph(s.graphName).WithCache(s.cache)
	result, err := g.ROQuery(ctx, query, &graph.QueryOptions{Params: params})
	if err != nil {
		return nil, fmt.Errorf("read query failed: %w", err)
	}
	return result, nil
}

func (s *service) ExecuteWriteQuery(ctx context.Context, query string, params map[string]interface{}) (*graph.QueryResult, error) {
	slog.Debug("executing write query", "graph", s.graphName)
	g := s.client.SelectGraph(s.graphName)
	result, err := g.Query(ctx, query, &graph.QueryOptions{Params: params})
	if err != nil {
		return nil, fmt.Errorf("write query failed: %w", err)
	}
	s.cache.Invalidate(s.graphName)
	return result, nil
}

func (s *service) GetGraphName() string {
	return s.graphName
}

func (s *service) ListGraphs(ctx context.Context) ([]string, error) {
	return s.client.ListGraphs(ctx)
}

func (s *service) DeleteGraph(ctx context.Context) (*graph.QueryResult, error) {
	result, err := s.client.SelectGraph(s.graphName).Delete(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(s.graphName)
	return result, nil
}

func (s *service) VerifyConnectivity(ctx context.Context) error {
	return s.client.Ping(ctx)
}
