package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultAddr      = "localhost:6379"
	defaultTransport = "stdio"
)

// Config holds the server configuration, populated from environment variables.
type Config struct {
	// Addr is the FalkorDB host:port address (FALKORDB_URI).
	Addr string

	// Username and Password authenticate against the database when set.
	Username string
	Password string

	// GraphName is the default graph tool handlers operate on (FALKORDB_GRAPH).
	GraphName string

	// ReadOnly restricts the server to tools annotated as read-only.
	ReadOnly bool

	// AnalyticsDisabled turns off usage event emission.
	AnalyticsDisabled bool

	// Transport selects the MCP transport, "stdio" or "http".
	Transport string

	// HTTPAddr is the listen address when Transport is "http".
	HTTPAddr string
}

// LoadFromEnv builds a Config from FALKORDB_* environment variables,
// falling back to defaults for anything unset.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Addr:      envOrDefault("FALKORDB_URI", defaultAddr),
		Username:  os.Getenv("FALKORDB_USERNAME"),
		Password:  os.Getenv("FALKORDB_PASSWORD"),
		GraphName: os.Getenv("FALKORDB_GRAPH"),
		Transport: envOrDefault("FALKORDB_TRANSPORT", defaultTransport),
		HTTPAddr:  envOrDefault("FALKORDB_HTTP_ADDR", ":8080"),
	}

	// Accept a falkor:// or redis:// scheme prefix and strip it down to host:port.
	for _, scheme := range []string{"falkor://", "falkordb://", "redis://"} {
		if strings.HasPrefix(cfg.Addr, scheme) {
			cfg.Addr = strings.TrimPrefix(cfg.Addr, scheme)
			break
		}
	}

	readOnly, err := envBool("FALKORDB_READ_ONLY")
	if err != nil {
		return nil, err
	}
	cfg.ReadOnly = readOnly

	analyticsDisabled, err := envBool("FALKORDB_ANALYTICS_DISABLED")
	if err != nil {
		return nil, err
	}
	cfg.AnalyticsDisabled = analyticsDisabled

	if cfg.Transport != "stdio" && cfg.Transport != "http" {
		return nil, fmt.Errorf("invalid FALKORDB_TRANSPORT %q, expected stdio or http", cfg.Transport)
	}
	if cfg.GraphName == "" {
		return nil, fmt.Errorf("FALKORDB_GRAPH is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return b, nil
}
