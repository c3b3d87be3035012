package dynamic

import (
	"fmt"
	"log/slog"

	"github.com/falkordb-contrib/falkordb-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolRegistry manages the loading and registration of dynamic tools
type ToolRegistry struct {
	configDir string
	configs   []*ToolConfig
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(configDir string) *ToolRegistry {
	return &ToolRegistry{
		configDir: configDir,
		configs:   make([]*ToolConfig, 0),
	}
}

// LoadTools loads all tool configurations from the config directory
func (r *ToolRegistry) LoadTools() error {
	configs, err := WalkConfigDirectory(r.configDir)
	if err != nil {
		return fmt.Errorf("failed to load tools from config directory: %w", err)
	}

	r.configs = configs
	slog.Info("loaded dynamic tools", "count", len(configs), "configDir", r.configDir)
	return nil
}

// GetToolCount returns the number of loaded tools
func (r *ToolRegistry) GetToolCount() int {
	return len(r.configs)
}

// GetTools returns all loaded tool configurations
func (r *ToolRegistry) GetTools() []*ToolConfig {
	return r.configs
}

// GetServerTools converts all loaded configs into MCP server tools
func (r *ToolRegistry) GetServerTools(deps *tools.ToolDependencies) []server.ServerTool {
	serverTools := make([]server.ServerTool, 0, len(r.configs))
	for _, config := range r.configs {
		serverTools = append(serverTools, r.buildServerTool(config, deps))
	}
	return serverTools
}

// buildServerTool creates an MCP server tool from a tool config. All
// config-based tools are guidance tools: readonly, idempotent,
// non-destructive.
func (r *ToolRegistry) buildServerTool(config *ToolConfig, deps *tools.ToolDependencies) server.ServerTool {
	mcpTool := mcp.NewTool(config.Name,
		mcp.WithDescription(buildEnrichedDescription(config)),
		mcp.WithTitleAnnotation(config.Name),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)

	slog.Debug("built dynamic tool", "name", config.Name, "category", config.Category)

	return server.ServerTool{
		Tool:    mcpTool,
		Handler: NewDynamicHandler(config, deps),
	}
}

// GetToolsByCategory returns all tools in a specific category
func (r *ToolRegistry) GetToolsByCategory(category string) []*ToolConfig {
	matching := make([]*ToolConfig, 0)
	for _, config := range r.configs {
		if config.Category == category {
			matching = append(matching, config)
		}
	}
	return matching
}
