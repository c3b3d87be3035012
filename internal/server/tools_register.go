package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/falkordb-contrib/falkordb-mcp/internal/tools"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/cypher/read"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/cypher/write"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/data/entity_profile"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/dynamic"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/graphs"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/schema"
)

// registerTools registers all enabled MCP tools and adds them to the provided MCP server.
// Tools are filtered according to the server configuration. When read-only mode is
// enabled (via the FALKORDB_READ_ONLY environment variable or the Config.ReadOnly flag),
// any tool that performs state mutation is excluded; only tools marked read-only are registered.
func (s *FalkorDBMCPServer) registerTools() error {
	filteredTools := s.getEnabledTools()
	s.MCPServer.AddTools(filteredTools...)
	return nil
}

type toolFilter func(tools []ToolDefinition) []ToolDefinition

type toolCategory int

const (
	cypherCategory  toolCategory = 0
	schemaCategory  toolCategory = 1
	graphsCategory  toolCategory = 2
	dataCategory    toolCategory = 3 // Generic data retrieval tools
	dynamicCategory toolCategory = 4 // Dynamic config-based tools
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
	readonly   bool
}

func (s *FalkorDBMCPServer) getEnabledTools() []server.ServerTool {
	filters := make([]toolFilter, 0)

	// If read-only mode is enabled, expose only tools annotated as read-only.
	if s.config != nil && s.config.ReadOnly {
		filters = append(filters, filterWriteTools)
	}
	deps := &tools.ToolDependencies{
		DBService:        s.dbService,
		AnalyticsService: s.anService,
	}
	toolDefs := s.getAllToolsDefs(deps)

	for _, filter := range filters {
		toolDefs = filter(toolDefs)
	}
	enabledTools := make([]server.ServerTool, 0)
	for _, toolDef := range toolDefs {
		enabledTools = append(enabledTools, toolDef.definition)
	}
	return enabledTools
}

func filterWriteTools(tools []ToolDefinition) []ToolDefinition {
	readOnlyTools := make([]ToolDefinition, 0, len(tools))
	for _, t := range tools {
		if t.readonly {
			readOnlyTools = append(readOnlyTools, t)
		}
	}
	return readOnlyTools
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *FalkorDBMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	toolDefs := []ToolDefinition{
		{
			category: schemaCategory,
			definition: server.ServerTool{
				Tool:    schema.GetSchemaSpec(),
				Handler: schema.GetSchemaHandler(deps),
			},
			readonly: true,
		},
		{
			category: cypherCategory,
			definition: server.ServerTool{
				Tool:    read.ReadCypherSpec(),
				Handler: read.ReadCypherHandler(deps),
			},
			readonly: true,
		},
		{
			category: cypherCategory,
			definition: server.ServerTool{
				Tool:    write.WriteCypherSpec(),
				Handler: write.WriteCypherHandler(deps),
			},
			readonly: false,
		},
		{
			category: graphsCategory,
			definition: server.ServerTool{
				Tool:    graphs.ListGraphsSpec(),
				Handler: graphs.ListGraphsHandler(deps),
			},
			readonly: true,
		},
		{
			category: graphsCategory,
			definition: server.ServerTool{
				Tool:    graphs.DeleteGraphSpec(),
				Handler: graphs.DeleteGraphHandler(deps),
			},
			readonly: false,
		},
		{
			category: dataCategory,
			definition: server.ServerTool{
				Tool:    entity_profile.Spec(),
				Handler: entity_profile.Handler(deps),
			},
			readonly: true,
		},
	}

	// Load dynamic tools from config directory
	dynamicTools := s.loadDynamicTools(deps)
	toolDefs = append(toolDefs, dynamicTools...)

	return toolDefs
}

// loadDynamicTools loads tools from YAML configs in tools/config/ directory
func (s *FalkorDBMCPServer) loadDynamicTools(deps *tools.ToolDependencies) []ToolDefinition {
	registry := dynamic.NewToolRegistry("tools/config")

	if err := registry.LoadTools(); err != nil {
		slog.Error("failed to load dynamic tools", "error", err)
		return []ToolDefinition{}
	}

	if registry.GetToolCount() == 0 {
		slog.Info("no dynamic tools found in config directory")
		return []ToolDefinition{}
	}

	slog.Info("loaded dynamic tools", "count", registry.GetToolCount())

	serverTools := registry.GetServerTools(deps)
	toolDefs := make([]ToolDefinition, 0, len(serverTools))

	for _, serverTool := range serverTools {
		// Dynamic guidance tools never touch the database themselves.
		toolDef := ToolDefinition{
			category:   dynamicCategory,
			definition: serverTool,
			readonly:   true,
		}
		toolDefs = append(toolDefs, toolDef)
	}

	return toolDefs
}
