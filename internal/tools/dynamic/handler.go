package dynamic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/falkordb-contrib/falkordb-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// NewDynamicHandler creates a handler function for a dynamic tool.
// All config-based tools return enriched descriptions as guidance for the LLM.
func NewDynamicHandler(config *ToolConfig, deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDynamicTool(ctx, request, config, deps)
	}
}

func handleDynamicTool(_ context.Context, _ mcp.CallToolRequest, config *ToolConfig, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(
			deps.AnalyticsService.NewToolsEvent(config.Name),
		)
	}

	slog.Info("guidance tool called", "tool", config.Name, "category", config.Category)

	return mcp.NewToolResultText(buildEnrichedDescription(config)), nil
}

// buildEnrichedDescription creates a comprehensive description from all semantic fields
func buildEnrichedDescription(config *ToolConfig) string {
	var sb strings.Builder

	sb.WriteString(config.Description)

	if config.Intent != "" {
		sb.WriteString("\n\n## Intent\n")
		sb.WriteString(config.Intent)
	}

	if len(config.ExpectedPatterns) > 0 {
		sb.WriteString("\n\n## Expected Patterns\n")
		for _, p := range config.ExpectedPatterns {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", p.Entity, p.Signal))
		}
	}

	if config.ReferenceCypher != "" {
		sb.WriteString("\n\n## Reference Cypher\n```cypher\n")
		sb.WriteString(config.ReferenceCypher)
		sb.WriteString("\n```\n")
	}

	if len(config.Parameters) > 0 {
		sb.WriteString("\n\n## Parameters\n")
		for _, p := range config.Parameters {
			sb.WriteString(fmt.Sprintf("- `$%s` (%s)", p.Name, p.Type))
			if p.Default != nil {
				sb.WriteString(fmt.Sprintf(" [default: %v]", p.Default))
			}
			if p.Description != "" {
				sb.WriteString(fmt.Sprintf(": %s", p.Description))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
