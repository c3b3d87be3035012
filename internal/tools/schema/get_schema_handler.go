package schema

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/falkordb-contrib/falkordb-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	// labelsQuery lists all node labels present in the graph
	labelsQuery = `CALL db.labels()`

	// propertyKeysQuery lists all property keys present in the graph
	propertyKeysQuery = `CALL db.propertyKeys()`

	// relationshipTypesQuery lists all relationship types present in the graph
	relationshipTypesQuery = `CALL db.relationshipTypes()`
)

// GetSchemaHandler returns a handler function for the get-schema tool
func GetSchemaHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetSchema(ctx, deps)
	}
}

// handleGetSchema retrieves the graph schema using the catalog procedures
func handleGetSchema(ctx context.Context, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.AnalyticsService == nil {
		errMessage := "analytics service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("get-schema"))
	slog.Info("retrieving schema", "graph", deps.DBService.GetGraphName())

	labels, err := fetchNames(ctx, deps, labelsQuery)
	if err != nil {
		slog.Error("failed to list labels", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	propertyKeys, err := fetchNames(ctx, deps, propertyKeysQuery)
	if err != nil {
		slog.Error("failed to list property keys", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	relationshipTypes, err := fetchNames(ctx, deps, relationshipTypesQuery)
	if err != nil {
		slog.Error("failed to list relationship types", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(labels) == 0 && len(propertyKeys) == 0 && len(relationshipTypes) == 0 {
		slog.Info("graph is empty, no schema to return", "graph", deps.DBService.GetGraphName())
		return mcp.NewToolResultText(fmt.Sprintf("The get-schema tool executed successfully; however, the graph '%s' contains no data, so no schema information was returned.", deps.DBService.GetGraphName())), nil
	}

	slog.Debug("schema retrieved",
		"labels", len(labels),
		"propertyKeys", len(propertyKeys),
		"relationshipTypes", len(relationshipTypes))

	return mcp.NewToolResultText(formatSchemaAsMarkdown(deps.DBService.GetGraphName(), labels, propertyKeys, relationshipTypes)), nil
}

// fetchNames runs one catalog procedure and collects the single string cell
// of every record.
func fetchNames(ctx context.Context, deps *tools.ToolDependencies, query string) ([]string, error) {
	result, err := deps.DBService.ExecuteReadQuery(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		if len(row) == 0 {
			continue
		}
		if name, ok := row[0].(string); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// formatSchemaAsMarkdown renders the three catalogs as a markdown document.
func formatSchemaAsMarkdown(graphName string, labels, propertyKeys, relationshipTypes []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Schema of graph '%s'\n", graphName))

	sb.WriteString("\n## Node Labels\n")
	writeNameList(&sb, labels)

	sb.WriteString("\n## Relationship Types\n")
	writeNameList(&sb, relationshipTypes)

	sb.WriteString("\n## Property Keys\n")
	writeNameList(&sb, propertyKeys)

	return sb.String()
}

func writeNameList(sb *strings.Builder, names []string) {
	if len(names) == 0 {
		sb.WriteString("_none_\n")
		return
	}
	for _, name := range names {
		sb.WriteString("- ")
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
}
