package graphs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/falkordb-contrib/falkordb-mcp/internal/graph"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListGraphsHandler returns a handler function for the list-graphs tool
func ListGraphsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListGraphs(ctx, deps)
	}
}

func handleListGraphs(ctx context.Context, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("list-graphs"))

	names, err := deps.DBService.ListGraphs(ctx)
	if err != nil {
		slog.Error("failed to list graphs", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Debug("graphs listed", "count", len(names))

	if len(names) == 0 {
		return mcp.NewToolResultText("The server holds no graphs."), nil
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

// DeleteGraphHandler returns a handler function for the delete-graph tool
func DeleteGraphHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDeleteGraph(ctx, request, deps)
	}
}

func handleDeleteGraph(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("delete-graph"))

	var args DeleteGraphInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !args.Confirm {
		errMessage := "refusing to delete the graph without confirm=true"
		slog.Warn(errMessage, "graph", deps.DBService.GetGraphName())
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("deleting graph", "graph", deps.DBService.GetGraphName())

	result, err := deps.DBService.DeleteGraph(ctx)
	if err != nil {
		slog.Error("failed to delete graph", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	message := fmt.Sprintf("Graph '%s' removed.", deps.DBService.GetGraphName())
	if timing, ok := result.Stat(graph.StatGraphRemoved); ok {
		message = fmt.Sprintf("Graph '%s' removed in %s milliseconds.", deps.DBService.GetGraphName(), timing)
	}
	return mcp.NewToolResultText(message), nil
}
