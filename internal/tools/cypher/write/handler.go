package write

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/falkordb-contrib/falkordb-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// WriteCypherHandler returns a handler function for the write-cypher tool
func WriteCypherHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleWriteCypher(ctx, request, deps)
	}
}

// writeResponse is what the tool renders back: the server's change
// statistics plus any records the write returned.
type writeResponse struct {
	Statistics map[string]string `json:"statistics"`
	Records    []map[string]any  `json:"records,omitempty"`
}

func handleWriteCypher(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("write-cypher"))

	var args WriteCypherInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Query == "" {
		errMessage := "query parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("executing write cypher", "graph", deps.DBService.GetGraphName())

	result, err := deps.DBService.ExecuteWriteQuery(ctx, args.Query, args.Params)
	if err != nil {
		slog.Error("write query failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Debug("write query completed",
		"rows", len(result.Rows),
		"statistics", len(result.Statistics))

	response := writeResponse{
		Statistics: result.Statistics,
		Records:    result.RowMaps(),
	}
	payload, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		slog.Error("failed to marshal write response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}
