package entity_profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/falkordb-contrib/falkordb-mcp/internal/tools"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/cypher/query_builder"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler returns the tool handler function for get-entity-profile
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetEntityProfile(ctx, request, deps)
	}
}

func handleGetEntityProfile(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService == nil {
		errMessage := "analytics service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("get-entity-profile"))

	var args GetEntityProfileInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.EntityId == "" {
		errMessage := "entityId parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if args.EntityConfig.NodeLabel == "" {
		errMessage := "entityConfig.nodeLabel is required. Specify the entity node label (e.g., 'Person', 'Account')."
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if args.EntityConfig.IdProperty == "" {
		errMessage := "entityConfig.idProperty is required. Specify the property name containing the unique identifier."
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if len(args.AttributeMappings) == 0 {
		errMessage := "attributeMappings parameter is required and cannot be empty. Use get-schema to discover available attributes first."
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	query, err := buildProfileQuery(args)
	if err != nil {
		slog.Error("invalid profile input", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Info("retrieving entity profile",
		"graph", deps.DBService.GetGraphName(),
		"label", args.EntityConfig.NodeLabel,
		"attributes", len(args.AttributeMappings))

	result, err := deps.DBService.ExecuteReadQuery(ctx, query, map[string]interface{}{
		"entityId": args.EntityId,
	})
	if err != nil {
		slog.Error("profile query failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	rows := result.RowMaps()
	if len(rows) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No %s entity found with %s = %q.",
			args.EntityConfig.NodeLabel, args.EntityConfig.IdProperty, args.EntityId)), nil
	}

	payload, err := json.MarshalIndent(rows[0], "", "  ")
	if err != nil {
		slog.Error("failed to marshal entity profile", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// buildProfileQuery assembles the schema-aware profile query. Labels,
// relationship types and property names are interpolated into the query
// text, so they must be plain identifiers; the entity id itself is always
// bound as a parameter.
func buildProfileQuery(args GetEntityProfileInput) (string, error) {
	if err := validateIdentifiers(args); err != nil {
		return "", err
	}

	matches := query_builder.NewOptionalMatchBuilder()
	returns := []string{"properties(e) AS entity"}

	for i, mapping := range args.AttributeMappings {
		varName := matches.AddAttributeMatch("e", mapping)

		collection := query_builder.NewCollectionBuilder()
		switch {
		case len(mapping.IncludeProperties) > 0:
			for _, prop := range mapping.IncludeProperties {
				collection.AddProperty(prop, varName, prop)
			}
		case mapping.IdentifierProperty != "":
			collection.AddProperty(mapping.IdentifierProperty, varName, mapping.IdentifierProperty)
		default:
			collection.AddAllProperties(strings.ToLower(mapping.TargetLabel), varName)
		}

		alias := mapping.Category
		if alias == "" {
			alias = fmt.Sprintf("attributes%d", i)
		}
		returns = append(returns, fmt.Sprintf("%s AS %s", collection.BuildDistinctCollection(), alias))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MATCH (e:%s {%s: $entityId})\n",
		args.EntityConfig.NodeLabel, args.EntityConfig.IdProperty))
	sb.WriteString(matches.Build())
	sb.WriteString("\nRETURN ")
	sb.WriteString(strings.Join(returns, ", "))
	return sb.String(), nil
}

func validateIdentifiers(args GetEntityProfileInput) error {
	names := []string{args.EntityConfig.NodeLabel, args.EntityConfig.IdProperty}
	for _, mapping := range args.AttributeMappings {
		names = append(names, mapping.RelationshipType, mapping.TargetLabel)
		if mapping.IdentifierProperty != "" {
			names = append(names, mapping.IdentifierProperty)
		}
		names = append(names, mapping.IncludeProperties...)
		if mapping.Category != "" {
			names = append(names, mapping.Category)
		}
	}
	for _, name := range names {
		if !isIdentifier(name) {
			return fmt.Errorf("%q is not a valid graph identifier", name)
		}
	}
	return nil
}

// isIdentifier accepts the label/property/relationship names the schema
// procedures can return. Anything else would let untrusted input splice
// arbitrary Cypher into the query text.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
