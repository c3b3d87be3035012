package entity_profile

import (
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/cypher/query_builder"
	"github.com/mark3labs/mcp-go/mcp"
)

// EntityConfig defines the entity node to retrieve
type EntityConfig struct {
	// NodeLabel is the label of the entity node (e.g., "Person", "Account")
	NodeLabel string `json:"nodeLabel" jsonschema:"description=Node label of the entity (e.g. Person, Account)"`

	// IdProperty is the property name containing the unique identifier
	IdProperty string `json:"idProperty" jsonschema:"description=Property name for the unique identifier (e.g. personId)"`
}

// GetEntityProfileInput defines the input parameters for the get-entity-profile tool
type GetEntityProfileInput struct {
	// EntityId is the unique identifier for the entity (required)
	EntityId string `json:"entityId" jsonschema:"description=Entity ID to retrieve the profile for (required)"`

	// EntityConfig defines the entity node configuration
	EntityConfig EntityConfig `json:"entityConfig" jsonschema:"description=Configuration for the entity node (node label and ID property)"`

	// AttributeMappings defines which related attributes to retrieve,
	// discovered via the get-schema tool.
	AttributeMappings []query_builder.AttributeMapping `json:"attributeMappings" jsonschema:"description=Attribute mappings discovered from the schema. Use get-schema to discover these first."`
}

// Spec returns the MCP tool specification for get-entity-profile
func Spec() mcp.Tool {
	return mcp.NewTool("get-entity-profile",
		mcp.WithDescription(`Retrieves an entity together with its related attributes from the graph.

This tool adapts to the live schema and makes no assumptions about
relationship names, node labels or property names.

WORKFLOW:
1. Call get-schema to discover the graph structure
2. Pick the entity label and its identifier property
3. For each related attribute, construct an AttributeMapping with the
   relationship type and target label from the schema, and optionally the
   identifier property of the target node
4. Pass the mappings to this tool's attributeMappings parameter

The result is one record with the entity's properties plus one distinct
collection per attribute mapping.`),
		mcp.WithInputSchema[GetEntityProfileInput](),
		mcp.WithTitleAnnotation("Get Entity Profile"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
