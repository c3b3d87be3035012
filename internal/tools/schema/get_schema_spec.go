package schema

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func GetSchemaSpec() mcp.Tool {
	return mcp.NewTool("get-schema",
		mcp.WithDescription(`
		Retrieves the schema of the configured FalkorDB graph: all node labels,
		property keys and relationship types currently present.

		Use this tool before writing Cypher queries so that label, property and
		relationship names match what actually exists in the graph. The schema is
		discovered through the db.labels, db.propertyKeys and db.relationshipTypes
		procedures, so it always reflects the live graph, not a cached model.`),
		mcp.WithTitleAnnotation("Get Graph Schema"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
