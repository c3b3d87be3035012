package write

import (
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/cypher/utils"
	"github.com/mark3labs/mcp-go/mcp"
)

type WriteCypherInput struct {
	Query  string       `json:"query" jsonschema:"description=The Cypher query to execute"`
	Params utils.Params `json:"params,omitempty" jsonschema:"default={},description=Parameters to pass to the Cypher query"`
}

func WriteCypherSpec() mcp.Tool {
	return mcp.NewTool("write-cypher",
		mcp.WithDescription("write-cypher runs Cypher statements that mutate the configured FalkorDB graph (CREATE, MERGE, DELETE, SET, index management). Returns the server's change statistics alongside any returned records. Use read-cypher for pure reads."),
		mcp.WithInputSchema[WriteCypherInput](),
		mcp.WithTitleAnnotation("Write Cypher"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
