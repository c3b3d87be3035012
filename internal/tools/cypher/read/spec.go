package read

import (
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/cypher/utils"
	"github.com/mark3labs/mcp-go/mcp"
)

type ReadCypherInput struct {
	Query  string       `json:"query" jsonschema:"default=MATCH(n) RETURN n,description=The Cypher query to execute"`
	Params utils.Params `json:"params,omitempty" jsonschema:"default={},description=Parameters to pass to the Cypher query"`
}

func ReadCypherSpec() mcp.Tool {
	return mcp.NewTool("read-cypher",
		mcp.WithDescription("read-cypher can run only read-only Cypher statements against the configured FalkorDB graph. For write operations (CREATE, MERGE, DELETE, SET, etc...) or graph admin commands, use write-cypher instead."),
		mcp.WithInputSchema[ReadCypherInput](),
		mcp.WithTitleAnnotation("Read Cypher"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
