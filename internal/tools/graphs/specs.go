package graphs

import "github.com/mark3labs/mcp-go/mcp"

func ListGraphsSpec() mcp.Tool {
	return mcp.NewTool("list-graphs",
		mcp.WithDescription("Lists the names of all graphs present on the connected FalkorDB server, including the one this server is configured against."),
		mcp.WithTitleAnnotation("List Graphs"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

type DeleteGraphInput struct {
	Confirm bool `json:"confirm" jsonschema:"default=false,description=Must be true to actually delete the configured graph"`
}

func DeleteGraphSpec() mcp.Tool {
	return mcp.NewTool("delete-graph",
		mcp.WithDescription(`
		Deletes the configured graph and every node, relationship and index in it.

		This is irreversible. The call must be made with confirm=true; without it
		the tool refuses to act. On success the server's deletion timing line is
		returned.`),
		mcp.WithInputSchema[DeleteGraphInput](),
		mcp.WithTitleAnnotation("Delete Graph"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
