package docs

import (
	_ "embed"
)

// GraphExplorationPrompt embeds the graph exploration guidance used as the
// MCP server instructions. It tells LLMs how to approach schema discovery,
// query construction, and destructive operations against FalkorDB
//
//go:embed prompts/graph_exploration.md
var GraphExplorationPrompt string
