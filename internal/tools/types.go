package tools

import (
	"github.com/falkordb-contrib/falkordb-mcp/internal/analytics"
	"github.com/falkordb-contrib/falkordb-mcp/internal/database"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	DBService        database.Service
	AnalyticsService analytics.Service
}
