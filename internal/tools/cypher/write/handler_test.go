package write_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	analytics_mocks "github.com/falkordb-contrib/falkordb-mcp/internal/analytics/mocks"
	database_mocks "github.com/falkordb-contrib/falkordb-mcp/internal/database/mocks"
	"github.com/falkordb-contrib/falkordb-mcp/internal/graph"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/cypher/write"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func newDeps(t *testing.T) (*tools.ToolDependencies, *database_mocks.MockService) {
	ctrl := gomock.NewController(t)

	analyticsService := analytics_mocks.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent(gomock.Any()).AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	dbService := database_mocks.NewMockService(ctrl)
	dbService.EXPECT().GetGraphName().Return("imdb").AnyTimes()

	return &tools.ToolDependencies{
		DBService:        dbService,
		AnalyticsService: analyticsService,
	}, dbService
}

func TestWriteCypherHandler(t *testing.T) {
	t.Run("returns change statistics", func(t *testing.T) {
		deps, dbService := newDeps(t)

		result := &graph.QueryResult{
			GraphName: "imdb",
			Statistics: graph.Statistics{
				graph.StatNodesCreated:  "2",
				graph.StatPropertiesSet: "2",
			},
		}
		dbService.EXPECT().
			ExecuteWriteQuery(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil)

		handler := write.WriteCypherHandler(deps)
		res, err := handler(context.Background(), callRequest(map[string]any{
			"query":  "CREATE (:Person {name: $name}), (:Person {name: $name})",
			"params": map[string]any{"name": "Alice"},
		}))
		require.NoError(t, err)
		require.NotNil(t, res)
		require.False(t, res.IsError)

		var response struct {
			Statistics map[string]string `json:"statistics"`
		}
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &response))
		assert.Equal(t, "2", response.Statistics[graph.StatNodesCreated])
		assert.Equal(t, "2", response.Statistics[graph.StatPropertiesSet])
	})

	t.Run("write error becomes tool error", func(t *testing.T) {
		deps, dbService := newDeps(t)
		dbService.EXPECT().
			ExecuteWriteQuery(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("graph is read only"))

		handler := write.WriteCypherHandler(deps)
		res, err := handler(context.Background(), callRequest(map[string]any{"query": "CREATE (n)"}))
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})

	t.Run("missing query", func(t *testing.T) {
		deps, _ := newDeps(t)

		handler := write.WriteCypherHandler(deps)
		res, err := handler(context.Background(), callRequest(map[string]any{}))
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsError)
	})
}
