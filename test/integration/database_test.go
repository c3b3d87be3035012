//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falkordb-contrib/falkordb-mcp/internal/database"
	"github.com/falkordb-contrib/falkordb-mcp/test/integration/helpers"
)

func TestServiceReadWriteCycle(t *testing.T) {
	ctx := context.Background()
	tc := helpers.StartFalkorDB(ctx, t)

	svc := database.NewService(tc.Client, "service_test")
	require.NoError(t, svc.VerifyConnectivity(ctx))
	assert.Equal(t, "service_test", svc.GetGraphName())

	_, err := svc.ExecuteWriteQuery(ctx,
		`CREATE (:city {name: $name})`, map[string]interface{}{"name": "Oslo"})
	require.NoError(t, err)

	result, err := svc.ExecuteReadQuery(ctx, `MATCH (c:city) RETURN c.name`, nil)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Oslo", result.Rows[0][0])

	// Writes must invalidate the catalog cache so new labels resolve.
	_, err = svc.ExecuteWriteQuery(ctx, `CREATE (:country {name: 'Norway'})`, nil)
	require.NoError(t, err)

	result, err = svc.ExecuteReadQuery(ctx, `MATCH (n:country) RETURN n`, nil)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	graphs, err := svc.ListGraphs(ctx)
	require.NoError(t, err)
	assert.Contains(t, graphs, "service_test")

	_, err = svc.DeleteGraph(ctx)
	require.NoError(t, err)
}
