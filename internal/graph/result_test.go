package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport serves canned catalog replies and counts round trips.
type fakeTransport struct {
	replies map[string]interface{}
	calls   int
	err     error
}

func (f *fakeTransport) CompactQuery(_ context.Context, _ string, query string) (interface{}, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	reply, ok := f.replies[query]
	if !ok {
		return nil, fmt.Errorf("unexpected query %q", query)
	}
	return reply, nil
}

// catalogReply builds the compact response of a catalog procedure call: one
// string column with one name per record.
func catalogReply(column string, names ...string) interface{} {
	records := make([]interface{}, 0, len(names))
	for _, name := range names {
		records = append(records, []interface{}{
			[]interface{}{int64(2), name},
		})
	}
	return []interface{}{
		[]interface{}{[]interface{}{int64(1), column}},
		records,
		[]interface{}{"Query internal execution time: 0.1 milliseconds"},
	}
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{replies: map[string]interface{}{
		labelsProcedure:            catalogReply("label", "actor"),
		propertyKeysProcedure:      catalogReply("propertyKey", "name"),
		relationshipTypesProcedure: catalogReply("relationshipType", "ACTED_IN"),
	}}
}

// nodeResponse is a full compact response with one NODE column and one row,
// matching the shape GRAPH.QUERY returns for "MATCH (a:actor) RETURN a".
func nodeResponse() interface{} {
	return []interface{}{
		[]interface{}{[]interface{}{int64(8), "a"}},
		[]interface{}{
			[]interface{}{
				[]interface{}{int64(8), []interface{}{
					int64(0),
					[]interface{}{int64(0)},
					[]interface{}{[]interface{}{int64(0), int64(2), "Hugh Jackman"}},
				}},
			},
		},
		[]interface{}{"Query internal execution time: 0.598186 milliseconds"},
	}
}

func TestDecodeResultWithRecords(t *testing.T) {
	transport := newFakeTransport()

	result, err := DecodeResult(context.Background(), transport, "imdb", nodeResponse(), nil)
	require.NoError(t, err)

	assert.Equal(t, "imdb", result.GraphName)
	assert.Equal(t, []string{"a"}, result.Header)
	require.Len(t, result.Rows, 1)
	require.Len(t, result.Rows[0], 1)

	node, ok := result.Rows[0][0].(*Node)
	require.True(t, ok, "expected *Node, got %T", result.Rows[0][0])
	assert.Equal(t, int64(0), node.ID)
	assert.Equal(t, "a", node.Alias)
	assert.Equal(t, []string{"actor"}, node.Labels)
	assert.Equal(t, map[string]interface{}{"name": "Hugh Jackman"}, node.Properties)

	timing, ok := result.Stat(StatExecutionTime)
	assert.True(t, ok)
	assert.Equal(t, "0.598186", timing)

	// Exactly the three catalog round trips, nothing more.
	assert.Equal(t, 3, transport.calls)
}

func TestDecodeResultIsDeterministic(t *testing.T) {
	first, err := DecodeResult(context.Background(), newFakeTransport(), "imdb", nodeResponse(), nil)
	require.NoError(t, err)
	second, err := DecodeResult(context.Background(), newFakeTransport(), "imdb", nodeResponse(), nil)
	require.NoError(t, err)

	assert.Equal(t, first.Header, second.Header)
	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.Statistics, second.Statistics)
	assert.Equal(t, first.Catalogs, second.Catalogs)
}

func TestDecodeResultZeroColumns(t *testing.T) {
	transport := newFakeTransport()
	raw := []interface{}{
		[]interface{}{},
		[]interface{}{},
		[]interface{}{"Nodes created: 2", "Properties set: 2"},
	}

	result, err := DecodeResult(context.Background(), transport, "imdb", raw, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Header)
	assert.Empty(t, result.Rows)
	assert.Equal(t, "2", result.Statistics[StatNodesCreated])
	assert.Equal(t, "2", result.Statistics[StatPropertiesSet])
	assert.Equal(t, 0, transport.calls, "zero-column responses must not trigger catalog resolution")
}

func TestDecodeResultDeletionForms(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
	}{
		{"bare string reply", "Graph removed, internal execution time: 1.234 milliseconds"},
		{"single-element array", []interface{}{"Graph removed, internal execution time: 1.234 milliseconds"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := newFakeTransport()

			result, err := DecodeResult(context.Background(), transport, "imdb", tt.raw, nil)
			require.NoError(t, err)

			assert.Equal(t, "1.234", result.Statistics[StatGraphRemoved])
			assert.Empty(t, result.Header)
			assert.Empty(t, result.Rows)
			assert.Equal(t, 0, transport.calls)
		})
	}
}

func TestDecodeResultCatalogFetchFailure(t *testing.T) {
	transport := &fakeTransport{err: errors.New("connection reset")}

	_, err := DecodeResult(context.Background(), transport, "imdb", nodeResponse(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCatalogFetch), "expected ErrCatalogFetch, got %v", err)
}

func TestDecodeResultUsesCatalogCache(t *testing.T) {
	transport := newFakeTransport()
	cache := NewMemoryCatalogCache()

	_, err := DecodeResult(context.Background(), transport, "imdb", nodeResponse(), cache)
	require.NoError(t, err)
	require.Equal(t, 3, transport.calls)

	// Second decode of the same graph hits the cache.
	_, err = DecodeResult(context.Background(), transport, "imdb", nodeResponse(), cache)
	require.NoError(t, err)
	assert.Equal(t, 3, transport.calls)

	// Invalidation forces a refetch.
	cache.Invalidate("imdb")
	_, err = DecodeResult(context.Background(), transport, "imdb", nodeResponse(), cache)
	require.NoError(t, err)
	assert.Equal(t, 6, transport.calls)
}

func TestDecodeResultMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
	}{
		{"numeric reply", int64(7)},
		{"two sections", []interface{}{[]interface{}{}, []interface{}{}}},
		{"single non-string element", []interface{}{int64(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeResult(context.Background(), newFakeTransport(), "imdb", tt.raw, nil)
			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %v", err)
		})
	}
}

func TestRowMaps(t *testing.T) {
	result, err := DecodeResult(context.Background(), newFakeTransport(), "imdb", nodeResponse(), nil)
	require.NoError(t, err)

	maps := result.RowMaps()
	require.Len(t, maps, 1)

	node, ok := maps[0]["a"].(*Node)
	require.True(t, ok)
	assert.Equal(t, []string{"actor"}, node.Labels)
}

func TestFetchCatalogShapes(t *testing.T) {
	transport := &fakeTransport{replies: map[string]interface{}{
		labelsProcedure: "not an array",
	}}

	_, err := fetchCatalog(context.Background(), transport, "imdb", labelsProcedure)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCatalogFetch))
}
