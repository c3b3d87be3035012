package graph

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Transport issues one raw compact-protocol query against a named graph and
// returns the undecoded reply. The decoder borrows a Transport only for the
// catalog round trips of the current decode; it never retains it, and leaves
// timeouts and cancellation entirely to the transport's context handling.
type Transport interface {
	CompactQuery(ctx context.Context, graphName, query string) (interface{}, error)
}

// Procedure calls used to resolve catalog indices into names. They run
// through the ordinary query path like any other query.
const (
	labelsProcedure            = "CALL db.labels()"
	propertyKeysProcedure      = "CALL db.propertyKeys()"
	relationshipTypesProcedure = "CALL db.relationshipTypes()"
)

// Catalogs holds the three index-to-name mappings of one graph at one point
// in time. Indices are the 0-based positions of the records returned by the
// corresponding procedure call.
type Catalogs struct {
	Labels            map[int]string
	PropertyKeys      map[int]string
	RelationshipTypes map[int]string
}

// CatalogCache lets a caller reuse catalogs across decodes of the same
// graph. Invalidation policy belongs to the cache owner; the decoder only
// consults Get before fetching and calls Put after a successful fetch. A nil
// cache means every decode fetches fresh catalogs, which is always correct.
type CatalogCache interface {
	Get(graphName string) (Catalogs, bool)
	Put(graphName string, c Catalogs)
}

// MemoryCatalogCache is a trivial CatalogCache keeping the last fetched
// catalogs per graph until Invalidate is called. Safe for concurrent use.
type MemoryCatalogCache struct {
	mu       sync.RWMutex
	catalogs map[string]Catalogs
}

func NewMemoryCatalogCache() *MemoryCatalogCache {
	return &MemoryCatalogCache{catalogs: make(map[string]Catalogs)}
}

func (m *MemoryCatalogCache) Get(graphName string) (Catalogs, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.catalogs[graphName]
	return c, ok
}

func (m *MemoryCatalogCache) Put(graphName string, c Catalogs) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalogs[graphName] = c
}

// Invalidate drops the cached catalogs for a graph, forcing the next decode
// to fetch fresh ones. Callers typically invalidate after schema-changing
// writes.
func (m *MemoryCatalogCache) Invalidate(graphName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.catalogs, graphName)
}

// fetchCatalogs resolves all three catalogs for graphName through t,
// consulting cache first when one is provided. Any failed round trip returns
// an error wrapping ErrCatalogFetch; there is no partial catalog state.
func fetchCatalogs(ctx context.Context, t Transport, graphName string, cache CatalogCache) (Catalogs, error) {
	if cache != nil {
		if c, ok := cache.Get(graphName); ok {
			slog.Debug("using cached catalogs", "graph", graphName)
			return c, nil
		}
	}

	labels, err := fetchCatalog(ctx, t, graphName, labelsProcedure)
	if err != nil {
		return Catalogs{}, err
	}
	propertyKeys, err := fetchCatalog(ctx, t, graphName, propertyKeysProcedure)
	if err != nil {
		return Catalogs{}, err
	}
	relationshipTypes, err := fetchCatalog(ctx, t, graphName, relationshipTypesProcedure)
	if err != nil {
		return Catalogs{}, err
	}

	c := Catalogs{
		Labels:            labels,
		PropertyKeys:      propertyKeys,
		RelationshipTypes: relationshipTypes,
	}
	if cache != nil {
		cache.Put(graphName, c)
	}
	return c, nil
}

// fetchCatalog runs one catalog procedure and maps record position to the
// record's single string cell.
func fetchCatalog(ctx context.Context, t Transport, graphName, procedure string) (map[int]string, error) {
	raw, err := t.CompactQuery(ctx, graphName, procedure)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogFetch, procedure, err)
	}

	reply, ok := raw.([]interface{})
	if !ok || len(reply) < 2 {
		return nil, fmt.Errorf("%w: %s: unexpected reply shape %T", ErrCatalogFetch, procedure, raw)
	}
	records, ok := reply[1].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s: records section is %T", ErrCatalogFetch, procedure, reply[1])
	}

	catalog := make(map[int]string, len(records))
	for i, record := range records {
		row, ok := record.([]interface{})
		if !ok || len(row) == 0 {
			return nil, fmt.Errorf("%w: %s: record %d is %T", ErrCatalogFetch, procedure, i, record)
		}
		cell, ok := row[0].([]interface{})
		if !ok || len(cell) < 2 {
			return nil, fmt.Errorf("%w: %s: record %d has no value cell", ErrCatalogFetch, procedure, i)
		}
		name, ok := cell[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s: record %d value is %T, want string", ErrCatalogFetch, procedure, i, cell[1])
		}
		catalog[i] = name
	}
	return catalog, nil
}
