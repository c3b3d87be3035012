package graph

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Options configures a connection to a FalkorDB instance.
type Options struct {
	// Addr is the host:port of the server.
	Addr string

	// Username and Password authenticate the connection when the server
	// has ACLs enabled. Leave empty for unauthenticated instances.
	Username string
	Password string

	// DB selects the redis logical database. FalkorDB graphs live in DB 0.
	DB int
}

// Client wraps a redis connection and issues graph commands over it.
// All methods are safe for concurrent use; the underlying redis client
// pools connections.
type Client struct {
	rdb redis.UniversalClient
}

// Connect establishes a connection and verifies the server is reachable.
func Connect(ctx context.Context, opts *Options) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", opts.Addr, err)
	}
	slog.Info("connected to FalkorDB", "addr", opts.Addr)
	return &Client{rdb: rdb}, nil
}

// NewClientFromRedis wraps an existing redis client. The caller keeps
// ownership of the connection lifecycle.
func NewClientFromRedis(rdb redis.UniversalClient) *Client {
	return &Client{rdb: rdb}
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies the server is still reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// CompactQuery runs one query in compact mode and returns the raw nested
// reply. This is the Transport the decoder uses for catalog round trips.
func (c *Client) CompactQuery(ctx context.Context, graphName, query string) (interface{}, error) {
	return c.rdb.Do(ctx, "GRAPH.QUERY", graphName, query, "--compact").Result()
}

// ListGraphs returns the names of all graphs on the server.
func (c *Client) ListGraphs(ctx context.Context) ([]string, error) {
	names, err := c.rdb.Do(ctx, "GRAPH.LIST").StringSlice()
	if err != nil {
		return nil, fmt.Errorf("listing graphs: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// SelectGraph returns a handle for queries against the named graph. The
// handle fetches fresh catalogs on every decode; use WithCache to opt in to
// catalog reuse.
func (c *Client) SelectGraph(name string) *Graph {
	return &Graph{name: name, client: c}
}

// Graph is a per-graph query handle.
type Graph struct {
	name   string
	client *Client
	cache  CatalogCache
}

// Name returns the graph name this handle is bound to.
func (g *Graph) Name() string {
	return g.name
}

// WithCache returns a handle that reuses catalogs through cache instead of
// refetching them per decode. Cache invalidation stays with the cache owner.
func (g *Graph) WithCache(cache CatalogCache) *Graph {
	return &Graph{name: g.name, client: g.client, cache: cache}
}

// QueryOptions carries per-query settings.
type QueryOptions struct {
	// Params are bound into the query via a CYPHER prefix before sending.
	Params map[string]interface{}
}

// Query runs a Cypher query and decodes the compact response.
func (g *Graph) Query(ctx context.Context, query string, opts *QueryOptions) (*QueryResult, error) {
	return g.run(ctx, "GRAPH.QUERY", query, opts)
}

// ROQuery runs a read-only Cypher query. The server rejects queries that
// attempt writes, which makes this the safe path for untrusted read tools.
func (g *Graph) ROQuery(ctx context.Context, query string, opts *QueryOptions) (*QueryResult, error) {
	return g.run(ctx, "GRAPH.RO_QUERY", query, opts)
}

func (g *Graph) run(ctx context.Context, command, query string, opts *QueryOptions) (*QueryResult, error) {
	full := buildQueryString(query, opts)
	raw, err := g.client.rdb.Do(ctx, command, g.name, full, "--compact").Result()
	if err != nil {
		return nil, fmt.Errorf("query against graph %q failed: %w", g.name, err)
	}
	return DecodeResult(ctx, g.client, g.name, raw, g.cache)
}

// Delete removes the whole graph. The server answers with a single
// statistics line, so the returned result carries only the
// "Graph removed, internal execution time" statistic.
func (g *Graph) Delete(ctx context.Context) (*QueryResult, error) {
	raw, err := g.client.rdb.Do(ctx, "GRAPH.DELETE", g.name).Result()
	if err != nil {
		return nil, fmt.Errorf("deleting graph %q: %w", g.name, err)
	}
	slog.Info("graph deleted", "graph", g.name)
	return DecodeResult(ctx, g.client, g.name, raw, nil)
}

// Explain returns the execution plan the server would use for query,
// one plan operation per line.
func (g *Graph) Explain(ctx context.Context, query string) ([]string, error) {
	plan, err := g.client.rdb.Do(ctx, "GRAPH.EXPLAIN", g.name, query).StringSlice()
	if err != nil {
		return nil, fmt.Errorf("explaining query against graph %q: %w", g.name, err)
	}
	return plan, nil
}

// buildQueryString prepends the CYPHER parameter prefix when params are
// present. Keys are emitted in sorted order so the same logical query always
// produces the same wire string.
func buildQueryString(query string, opts *QueryOptions) string {
	if opts == nil || len(opts.Params) == 0 {
		return query
	}

	keys := make([]string, 0, len(opts.Params))
	for key := range opts.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("CYPHER ")
	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(serializeParam(opts.Params[key]))
		sb.WriteByte(' ')
	}
	sb.WriteString(query)
	return sb.String()
}

// serializeParam renders a parameter value in Cypher literal syntax.
func serializeParam(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []interface{}:
		parts := make([]string, len(v))
		for i, element := range v {
			parts[i] = serializeParam(element)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}
