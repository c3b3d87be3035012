package graph

import (
	"context"
	"log/slog"
)

// QueryResult is the fully decoded outcome of one query. It is assembled
// once from the raw response and never mutated afterwards; every decode
// fetches its own catalogs (unless a CatalogCache is injected), so two
// concurrent decodes share no state.
type QueryResult struct {
	// GraphName is the graph the query ran against.
	GraphName string

	// Raw is the untouched wire response the result was decoded from.
	Raw interface{}

	// Header holds the column aliases, in return order. Empty for
	// responses that declare no columns.
	Header []string

	// Rows holds one decoded value per header column per matched record.
	Rows [][]interface{}

	// Statistics maps known statistic labels to their reported values.
	Statistics Statistics

	// Catalogs are the index-to-name mappings used during decoding. Only
	// populated when the response carried records.
	Catalogs Catalogs
}

// DecodeResult classifies a raw compact response and assembles a
// QueryResult from it. Catalog round trips are issued through t before any
// row is decoded; cache may be nil for always-fresh fetches. The caller gets
// either a complete result or a single error, never a partial result.
func DecodeResult(ctx context.Context, t Transport, graphName string, raw interface{}, cache CatalogCache) (*QueryResult, error) {
	result := &QueryResult{GraphName: graphName, Raw: raw}

	// A bare text reply is the deletion-style statistics line.
	if line, ok := raw.(string); ok {
		result.Statistics = parseDeletionStatistics(line)
		return result, nil
	}

	reply, ok := raw.([]interface{})
	if !ok {
		return nil, decodeErrorf(TypeUnknown, "response is %T, want array or string", raw)
	}

	// A single-element response carries only the deletion statistics line.
	if len(reply) == 1 {
		line, ok := reply[0].(string)
		if !ok {
			return nil, decodeErrorf(TypeUnknown, "single-element response is %T, want string", reply[0])
		}
		result.Statistics = parseDeletionStatistics(line)
		return result, nil
	}

	if len(reply) < 3 {
		return nil, decodeErrorf(TypeUnknown, "response has %d sections, want [header, records, statistics]", len(reply))
	}

	header, err := parseHeader(reply[0])
	if err != nil {
		return nil, err
	}
	result.Header = header

	// Zero declared columns means zero records; catalog resolution is
	// skipped entirely so statistics-only commands cost no extra round
	// trips.
	if len(header) > 0 {
		catalogs, err := fetchCatalogs(ctx, t, graphName, cache)
		if err != nil {
			return nil, err
		}
		result.Catalogs = catalogs

		rows, err := decodeRecords(reply[1], header, catalogs)
		if err != nil {
			return nil, err
		}
		result.Rows = rows
	}

	result.Statistics = parseQueryStatistics(statisticsLines(reply[2]))

	slog.Debug("decoded query result",
		"graph", graphName,
		"columns", len(result.Header),
		"rows", len(result.Rows))
	return result, nil
}

// decodeRecords decodes every cell of every record, in column order, tagging
// top-level entities with their column alias.
func decodeRecords(raw interface{}, header []string, catalogs Catalogs) ([][]interface{}, error) {
	records, ok := raw.([]interface{})
	if !ok {
		return nil, decodeErrorf(TypeUnknown, "records section is %T, want array", raw)
	}

	d := &decoder{catalogs: catalogs}
	rows := make([][]interface{}, 0, len(records))
	for i, record := range records {
		cells, ok := record.([]interface{})
		if !ok {
			return nil, decodeErrorf(TypeUnknown, "record %d is %T, want array", i, record)
		}
		row := make([]interface{}, len(cells))
		for j, cell := range cells {
			alias := ""
			if j < len(header) {
				alias = header[j]
			}
			value, err := d.decodeCell(cell, alias)
			if err != nil {
				return nil, err
			}
			row[j] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// statisticsLines normalizes the trailing statistics section into plain
// strings, dropping anything that is not text.
func statisticsLines(raw interface{}) []string {
	elements, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	lines := make([]string, 0, len(elements))
	for _, element := range elements {
		if line, ok := element.(string); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// Stat returns the raw text value of a statistic label, if the server
// reported it for this query.
func (r *QueryResult) Stat(label string) (string, bool) {
	value, ok := r.Statistics[label]
	return value, ok
}

// RowMaps returns the decoded rows keyed by column alias, one map per
// record. Convenient for JSON rendering.
func (r *QueryResult) RowMaps() []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(r.Rows))
	for _, row := range r.Rows {
		m := make(map[string]interface{}, len(r.Header))
		for i, value := range row {
			if i < len(r.Header) {
				m[r.Header[i]] = value
			}
		}
		maps = append(maps, m)
	}
	return maps
}
