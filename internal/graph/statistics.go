package graph

import "strings"

// Statistics maps a known statistic label to the raw text value the server
// reported for it. Values keep the server's formatting; execution times in
// particular carry their unit in the surrounding line, not in the value.
type Statistics map[string]string

// Statistic labels reported after the records of an ordinary query.
const (
	StatLabelsAdded          = "Labels added"
	StatLabelsRemoved        = "Labels removed"
	StatNodesCreated         = "Nodes created"
	StatNodesDeleted         = "Nodes deleted"
	StatPropertiesSet        = "Properties set"
	StatPropertiesRemoved    = "Properties removed"
	StatRelationshipsCreated = "Relationships created"
	StatRelationshipsDeleted = "Relationships deleted"
	StatIndicesCreated       = "Indices created"
	StatIndicesDeleted       = "Indices deleted"
	StatExecutionTime        = "Query internal execution time"

	// StatGraphRemoved is the single line returned for GRAPH.DELETE.
	StatGraphRemoved = "Graph removed, internal execution time"
)

var queryStatLabels = []string{
	StatLabelsAdded,
	StatLabelsRemoved,
	StatNodesCreated,
	StatNodesDeleted,
	StatPropertiesSet,
	StatPropertiesRemoved,
	StatRelationshipsCreated,
	StatRelationshipsDeleted,
	StatIndicesCreated,
	StatIndicesDeleted,
	StatExecutionTime,
}

// parseStatistics extracts the known statistic labels from the free-text
// lines that trail a query response. The first line containing a label wins;
// labels with no matching line are simply absent from the result.
func parseStatistics(lines []string, labels []string) Statistics {
	stats := make(Statistics)
	for _, label := range labels {
		for _, line := range lines {
			if !strings.Contains(line, label) {
				continue
			}
			if value, ok := statValue(line); ok {
				stats[label] = value
			}
			break
		}
	}
	return stats
}

// statValue returns the token immediately following ": ", stripped of any
// trailing text. "Properties set: 2 (cached)" yields "2".
func statValue(line string) (string, bool) {
	_, rest, found := strings.Cut(line, ": ")
	if !found {
		return "", false
	}
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		rest = rest[:i]
	}
	return rest, true
}

// parseQueryStatistics handles the statistics block of a record-returning
// response.
func parseQueryStatistics(lines []string) Statistics {
	return parseStatistics(lines, queryStatLabels)
}

// parseDeletionStatistics handles the single line returned by graph deletion.
func parseDeletionStatistics(line string) Statistics {
	return parseStatistics([]string{line}, []string{StatGraphRemoved})
}
