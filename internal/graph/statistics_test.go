package graph

import "testing"

func TestParseQueryStatistics(t *testing.T) {
	lines := []string{
		"Nodes created: 2",
		"Properties set: 2 (some trailer)",
		"Relationships created: 1",
	}

	stats := parseQueryStatistics(lines)

	expected := map[string]string{
		StatNodesCreated:         "2",
		StatPropertiesSet:        "2",
		StatRelationshipsCreated: "1",
	}
	for label, want := range expected {
		got, ok := stats[label]
		if !ok {
			t.Errorf("expected statistic %q to be present", label)
			continue
		}
		if got != want {
			t.Errorf("statistic %q = %q, want %q", label, got, want)
		}
	}

	// Every other known label must be absent, not empty.
	for _, label := range queryStatLabels {
		if _, known := expected[label]; known {
			continue
		}
		if value, ok := stats[label]; ok {
			t.Errorf("statistic %q unexpectedly present with value %q", label, value)
		}
	}
}

func TestParseQueryStatisticsExecutionTime(t *testing.T) {
	stats := parseQueryStatistics([]string{"Query internal execution time: 0.598186 milliseconds"})

	if got := stats[StatExecutionTime]; got != "0.598186" {
		t.Errorf("execution time = %q, want %q", got, "0.598186")
	}
}

func TestParseQueryStatisticsFirstLineWins(t *testing.T) {
	lines := []string{
		"Nodes created: 1",
		"Nodes created: 99",
	}

	stats := parseQueryStatistics(lines)

	if got := stats[StatNodesCreated]; got != "1" {
		t.Errorf("nodes created = %q, want first matching line value %q", got, "1")
	}
}

func TestParseDeletionStatistics(t *testing.T) {
	stats := parseDeletionStatistics("Graph removed, internal execution time: 1.234 milliseconds")

	if got := stats[StatGraphRemoved]; got != "1.234" {
		t.Errorf("graph removed = %q, want %q", got, "1.234")
	}
	if len(stats) != 1 {
		t.Errorf("expected a single statistic, got %d", len(stats))
	}
}

func TestParseStatisticsIgnoresUnknownLines(t *testing.T) {
	stats := parseQueryStatistics([]string{
		"Cached execution: 1",
		"Nodes deleted: 3",
	})

	if len(stats) != 1 {
		t.Fatalf("expected one statistic, got %d: %v", len(stats), stats)
	}
	if got := stats[StatNodesDeleted]; got != "3" {
		t.Errorf("nodes deleted = %q, want %q", got, "3")
	}
}
