package server

import (
	"os"
	"path/filepath"
	"testing"

	analytics_mocks "github.com/falkordb-contrib/falkordb-mcp/internal/analytics/mocks"
	"github.com/falkordb-contrib/falkordb-mcp/internal/config"
	database_mocks "github.com/falkordb-contrib/falkordb-mcp/internal/database/mocks"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/dynamic"
	toolsconfig "github.com/falkordb-contrib/falkordb-mcp/tools"
	"go.uber.org/mock/gomock"
)

func getProjectRoot(t *testing.T) string {
	// Start from current directory and walk up until we find go.mod
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("Could not find project root (go.mod not found)")
		}
		dir = parent
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *FalkorDBMCPServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	dynamic.EmbeddedFS = toolsconfig.ConfigFiles

	return &FalkorDBMCPServer{
		config:    cfg,
		dbService: database_mocks.NewMockService(ctrl),
		anService: analytics_mocks.NewMockService(ctrl),
	}
}

func TestDynamicToolsAreExposed(t *testing.T) {
	// Change to project root so relative paths work
	projectRoot := getProjectRoot(t)
	oldDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("Failed to change to project root: %v", err)
	}
	defer os.Chdir(oldDir)

	srv := newTestServer(t, &config.Config{ReadOnly: false})

	deps := &tools.ToolDependencies{
		DBService:        srv.dbService,
		AnalyticsService: srv.anService,
	}
	toolDefs := srv.getAllToolsDefs(deps)

	if len(toolDefs) == 0 {
		t.Fatal("No tools found")
	}

	dynamicCount := 0
	var dynamicToolNames []string

	for _, toolDef := range toolDefs {
		if toolDef.category == dynamicCategory {
			dynamicCount++
			dynamicToolNames = append(dynamicToolNames, toolDef.definition.Tool.Name)
		}
	}

	t.Logf("Total tools: %d", len(toolDefs))
	t.Logf("Dynamic tools: %d", dynamicCount)
	t.Logf("Dynamic tool names: %v", dynamicToolNames)

	expectedTools := map[string]bool{
		"find-hub-nodes":    false,
		"detect-cycles":     false,
		"find-orphan-nodes": false,
	}

	for _, name := range dynamicToolNames {
		if _, exists := expectedTools[name]; exists {
			expectedTools[name] = true
		}
	}

	for toolName, found := range expectedTools {
		if !found {
			t.Errorf("Expected dynamic tool not found: %s", toolName)
		}
	}

	if dynamicCount < 3 {
		t.Errorf("Expected at least 3 dynamic tools, got %d", dynamicCount)
	}
}

func TestReadOnlyModeFiltersWriteTools(t *testing.T) {
	projectRoot := getProjectRoot(t)
	oldDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("Failed to change to project root: %v", err)
	}
	defer os.Chdir(oldDir)

	srv := newTestServer(t, &config.Config{ReadOnly: true})
	enabled := srv.getEnabledTools()

	if len(enabled) == 0 {
		t.Fatal("No tools enabled in read-only mode")
	}

	excluded := map[string]bool{
		"write-cypher": true,
		"delete-graph": true,
	}
	for _, st := range enabled {
		if excluded[st.Tool.Name] {
			t.Errorf("Write tool %s exposed in read-only mode", st.Tool.Name)
		}
	}

	// The read path must survive the filter.
	found := false
	for _, st := range enabled {
		if st.Tool.Name == "read-cypher" {
			found = true
		}
	}
	if !found {
		t.Error("read-cypher missing in read-only mode")
	}
}

func TestDynamicToolsHaveCorrectStructure(t *testing.T) {
	projectRoot := getProjectRoot(t)
	oldDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("Failed to change to project root: %v", err)
	}
	defer os.Chdir(oldDir)

	srv := newTestServer(t, &config.Config{ReadOnly: false})

	deps := &tools.ToolDependencies{
		DBService:        srv.dbService,
		AnalyticsService: srv.anService,
	}
	toolDefs := srv.getAllToolsDefs(deps)

	for _, toolDef := range toolDefs {
		if toolDef.category != dynamicCategory {
			continue
		}

		tool := toolDef.definition.Tool
		t.Logf("Checking tool: %s", tool.Name)

		if tool.Name == "" {
			t.Errorf("Tool has empty name")
		}

		if tool.Description == "" {
			t.Errorf("Tool %s has empty description", tool.Name)
		}

		if toolDef.definition.Handler == nil {
			t.Errorf("Tool %s has nil handler", tool.Name)
		}

		if !toolDef.readonly {
			t.Errorf("Tool %s is not marked as readonly", tool.Name)
		}
	}
}
