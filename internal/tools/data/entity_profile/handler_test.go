package entity_profile

import (
	"context"
	"strings"
	"testing"

	analytics_mocks "github.com/falkordb-contrib/falkordb-mcp/internal/analytics/mocks"
	database_mocks "github.com/falkordb-contrib/falkordb-mcp/internal/database/mocks"
	"github.com/falkordb-contrib/falkordb-mcp/internal/graph"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools"
	"github.com/falkordb-contrib/falkordb-mcp/internal/tools/cypher/query_builder"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"
)

func baseInput() GetEntityProfileInput {
	return GetEntityProfileInput{
		EntityId: "p-42",
		EntityConfig: EntityConfig{
			NodeLabel:  "Person",
			IdProperty: "personId",
		},
		AttributeMappings: []query_builder.AttributeMapping{
			{RelationshipType: "HAS_EMAIL", TargetLabel: "Email", IdentifierProperty: "address", Category: "contact"},
			{RelationshipType: "OWNS", TargetLabel: "Account"},
		},
	}
}

func TestBuildProfileQuery(t *testing.T) {
	query, err := buildProfileQuery(baseInput())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	expectedFragments := []string{
		"MATCH (e:Person {personId: $entityId})",
		"OPTIONAL MATCH (e)-[:HAS_EMAIL]->(attr0:Email)",
		"OPTIONAL MATCH (e)-[:OWNS]->(attr1:Account)",
		"properties(e) AS entity",
		"collect(DISTINCT {address: attr0.address}) AS contact",
		"collect(DISTINCT {account: properties(attr1)}) AS attributes1",
	}
	for _, fragment := range expectedFragments {
		if !strings.Contains(query, fragment) {
			t.Errorf("expected query to contain %q, got:\n%s", fragment, query)
		}
	}
}

func TestBuildProfileQueryRejectsBadIdentifiers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GetEntityProfileInput)
	}{
		{"label with injection", func(in *GetEntityProfileInput) {
			in.EntityConfig.NodeLabel = "Person) MATCH (x"
		}},
		{"relationship with space", func(in *GetEntityProfileInput) {
			in.AttributeMappings[0].RelationshipType = "HAS EMAIL"
		}},
		{"property starting with digit", func(in *GetEntityProfileInput) {
			in.AttributeMappings[0].IdentifierProperty = "1address"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput()
			tt.mutate(&input)
			if _, err := buildProfileQuery(input); err == nil {
				t.Error("expected identifier validation error")
			}
		})
	}
}

func TestHandlerValidation(t *testing.T) {
	ctrl := gomock.NewController(t)

	analyticsService := analytics_mocks.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent(gomock.Any()).AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	dbService := database_mocks.NewMockService(ctrl)
	dbService.EXPECT().GetGraphName().Return("imdb").AnyTimes()

	deps := &tools.ToolDependencies{DBService: dbService, AnalyticsService: analyticsService}

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing entityId", map[string]any{
			"entityConfig": map[string]any{"nodeLabel": "Person", "idProperty": "personId"},
		}},
		{"missing nodeLabel", map[string]any{
			"entityId":     "p-42",
			"entityConfig": map[string]any{"idProperty": "personId"},
		}},
		{"missing attributeMappings", map[string]any{
			"entityId":     "p-42",
			"entityConfig": map[string]any{"nodeLabel": "Person", "idProperty": "personId"},
		}},
	}

	handler := Handler(deps)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = tt.args

			res, err := handler(context.Background(), req)
			if err != nil {
				t.Fatalf("expected no error from handler, got: %v", err)
			}
			if res == nil || !res.IsError {
				t.Fatal("expected error result")
			}
		})
	}
}

func TestHandlerBindsEntityIdAsParameter(t *testing.T) {
	ctrl := gomock.NewController(t)

	analyticsService := analytics_mocks.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent(gomock.Any()).AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	dbService := database_mocks.NewMockService(ctrl)
	dbService.EXPECT().GetGraphName().Return("imdb").AnyTimes()
	dbService.EXPECT().
		ExecuteReadQuery(gomock.Any(), gomock.Any(), map[string]interface{}{"entityId": "p-42"}).
		Return(&graph.QueryResult{
			Header: []string{"entity"},
			Rows:   [][]interface{}{{map[string]interface{}{"name": "Alice"}}},
		}, nil)

	deps := &tools.ToolDependencies{DBService: dbService, AnalyticsService: analyticsService}

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"entityId":     "p-42",
		"entityConfig": map[string]any{"nodeLabel": "Person", "idProperty": "personId"},
		"attributeMappings": []any{
			map[string]any{"relationshipType": "HAS_EMAIL", "targetLabel": "Email"},
		},
	}

	res, err := Handler(deps)(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if res == nil || res.IsError {
		t.Fatal("expected success result")
	}

	text := res.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, "Alice") {
		t.Errorf("expected entity properties in output, got %q", text)
	}
}
