// Package helpers provides shared setup for integration tests that run
// against a real FalkorDB instance in a container.
package helpers

import (
	"context"
	"fmt"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/falkordb-contrib/falkordb-mcp/internal/graph"
)

const falkordbImage = "falkordb/falkordb:latest"

// TestContext bundles a running FalkorDB container with a connected client.
type TestContext struct {
	Container testcontainers.Container
	Client    *graph.Client
	Addr      string
}

// StartFalkorDB launches a FalkorDB container and connects a client to it.
// Cleanup is registered on the test, so callers do not need to terminate
// the container themselves.
func StartFalkorDB(ctx context.Context, t *testing.T) *TestContext {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        falkordbImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start FalkorDB container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}
	addr := fmt.Sprintf("%s:%s", host, port.Port())

	client, err := graph.Connect(ctx, &graph.Options{Addr: addr})
	if err != nil {
		t.Fatalf("failed to connect to FalkorDB at %s: %v", addr, err)
	}
	t.Cleanup(func() {
		client.Close()
	})

	return &TestContext{
		Container: container,
		Client:    client,
		Addr:      addr,
	}
}
