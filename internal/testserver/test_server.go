// Package testserver wires a fully assembled MCP server to an in-memory
// client session for functional tests.
package testserver

import (
	"context"
	"testing"

	"github.com/jpals/localmem/internal/domain/template"
	"github.com/jpals/localmem/internal/domain/workstream"
	"github.com/jpals/localmem/internal/jsonstore"
	"github.com/jpals/localmem/internal/mcp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Session     *sdkmcp.ClientSession
	Workstreams *workstream.Service
	Templates   *template.Service
	DataDir     string
}

// New builds a server over a throwaway data directory and connects an
// in-memory client session to it.
func New(t *testing.T) *TestServer {
	t.Helper()

	dataDir := t.TempDir()

	workstreamRepo, err := jsonstore.NewWorkstreamRepository(dataDir, "test")
	require.NoError(t, err)
	templateRepo, err := jsonstore.NewTemplateRepository(dataDir, "test")
	require.NoError(t, err)

	workstreamSvc := workstream.NewService(workstreamRepo, nil)
	templateSvc := template.NewService(templateRepo, workstreamSvc, nil)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Workstreams: workstreamSvc,
			Templates:   templateSvc,
		},
		TransportMode: "stdio",
	})

	ctx := context.Background()
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "testclient", Version: "0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = clientSession.Close()
		_ = serverSession.Wait()
	})

	return &TestServer{
		Session:     clientSession,
		Workstreams: workstreamSvc,
		Templates:   templateSvc,
		DataDir:     dataDir,
	}
}

// CallTool invokes a tool over the client session and fails the test on
// transport errors. Tool-level errors come back in the result.
func (ts *TestServer) CallTool(t *testing.T, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()

	result, err := ts.Session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	return result
}

// TextContent extracts the first text block from a tool result.
func TextContent(t *testing.T, result *sdkmcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}
