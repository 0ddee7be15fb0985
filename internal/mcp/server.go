// Package mcp exposes the workstream store over the Model Context Protocol.
package mcp

import (
	"context"
	"log/slog"

	"github.com/jpals/localmem/internal/domain/template"
	"github.com/jpals/localmem/internal/domain/workstream"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// WorkstreamService defines workstream operations needed by MCP.
type WorkstreamService interface {
	Create(ctx context.Context, req workstream.CreateRequest) (*workstream.Workstream, error)
	Update(ctx context.Context, req workstream.UpdateRequest) (*workstream.Workstream, error)
	Delete(ctx context.Context, id string) (bool, error)
	AddTags(ctx context.Context, id string, tags []string) (*workstream.Workstream, error)
	AddNote(ctx context.Context, id, text, category string) (*workstream.Workstream, error)
	Notes(ctx context.Context, id string) ([]string, error)
	EditNote(ctx context.Context, id string, index int, text, category string) (*workstream.Workstream, error)
	DeleteNote(ctx context.Context, id string, index int) (*workstream.Workstream, error)
	SetParent(ctx context.Context, id, parentID string) (*workstream.Workstream, error)
	List(ctx context.Context) ([]*workstream.Workstream, error)
	Get(ctx context.Context, id string) (*workstream.Workstream, bool, error)
	Search(ctx context.Context, query string) ([]*workstream.Workstream, error)
	SearchByTags(ctx context.Context, tags []string, matchAll bool) ([]*workstream.Workstream, error)
	Children(ctx context.Context, parentID string) ([]*workstream.Workstream, error)
	Tree(ctx context.Context) (*workstream.Tree, error)
	SuggestRelationships(ctx context.Context) ([]workstream.Suggestion, error)
}

// TemplateService defines template operations needed by MCP.
type TemplateService interface {
	Create(ctx context.Context, req template.CreateRequest) (*template.Template, error)
	List(ctx context.Context) ([]*template.Template, error)
	Delete(ctx context.Context, id string) (bool, error)
	Instantiate(ctx context.Context, req template.InstantiateRequest) (*workstream.Workstream, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Workstreams WorkstreamService
	Templates   TemplateService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	AuthEnabled   bool
	APIKey        string
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools, resources,
// and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "localmem",
		Version: "0.2.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)
	registerWorkstreamResources(server, cfg.Services.Workstreams)

	// Stdio mode is local-only; bearer auth applies to HTTP transport.
	if cfg.TransportMode != "stdio" && cfg.AuthEnabled {
		server.AddReceivingMiddleware(authMiddleware(cfg.APIKey))
	}
	server.AddReceivingMiddleware(metricsMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
