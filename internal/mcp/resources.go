package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const workstreamURIPrefix = "workstream://"

// registerWorkstreamResources exposes every workstream as a JSON resource
// under workstream://{id}.
func registerWorkstreamResources(server *sdkmcp.Server, workstreams WorkstreamService) {
	server.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: workstreamURIPrefix + "{id}",
		Name:        "workstream",
		Title:       "Workstream record",
		Description: "A single workstream, including tags, metadata, and notes, as JSON.",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		uri := req.Params.URI
		id := strings.TrimPrefix(uri, workstreamURIPrefix)
		if id == uri || id == "" {
			return nil, fmt.Errorf("invalid workstream URI: %s", uri)
		}

		ws, ok, err := workstreams.Get(ctx, id)
		if err != nil {
			return nil, mapError(err)
		}
		if !ok {
			return nil, fmt.Errorf("workstream %s not found", id)
		}

		data, err := json.MarshalIndent(ws, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding workstream %s: %w", id, err)
		}
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			}},
		}, nil
	})
}
