package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `localmem stores durable workstream records in a local flat-file store.

Core concepts:
- Workstream: a named unit of work with a summary, tags, free-form metadata, timestamped notes, and an optional parent.
- Tags: flat labels used for grouping and retrieval (search_by_tags).
- Notes: an append-only log per workstream, each entry stamped at write time. Edit or delete by zero-based index.
- Hierarchy: set_parent links workstreams into a tree; get_children and get_workstream_tree read it back.
- Template: reusable defaults (tags, metadata, seed notes) for creating similar workstreams.

Typical workflow:
1) Orient: list_workstreams, or search_workstreams / search_by_tags when you know what you're after.
2) Read: get_workstream for the full record, get_notes for its history.
3) Write: create_workstream, then add_note as work progresses; add_tags or update_workstream to reshape.
   - update_workstream replaces tags wholesale but merges metadata key-by-key.
4) Organize: set_parent to build hierarchy; suggest_relationships proposes links you may have missed.
5) Repeat yourself less: create_template once, then create_workstream_from_template.

Resources:
- workstream://{id} serves any workstream as JSON.
- localmem://docs/index and localmem://docs/workflows for deeper guidance.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "localmem://docs/index",
		Name:        "docs_index",
		Title:       "localmem docs index",
		Description: "Entry point for agent-facing docs: the data model and which tool to reach for.",
		Content: `# localmem: Agent Docs Index

localmem keeps workstreams (durable units of work) in a local store that
survives across conversations. Records are cheap to create and cheap to read;
prefer many small workstreams over one sprawling one.

## Data model

- id: assigned at creation (ws-<timestamp>-<suffix>), never reused.
- name / summary: required; the substring search (search_workstreams) covers both.
- tags: flat labels. Retrieval via search_by_tags (any-match by default, match_all for intersection).
- metadata: free-form JSON object. Updates merge key-by-key.
- notes: append-only log; each entry carries a [YYYY-MM-DD HH:MM] stamp and optional [CATEGORY].
- parent_id: optional link to another workstream. Cycles are rejected.

## Which tool when

- Finding things: list_workstreams → search_workstreams → search_by_tags.
- Recording progress: add_note (prefer over rewriting summary).
- Restructuring: update_workstream (tags replace, metadata merges), set_parent.
- Bulk setup: create_template + create_workstream_from_template.

See localmem://docs/workflows for worked examples.
`,
	},
	{
		URI:         "localmem://docs/workflows",
		Name:        "docs_workflows",
		Title:       "localmem workflows",
		Description: "Worked examples for recording, tagging, and organizing workstreams.",
		Content: `# localmem workflows

## Recording a new effort

1. create_workstream with a short name, a 1-2 sentence summary, and initial tags.
2. add_note whenever something worth remembering happens. Use categories
   (DECISION, BLOCKER, STATUS) so later readers can skim.
3. When the effort ends, add a closing note rather than deleting the record.

## Tag hygiene

- Reuse existing tags: search_by_tags with your candidate tag first.
- Tag the program a workstream belongs to ("program", "initiative") so
  suggest_relationships can propose hierarchy.
- add_tags never removes; use update_workstream with the full tag list to prune.

## Building hierarchy

- set_parent(id, parent_id) attaches; set_parent(id, "") detaches.
- get_workstream_tree shows roots and their subtrees in one call.
- Run suggest_relationships periodically; it scores candidate links from
  shared tags, name containment, cross-references in notes, and summary
  keyword overlap. Suggestions are hints, not writes.

## Templates

Capture recurring structure once:

1. create_template with default_tags, default_metadata, and note_templates
   (seed notes written into every instance).
2. create_workstream_from_template with the new name and summary;
   additional_tags append and metadata_overrides win over defaults.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
