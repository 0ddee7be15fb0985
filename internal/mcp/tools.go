package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jpals/localmem/internal/domain/template"
	"github.com/jpals/localmem/internal/domain/workstream"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// handler adapts domain services to MCP tool calls.
type handler struct {
	workstreams WorkstreamService
	templates   TemplateService
}

// jsonResult renders a payload as an indented JSON text content block.
func jsonResult(payload any) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}
	return textResult(string(data)), nil, nil
}

func textResult(text string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}
}

func (h *handler) createWorkstream(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateWorkstreamParams) (*sdkmcp.CallToolResult, any, error) {
	ws, err := h.workstreams.Create(ctx, workstream.CreateRequest{
		Name:     params.Name,
		Summary:  params.Summary,
		Tags:     params.Tags,
		Metadata: params.Metadata,
		ParentID: params.ParentID,
	})
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(ws)
}

func (h *handler) listWorkstreams(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListWorkstreamsParams) (*sdkmcp.CallToolResult, any, error) {
	list, err := h.workstreams.List(ctx)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(list)
}

func (h *handler) getWorkstream(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetWorkstreamParams) (*sdkmcp.CallToolResult, any, error) {
	ws, ok, err := h.workstreams.Get(ctx, params.ID)
	if err != nil {
		return nil, nil, mapError(err)
	}
	if !ok {
		return textResult(fmt.Sprintf("No workstream found with ID %q.", params.ID)), nil, nil
	}
	return jsonResult(ws)
}

func (h *handler) updateWorkstream(ctx context.Context, _ *sdkmcp.CallToolRequest, params UpdateWorkstreamParams) (*sdkmcp.CallToolResult, any, error) {
	ws, err := h.workstreams.Update(ctx, workstream.UpdateRequest{
		ID:       params.ID,
		Name:     params.Name,
		Summary:  params.Summary,
		Tags:     params.Tags,
		Metadata: params.Metadata,
		ParentID: params.ParentID,
	})
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(ws)
}

func (h *handler) deleteWorkstream(ctx context.Context, _ *sdkmcp.CallToolRequest, params DeleteWorkstreamParams) (*sdkmcp.CallToolResult, any, error) {
	deleted, err := h.workstreams.Delete(ctx, params.ID)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(DeleteResult{ID: params.ID, Deleted: deleted})
}

func (h *handler) addTags(ctx context.Context, _ *sdkmcp.CallToolRequest, params AddTagsParams) (*sdkmcp.CallToolResult, any, error) {
	ws, err := h.workstreams.AddTags(ctx, params.ID, params.Tags)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(ws)
}

func (h *handler) searchByTags(ctx context.Context, _ *sdkmcp.CallToolRequest, params SearchByTagsParams) (*sdkmcp.CallToolResult, any, error) {
	list, err := h.workstreams.SearchByTags(ctx, params.Tags, params.MatchAll)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(list)
}

func (h *handler) searchWorkstreams(ctx context.Context, _ *sdkmcp.CallToolRequest, params SearchWorkstreamsParams) (*sdkmcp.CallToolResult, any, error) {
	list, err := h.workstreams.Search(ctx, params.Query)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(list)
}

func (h *handler) addNote(ctx context.Context, _ *sdkmcp.CallToolRequest, params AddNoteParams) (*sdkmcp.CallToolResult, any, error) {
	ws, err := h.workstreams.AddNote(ctx, params.ID, params.Note, params.Category)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(ws)
}

func (h *handler) getNotes(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetNotesParams) (*sdkmcp.CallToolResult, any, error) {
	notes, err := h.workstreams.Notes(ctx, params.ID)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(NotesResult{ID: params.ID, Notes: notes})
}

func (h *handler) editNote(ctx context.Context, _ *sdkmcp.CallToolRequest, params EditNoteParams) (*sdkmcp.CallToolResult, any, error) {
	ws, err := h.workstreams.EditNote(ctx, params.ID, params.NoteIndex, params.Content, params.Category)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(ws)
}

func (h *handler) deleteNote(ctx context.Context, _ *sdkmcp.CallToolRequest, params DeleteNoteParams) (*sdkmcp.CallToolResult, any, error) {
	ws, err := h.workstreams.DeleteNote(ctx, params.ID, params.NoteIndex)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(ws)
}

func (h *handler) setParent(ctx context.Context, _ *sdkmcp.CallToolRequest, params SetParentParams) (*sdkmcp.CallToolResult, any, error) {
	ws, err := h.workstreams.SetParent(ctx, params.ID, params.ParentID)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(ws)
}

func (h *handler) getChildren(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetChildrenParams) (*sdkmcp.CallToolResult, any, error) {
	list, err := h.workstreams.Children(ctx, params.ID)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(list)
}

func (h *handler) getWorkstreamTree(ctx context.Context, _ *sdkmcp.CallToolRequest, _ GetWorkstreamTreeParams) (*sdkmcp.CallToolResult, any, error) {
	tree, err := h.workstreams.Tree(ctx)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(tree)
}

func (h *handler) suggestRelationships(ctx context.Context, _ *sdkmcp.CallToolRequest, _ SuggestRelationshipsParams) (*sdkmcp.CallToolResult, any, error) {
	suggestions, err := h.workstreams.SuggestRelationships(ctx)
	if err != nil {
		return nil, nil, mapError(err)
	}
	if len(suggestions) == 0 {
		return textResult("No relationship suggestions found."), nil, nil
	}
	return jsonResult(suggestions)
}

func (h *handler) createTemplate(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateTemplateParams) (*sdkmcp.CallToolResult, any, error) {
	tmpl, err := h.templates.Create(ctx, template.CreateRequest{
		Name:            params.Name,
		Description:     params.Description,
		DefaultTags:     params.DefaultTags,
		DefaultMetadata: params.DefaultMetadata,
		NoteTemplates:   params.NoteTemplates,
	})
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(tmpl)
}

func (h *handler) listTemplates(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListTemplatesParams) (*sdkmcp.CallToolResult, any, error) {
	list, err := h.templates.List(ctx)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(list)
}

func (h *handler) deleteTemplate(ctx context.Context, _ *sdkmcp.CallToolRequest, params DeleteTemplateParams) (*sdkmcp.CallToolResult, any, error) {
	deleted, err := h.templates.Delete(ctx, params.TemplateID)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(DeleteResult{ID: params.TemplateID, Deleted: deleted})
}

func (h *handler) createFromTemplate(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateFromTemplateParams) (*sdkmcp.CallToolResult, any, error) {
	ws, err := h.templates.Instantiate(ctx, template.InstantiateRequest{
		TemplateID:        params.TemplateID,
		Name:              params.Name,
		Summary:           params.Summary,
		AdditionalTags:    params.AdditionalTags,
		MetadataOverrides: params.MetadataOverrides,
		ParentID:          params.ParentID,
	})
	if err != nil {
		return nil, nil, mapError(err)
	}
	return jsonResult(ws)
}

// registerTools wires every tool into the server. Input schemas are inferred
// from the params structs.
func registerTools(server *sdkmcp.Server, services Services) {
	h := &handler{workstreams: services.Workstreams, templates: services.Templates}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_workstream",
		Description: "Create a new workstream with a name, summary, and optional tags, metadata, and parent",
	}, h.createWorkstream)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_workstreams",
		Description: "List all workstreams in creation order",
	}, h.listWorkstreams)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_workstream",
		Description: "Get a single workstream by ID",
	}, h.getWorkstream)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_workstream",
		Description: "Update a workstream; omitted fields are left unchanged, tags replace wholesale, metadata is merged",
	}, h.updateWorkstream)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_workstream",
		Description: "Delete a workstream by ID; reports whether anything was removed",
	}, h.deleteWorkstream)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_tags",
		Description: "Append tags to a workstream without disturbing existing ones",
	}, h.addTags)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_by_tags",
		Description: "Find workstreams by tags; match_all requires every tag, otherwise any overlap matches",
	}, h.searchByTags)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_workstreams",
		Description: "Case-insensitive substring search over workstream names and summaries",
	}, h.searchWorkstreams)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_note",
		Description: "Append a timestamped note to a workstream, with an optional category label",
	}, h.addNote)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_notes",
		Description: "Get all notes for a workstream in the order they were added",
	}, h.getNotes)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "edit_note",
		Description: "Replace the text of a note by its zero-based index; the timestamp is refreshed",
	}, h.editNote)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_note",
		Description: "Remove a note by its zero-based index",
	}, h.deleteNote)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_parent",
		Description: "Set or clear (empty parent_id) a workstream's parent; cycles are rejected",
	}, h.setParent)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_children",
		Description: "List the direct children of a workstream",
	}, h.getChildren)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_workstream_tree",
		Description: "Get the full parent/child hierarchy of all workstreams",
	}, h.getWorkstreamTree)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "suggest_relationships",
		Description: "Suggest likely parent/child and related-workstream links based on tags, names, notes, and summaries",
	}, h.suggestRelationships)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_template",
		Description: "Create a reusable workstream template with default tags, metadata, and seed notes",
	}, h.createTemplate)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_templates",
		Description: "List all workstream templates",
	}, h.listTemplates)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_template",
		Description: "Delete a template by ID; reports whether anything was removed",
	}, h.deleteTemplate)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_workstream_from_template",
		Description: "Create a workstream from a template, layering additional tags and metadata overrides on the defaults",
	}, h.createFromTemplate)
}
