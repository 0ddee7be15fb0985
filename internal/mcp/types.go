package mcp

// Tool parameter types. Field names follow the wire format used by clients;
// pointer fields distinguish "omitted" from zero values where the distinction
// changes behavior.

type CreateWorkstreamParams struct {
	Name     string         `json:"name"`
	Summary  string         `json:"summary"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	ParentID *string        `json:"parent_id,omitempty"`
}

type ListWorkstreamsParams struct{}

type GetWorkstreamParams struct {
	ID string `json:"id"`
}

type UpdateWorkstreamParams struct {
	ID       string         `json:"id"`
	Name     *string        `json:"name,omitempty"`
	Summary  *string        `json:"summary,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	ParentID *string        `json:"parent_id,omitempty"`
}

type DeleteWorkstreamParams struct {
	ID string `json:"id"`
}

type AddTagsParams struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

type SearchByTagsParams struct {
	Tags     []string `json:"tags"`
	MatchAll bool     `json:"match_all,omitempty"`
}

type SearchWorkstreamsParams struct {
	Query string `json:"query"`
}

type AddNoteParams struct {
	ID       string `json:"id"`
	Note     string `json:"note"`
	Category string `json:"category,omitempty"`
}

type GetNotesParams struct {
	ID string `json:"id"`
}

type EditNoteParams struct {
	ID        string `json:"id"`
	NoteIndex int    `json:"note_index"`
	Content   string `json:"content"`
	Category  string `json:"category,omitempty"`
}

type DeleteNoteParams struct {
	ID        string `json:"id"`
	NoteIndex int    `json:"note_index"`
}

type SetParentParams struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
}

type GetChildrenParams struct {
	ID string `json:"id"`
}

type GetWorkstreamTreeParams struct{}

type SuggestRelationshipsParams struct{}

type CreateTemplateParams struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	DefaultTags     []string       `json:"default_tags,omitempty"`
	DefaultMetadata map[string]any `json:"default_metadata,omitempty"`
	NoteTemplates   []string       `json:"note_templates,omitempty"`
}

type ListTemplatesParams struct{}

type DeleteTemplateParams struct {
	TemplateID string `json:"template_id"`
}

type CreateFromTemplateParams struct {
	TemplateID        string         `json:"template_id"`
	Name              string         `json:"name"`
	Summary           string         `json:"summary"`
	AdditionalTags    []string       `json:"additional_tags,omitempty"`
	MetadataOverrides map[string]any `json:"metadata_overrides,omitempty"`
	ParentID          *string        `json:"parent_id,omitempty"`
}

// DeleteResult reports whether a delete removed anything.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// NotesResult pairs a workstream ID with its note log.
type NotesResult struct {
	ID    string   `json:"id"`
	Notes []string `json:"notes"`
}
