package template

import "time"

// Template is a reusable blueprint for creating workstreams.
type Template struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	DefaultTags     []string       `json:"defaultTags"`
	DefaultMetadata map[string]any `json:"defaultMetadata"`
	NoteTemplates   []string       `json:"noteTemplates"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
