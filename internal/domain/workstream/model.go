package workstream

import "time"

// Workstream is a durable, taggable record of a unit of work.
type Workstream struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Summary   string         `json:"summary"`
	Tags      []string       `json:"tags"`
	Metadata  map[string]any `json:"metadata"`
	Notes     []string       `json:"notes"`
	ParentID  *string        `json:"parentId,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Clone returns a copy that shares no mutable state with the receiver.
func (w *Workstream) Clone() *Workstream {
	out := *w
	out.Tags = append([]string(nil), w.Tags...)
	out.Notes = append([]string(nil), w.Notes...)
	out.Metadata = cloneMetadata(w.Metadata)
	if w.ParentID != nil {
		pid := *w.ParentID
		out.ParentID = &pid
	}
	return &out
}

// Tree groups all workstreams by parentage.
type Tree struct {
	Roots    []*Workstream            `json:"roots"`
	Children map[string][]*Workstream `json:"children"`
}

// Suggestion is a heuristic guess at a relationship between two workstreams.
type Suggestion struct {
	SourceID     string  `json:"sourceId"`
	TargetID     string  `json:"targetId"`
	Relationship string  `json:"relationship"` // "parent", "related", "similar"
	Confidence   float64 `json:"confidence"`
	Reason       string  `json:"reason"`
}

func cloneMetadata(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// normalizeTags collapses duplicates while preserving first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
