package workstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jpals/localmem/internal/repository"
)

// Service implements the mutation pipeline and query engine over a Repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new workstream service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest describes a workstream creation request.
type CreateRequest struct {
	Name     string
	Summary  string
	Tags     []string
	Metadata map[string]any
	ParentID *string
}

// UpdateRequest describes a workstream update request. Nil fields are left
// unchanged. Tags, when supplied, replace the existing set wholesale;
// Metadata, when supplied, is merged key-by-key with caller keys winning.
// A non-nil empty ParentID clears the parent.
type UpdateRequest struct {
	ID       string
	Name     *string
	Summary  *string
	Tags     []string
	Metadata map[string]any
	ParentID *string
}

// Create validates the request, assigns a fresh id, and persists the new
// workstream. CreatedAt and UpdatedAt are set to the same instant.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Workstream, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	var parentID *string
	if req.ParentID != nil && *req.ParentID != "" {
		if _, err := s.repo.Get(ctx, *req.ParentID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, fmt.Errorf("loading parent: %w", err)
		}
		pid := *req.ParentID
		parentID = &pid
	}

	id, err := s.freshID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ws := &Workstream{
		ID:        id,
		Name:      req.Name,
		Summary:   req.Summary,
		Tags:      normalizeTags(req.Tags),
		Metadata:  cloneMetadata(req.Metadata),
		Notes:     []string{},
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Put(ctx, ws); err != nil {
		return nil, fmt.Errorf("creating workstream: %w", err)
	}
	if s.logger != nil {
		s.logger.Debug("workstream created", "id", ws.ID, "name", ws.Name)
	}
	return ws, nil
}

// Update applies a partial update and refreshes UpdatedAt.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Workstream, error) {
	current, err := s.load(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Summary != nil {
		updated.Summary = *req.Summary
	}
	if req.Tags != nil {
		updated.Tags = normalizeTags(req.Tags)
	}
	if req.Metadata != nil {
		for k, v := range req.Metadata {
			updated.Metadata[k] = v
		}
	}
	if req.ParentID != nil {
		if *req.ParentID == "" {
			updated.ParentID = nil
		} else {
			if err := s.checkParent(ctx, req.ID, *req.ParentID); err != nil {
				return nil, err
			}
			pid := *req.ParentID
			updated.ParentID = &pid
		}
	}
	updated.UpdatedAt = time.Now()

	if err := s.repo.Put(ctx, updated); err != nil {
		return nil, fmt.Errorf("updating workstream: %w", err)
	}
	return updated, nil
}

// Delete removes a workstream and reports whether one was present. A no-op
// delete does not touch the backing file.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("deleting workstream: %w", err)
	}
	if removed && s.logger != nil {
		s.logger.Debug("workstream deleted", "id", id)
	}
	return removed, nil
}

// AddTags unions the supplied tags into the existing set. Existing display
// order is preserved; new tags are appended in first-seen order.
func (s *Service) AddTags(ctx context.Context, id string, tags []string) (*Workstream, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	seen := make(map[string]struct{}, len(updated.Tags))
	for _, tag := range updated.Tags {
		seen[tag] = struct{}{}
	}
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		updated.Tags = append(updated.Tags, tag)
	}
	updated.UpdatedAt = time.Now()

	if err := s.repo.Put(ctx, updated); err != nil {
		return nil, fmt.Errorf("adding tags: %w", err)
	}
	return updated, nil
}

// AddNote appends a timestamped note. Category, when given, is uppercased
// into a bracketed prefix after the timestamp.
func (s *Service) AddNote(ctx context.Context, id, text, category string) (*Workstream, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	updated.Notes = append(updated.Notes, formatNote(text, category))
	updated.UpdatedAt = time.Now()

	if err := s.repo.Put(ctx, updated); err != nil {
		return nil, fmt.Errorf("adding note: %w", err)
	}
	return updated, nil
}

// Notes returns all notes for a workstream.
func (s *Service) Notes(ctx context.Context, id string) ([]string, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), current.Notes...), nil
}

// EditNote replaces the note at index with freshly timestamped content.
func (s *Service) EditNote(ctx context.Context, id string, index int, text, category string) (*Workstream, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(current.Notes) {
		return nil, ErrNoteOutOfRange
	}

	updated := current.Clone()
	updated.Notes[index] = formatNote(text, category)
	updated.UpdatedAt = time.Now()

	if err := s.repo.Put(ctx, updated); err != nil {
		return nil, fmt.Errorf("editing note: %w", err)
	}
	return updated, nil
}

// DeleteNote removes the note at index.
func (s *Service) DeleteNote(ctx context.Context, id string, index int) (*Workstream, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(current.Notes) {
		return nil, ErrNoteOutOfRange
	}

	updated := current.Clone()
	updated.Notes = append(updated.Notes[:index], updated.Notes[index+1:]...)
	updated.UpdatedAt = time.Now()

	if err := s.repo.Put(ctx, updated); err != nil {
		return nil, fmt.Errorf("deleting note: %w", err)
	}
	return updated, nil
}

// SetParent assigns or clears (empty parentID) the parent of a workstream,
// rejecting unknown parents and cycles.
func (s *Service) SetParent(ctx context.Context, id, parentID string) (*Workstream, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	if parentID == "" {
		updated.ParentID = nil
	} else {
		if err := s.checkParent(ctx, id, parentID); err != nil {
			return nil, err
		}
		pid := parentID
		updated.ParentID = &pid
	}
	updated.UpdatedAt = time.Now()

	if err := s.repo.Put(ctx, updated); err != nil {
		return nil, fmt.Errorf("setting parent: %w", err)
	}
	return updated, nil
}

func (s *Service) load(ctx context.Context, id string) (*Workstream, error) {
	ws, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading workstream: %w", err)
	}
	return ws, nil
}

func (s *Service) freshID(ctx context.Context) (string, error) {
	for {
		id := newID()
		_, err := s.repo.Get(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking id: %w", err)
		}
	}
}

// checkParent verifies the parent exists and that assigning it would not
// create a cycle, walking the ancestor chain up from parentID.
func (s *Service) checkParent(ctx context.Context, id, parentID string) error {
	if parentID == id {
		return ErrParentCycle
	}
	current := parentID
	visited := map[string]struct{}{}
	for {
		if _, ok := visited[current]; ok {
			return nil
		}
		visited[current] = struct{}{}
		ws, err := s.repo.Get(ctx, current)
		if errors.Is(err, repository.ErrNotFound) {
			if current == parentID {
				return ErrParentNotFound
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading parent chain: %w", err)
		}
		if ws.ID == id {
			return ErrParentCycle
		}
		if ws.ParentID == nil || *ws.ParentID == "" {
			return nil
		}
		current = *ws.ParentID
	}
}

func formatNote(text, category string) string {
	stamp := time.Now().Format("2006-01-02 15:04")
	if category != "" {
		return fmt.Sprintf("[%s] [%s] %s", stamp, strings.ToUpper(category), text)
	}
	return fmt.Sprintf("[%s] %s", stamp, text)
}
