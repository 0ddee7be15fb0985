package template

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jpals/localmem/internal/domain/workstream"
	"github.com/jpals/localmem/internal/repository"
)

// Service manages workstream templates and their instantiation.
type Service struct {
	repo        Repository
	workstreams *workstream.Service
	logger      *slog.Logger
}

// NewService creates a new template service.
func NewService(repo Repository, workstreams *workstream.Service, logger *slog.Logger) *Service {
	return &Service{repo: repo, workstreams: workstreams, logger: logger}
}

// CreateRequest describes a template creation request.
type CreateRequest struct {
	Name            string
	Description     string
	DefaultTags     []string
	DefaultMetadata map[string]any
	NoteTemplates   []string
}

// InstantiateRequest describes creating a workstream from a template.
type InstantiateRequest struct {
	TemplateID        string
	Name              string
	Summary           string
	AdditionalTags    []string
	MetadataOverrides map[string]any
	ParentID          *string
}

// Create validates and persists a new template.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Template, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	now := time.Now()
	tmpl := &Template{
		ID:              newID(),
		Name:            req.Name,
		Description:     req.Description,
		DefaultTags:     append([]string{}, req.DefaultTags...),
		DefaultMetadata: cloneMetadata(req.DefaultMetadata),
		NoteTemplates:   append([]string{}, req.NoteTemplates...),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Put(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}
	if s.logger != nil {
		s.logger.Debug("template created", "id", tmpl.ID, "name", tmpl.Name)
	}
	return tmpl, nil
}

// Get returns the template and whether it exists.
func (s *Service) Get(ctx context.Context, id string) (*Template, bool, error) {
	tmpl, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("getting template: %w", err)
	}
	return tmpl, true, nil
}

// List returns all templates in insertion order.
func (s *Service) List(ctx context.Context) ([]*Template, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return all, nil
}

// Delete removes a template and reports whether one was present.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("deleting template: %w", err)
	}
	return removed, nil
}

// Instantiate creates a workstream from a template: default tags plus
// additional tags, default metadata with caller overrides winning, and note
// templates seeded as the initial notes.
func (s *Service) Instantiate(ctx context.Context, req InstantiateRequest) (*workstream.Workstream, error) {
	tmpl, err := s.repo.Get(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading template: %w", err)
	}

	metadata := cloneMetadata(tmpl.DefaultMetadata)
	for k, v := range req.MetadataOverrides {
		metadata[k] = v
	}

	ws, err := s.workstreams.Create(ctx, workstream.CreateRequest{
		Name:     req.Name,
		Summary:  req.Summary,
		Tags:     append(append([]string{}, tmpl.DefaultTags...), req.AdditionalTags...),
		Metadata: metadata,
		ParentID: req.ParentID,
	})
	if err != nil {
		return nil, err
	}

	for _, note := range tmpl.NoteTemplates {
		if ws, err = s.workstreams.AddNote(ctx, ws.ID, note, ""); err != nil {
			return nil, fmt.Errorf("seeding template notes: %w", err)
		}
	}
	return ws, nil
}

func newID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("tmpl-%d-%s", time.Now().UnixMilli(), suffix)
}

func cloneMetadata(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
