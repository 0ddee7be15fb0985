package workstream

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpals/localmem/internal/repository"
)

// List returns all workstreams in insertion order.
func (s *Service) List(ctx context.Context) ([]*Workstream, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing workstreams: %w", err)
	}
	return all, nil
}

// Get returns the workstream and whether it exists. Absence is a normal
// outcome, not an error.
func (s *Service) Get(ctx context.Context, id string) (*Workstream, bool, error) {
	ws, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("getting workstream: %w", err)
	}
	return ws, true, nil
}

// SearchByTags returns workstreams matching the query tags. With matchAll the
// workstream's tag set must be a superset of the query; otherwise a non-empty
// intersection suffices, so an empty query matches nothing.
func (s *Service) SearchByTags(ctx context.Context, tags []string, matchAll bool) ([]*Workstream, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching by tags: %w", err)
	}

	out := make([]*Workstream, 0, len(all))
	for _, ws := range all {
		if matchesTags(ws.Tags, tags, matchAll) {
			out = append(out, ws)
		}
	}
	return out, nil
}

// Search returns workstreams whose name or summary contains the query,
// case-insensitively. An empty query matches every workstream.
func (s *Service) Search(ctx context.Context, query string) ([]*Workstream, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching workstreams: %w", err)
	}

	needle := strings.ToLower(query)
	out := make([]*Workstream, 0, len(all))
	for _, ws := range all {
		if strings.Contains(strings.ToLower(ws.Name), needle) ||
			strings.Contains(strings.ToLower(ws.Summary), needle) {
			out = append(out, ws)
		}
	}
	return out, nil
}

// Children returns the direct children of a workstream in insertion order.
func (s *Service) Children(ctx context.Context, parentID string) ([]*Workstream, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing children: %w", err)
	}

	out := make([]*Workstream, 0)
	for _, ws := range all {
		if ws.ParentID != nil && *ws.ParentID == parentID {
			out = append(out, ws)
		}
	}
	return out, nil
}

// Tree returns all workstreams grouped into roots and a parent→children map.
func (s *Service) Tree(ctx context.Context) (*Tree, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}

	tree := &Tree{
		Roots:    make([]*Workstream, 0),
		Children: make(map[string][]*Workstream),
	}
	for _, ws := range all {
		if ws.ParentID != nil && *ws.ParentID != "" {
			tree.Children[*ws.ParentID] = append(tree.Children[*ws.ParentID], ws)
		} else {
			tree.Roots = append(tree.Roots, ws)
		}
	}
	return tree, nil
}

// SuggestRelationships analyzes the whole store and returns heuristic
// relationship suggestions sorted by confidence.
func (s *Service) SuggestRelationships(ctx context.Context) ([]Suggestion, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggesting relationships: %w", err)
	}
	return suggestRelationships(all), nil
}

func matchesTags(have, want []string, matchAll bool) bool {
	set := make(map[string]struct{}, len(have))
	for _, tag := range have {
		set[tag] = struct{}{}
	}
	if matchAll {
		for _, tag := range want {
			if _, ok := set[tag]; !ok {
				return false
			}
		}
		return true
	}
	for _, tag := range want {
		if _, ok := set[tag]; ok {
			return true
		}
	}
	return false
}
