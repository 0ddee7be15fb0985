// Package jsonstore persists domain collections as flat JSON files, one file
// per collection per profile, rewritten wholesale on every mutation.
package jsonstore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jpals/localmem/internal/domain/workstream"
)

// WorkstreamRepository is the file-backed workstream.Repository.
type WorkstreamRepository struct {
	c *collection[workstream.Workstream]
}

// NewWorkstreamRepository loads (or initializes) workstreams.<profile>.json
// under dataDir, creating the directory if absent.
func NewWorkstreamRepository(dataDir, profile string) (*WorkstreamRepository, error) {
	path := filepath.Join(dataDir, fmt.Sprintf("workstreams.%s.json", profile))
	c, err := newCollection(path, func(ws *workstream.Workstream) string { return ws.ID })
	if err != nil {
		return nil, err
	}
	return &WorkstreamRepository{c: c}, nil
}

func (r *WorkstreamRepository) Get(ctx context.Context, id string) (*workstream.Workstream, error) {
	return r.c.Get(id)
}

func (r *WorkstreamRepository) Put(ctx context.Context, ws *workstream.Workstream) error {
	return r.c.Put(ws)
}

func (r *WorkstreamRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.Delete(id)
}

func (r *WorkstreamRepository) List(ctx context.Context) ([]*workstream.Workstream, error) {
	return r.c.List()
}

// Path returns the backing file path.
func (r *WorkstreamRepository) Path() string {
	return r.c.path
}
