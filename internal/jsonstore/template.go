package jsonstore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jpals/localmem/internal/domain/template"
)

// TemplateRepository is the file-backed template.Repository.
type TemplateRepository struct {
	c *collection[template.Template]
}

// NewTemplateRepository loads (or initializes) templates.<profile>.json
// under dataDir, creating the directory if absent.
func NewTemplateRepository(dataDir, profile string) (*TemplateRepository, error) {
	path := filepath.Join(dataDir, fmt.Sprintf("templates.%s.json", profile))
	c, err := newCollection(path, func(tmpl *template.Template) string { return tmpl.ID })
	if err != nil {
		return nil, err
	}
	return &TemplateRepository{c: c}, nil
}

func (r *TemplateRepository) Get(ctx context.Context, id string) (*template.Template, error) {
	return r.c.Get(id)
}

func (r *TemplateRepository) Put(ctx context.Context, tmpl *template.Template) error {
	return r.c.Put(tmpl)
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.Delete(id)
}

func (r *TemplateRepository) List(ctx context.Context) ([]*template.Template, error) {
	return r.c.List()
}

// Path returns the backing file path.
func (r *TemplateRepository) Path() string {
	return r.c.path
}
