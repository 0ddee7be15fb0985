package template

import "context"

// Repository provides persistence for templates, with the same durability
// contract as the workstream repository.
type Repository interface {
	Get(ctx context.Context, id string) (*Template, error)
	Put(ctx context.Context, tmpl *Template) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*Template, error)
}
