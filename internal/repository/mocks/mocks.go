// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/jpals/localmem/internal/domain/template"
	"github.com/jpals/localmem/internal/domain/workstream"
	"github.com/stretchr/testify/mock"
)

// WorkstreamRepository is a mock for workstream.Repository.
type WorkstreamRepository struct {
	mock.Mock
}

func (m *WorkstreamRepository) Get(ctx context.Context, id string) (*workstream.Workstream, error) {
	args := m.Called(ctx, id)
	if ws, ok := args.Get(0).(*workstream.Workstream); ok {
		return ws, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WorkstreamRepository) Put(ctx context.Context, ws *workstream.Workstream) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *WorkstreamRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *WorkstreamRepository) List(ctx context.Context) ([]*workstream.Workstream, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*workstream.Workstream); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TemplateRepository is a mock for template.Repository.
type TemplateRepository struct {
	mock.Mock
}

func (m *TemplateRepository) Get(ctx context.Context, id string) (*template.Template, error) {
	args := m.Called(ctx, id)
	if tmpl, ok := args.Get(0).(*template.Template); ok {
		return tmpl, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TemplateRepository) Put(ctx context.Context, tmpl *template.Template) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *TemplateRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *TemplateRepository) List(ctx context.Context) ([]*template.Template, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*template.Template); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
