package template_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jpals/localmem/internal/domain/template"
	"github.com/jpals/localmem/internal/domain/workstream"
	"github.com/jpals/localmem/internal/jsonstore"
	"github.com/jpals/localmem/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TemplateRepository{}
	svc := template.NewService(repo, nil, nil)

	_, err := svc.Create(ctx, template.CreateRequest{Name: "", Description: "d"})
	require.ErrorIs(t, err, template.ErrInvalidInput)

	_, err = svc.Create(ctx, template.CreateRequest{Name: "n", Description: "  "})
	require.ErrorIs(t, err, template.ErrInvalidInput)
}

func TestTemplateService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TemplateRepository{}
	repo.On("Put", ctx, mock.Anything).Return(nil)

	svc := template.NewService(repo, nil, nil)
	tmpl, err := svc.Create(ctx, template.CreateRequest{
		Name:        "incident",
		Description: "Incident response workstream",
		DefaultTags: []string{"incident", "ops"},
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(tmpl.ID, "tmpl-"))
	require.Equal(t, []string{"incident", "ops"}, tmpl.DefaultTags)
	require.True(t, tmpl.CreatedAt.Equal(tmpl.UpdatedAt))
}

func TestTemplateService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TemplateRepository{}
	repo.On("Delete", ctx, "tmpl-1").Return(true, nil)
	repo.On("Delete", ctx, "tmpl-gone").Return(false, nil)

	svc := template.NewService(repo, nil, nil)

	removed, err := svc.Delete(ctx, "tmpl-1")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = svc.Delete(ctx, "tmpl-gone")
	require.NoError(t, err)
	require.False(t, removed)
}

func TestTemplateService_InstantiateNotFound(t *testing.T) {
	ctx := context.Background()

	workstreamSvc, templateSvc := realServices(t)
	_ = workstreamSvc

	_, err := templateSvc.Instantiate(ctx, template.InstantiateRequest{
		TemplateID: "tmpl-missing",
		Name:       "n",
		Summary:    "s",
	})
	require.ErrorIs(t, err, template.ErrNotFound)
}

func TestTemplateService_Instantiate(t *testing.T) {
	ctx := context.Background()

	workstreamSvc, templateSvc := realServices(t)

	tmpl, err := templateSvc.Create(ctx, template.CreateRequest{
		Name:            "incident",
		Description:     "Incident response workstream",
		DefaultTags:     []string{"incident", "ops"},
		DefaultMetadata: map[string]any{"severity": "unknown", "oncall": "primary"},
		NoteTemplates:   []string{"Declare severity", "Open comms channel"},
	})
	require.NoError(t, err)

	ws, err := templateSvc.Instantiate(ctx, template.InstantiateRequest{
		TemplateID:        tmpl.ID,
		Name:              "API outage 2026-08",
		Summary:           "Elevated 5xx on the public API",
		AdditionalTags:    []string{"api", "incident"},
		MetadataOverrides: map[string]any{"severity": "sev2"},
	})
	require.NoError(t, err)

	// Defaults layered under caller input: tags deduped in first-seen order,
	// overrides win on metadata, note templates seeded in order.
	require.Equal(t, []string{"incident", "ops", "api"}, ws.Tags)
	require.Equal(t, "sev2", ws.Metadata["severity"])
	require.Equal(t, "primary", ws.Metadata["oncall"])
	require.Len(t, ws.Notes, 2)
	require.Contains(t, ws.Notes[0], "Declare severity")
	require.Contains(t, ws.Notes[1], "Open comms channel")

	// The instantiated workstream is a normal record afterwards.
	got, ok, err := workstreamSvc.Get(ctx, ws.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "API outage 2026-08", got.Name)
}

func realServices(t *testing.T) (*workstream.Service, *template.Service) {
	t.Helper()

	dataDir := t.TempDir()
	workstreamRepo, err := jsonstore.NewWorkstreamRepository(dataDir, "test")
	require.NoError(t, err)
	templateRepo, err := jsonstore.NewTemplateRepository(dataDir, "test")
	require.NoError(t, err)

	workstreamSvc := workstream.NewService(workstreamRepo, nil)
	templateSvc := template.NewService(templateRepo, workstreamSvc, nil)
	return workstreamSvc, templateSvc
}
