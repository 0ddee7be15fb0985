package workstream_test

import (
	"context"
	"testing"

	"github.com/jpals/localmem/internal/domain/workstream"
	"github.com/jpals/localmem/internal/repository"
	"github.com/jpals/localmem/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func fixtureWorkstreams() []*workstream.Workstream {
	return []*workstream.Workstream{
		{ID: "ws-1", Name: "Billing migration", Summary: "Move invoicing off the legacy stack", Tags: []string{"billing", "infra"}},
		{ID: "ws-2", Name: "Search revamp", Summary: "Faster BILLING lookups", Tags: []string{"search"}},
		{ID: "ws-3", Name: "Oncall rotation", Summary: "Quarterly schedule", Tags: []string{"infra", "ops"}, ParentID: strPtr("ws-1")},
		{ID: "ws-4", Name: "Orphan cleanup", Summary: "Remove stale records", Tags: []string{}, ParentID: strPtr("ws-1")},
	}
}

func queryService(t *testing.T) *workstream.Service {
	t.Helper()
	repo := &mocks.WorkstreamRepository{}
	repo.On("List", context.Background()).Return(fixtureWorkstreams(), nil)
	return workstream.NewService(repo, nil)
}

func ids(list []*workstream.Workstream) []string {
	out := make([]string, 0, len(list))
	for _, ws := range list {
		out = append(out, ws.ID)
	}
	return out
}

func TestWorkstreamService_ListOrder(t *testing.T) {
	svc := queryService(t)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"ws-1", "ws-2", "ws-3", "ws-4"}, ids(list))
}

func TestWorkstreamService_Get(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.WorkstreamRepository{}
	repo.On("Get", ctx, "ws-1").Return(fixtureWorkstreams()[0], nil)
	repo.On("Get", ctx, "ws-gone").Return(nil, repository.ErrNotFound)

	svc := workstream.NewService(repo, nil)

	ws, ok, err := svc.Get(ctx, "ws-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Billing migration", ws.Name)

	// Absence is not an error.
	_, ok, err = svc.Get(ctx, "ws-gone")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWorkstreamService_SearchByTagsAny(t *testing.T) {
	svc := queryService(t)
	ctx := context.Background()

	list, err := svc.SearchByTags(ctx, []string{"infra"}, false)
	require.NoError(t, err)
	require.Equal(t, []string{"ws-1", "ws-3"}, ids(list))

	list, err = svc.SearchByTags(ctx, []string{"billing", "ops"}, false)
	require.NoError(t, err)
	require.Equal(t, []string{"ws-1", "ws-3"}, ids(list))

	// Empty query intersects with nothing.
	list, err = svc.SearchByTags(ctx, nil, false)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestWorkstreamService_SearchByTagsAll(t *testing.T) {
	svc := queryService(t)
	ctx := context.Background()

	list, err := svc.SearchByTags(ctx, []string{"billing", "infra"}, true)
	require.NoError(t, err)
	require.Equal(t, []string{"ws-1"}, ids(list))

	// Empty query is vacuously satisfied by every workstream.
	list, err = svc.SearchByTags(ctx, nil, true)
	require.NoError(t, err)
	require.Len(t, list, 4)
}

func TestWorkstreamService_Search(t *testing.T) {
	svc := queryService(t)
	ctx := context.Background()

	list, err := svc.Search(ctx, "billing")
	require.NoError(t, err)
	require.Equal(t, []string{"ws-1", "ws-2"}, ids(list))

	list, err = svc.Search(ctx, "QUARTERLY")
	require.NoError(t, err)
	require.Equal(t, []string{"ws-3"}, ids(list))

	list, err = svc.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 4)

	list, err = svc.Search(ctx, "no such thing anywhere")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestWorkstreamService_Children(t *testing.T) {
	svc := queryService(t)

	list, err := svc.Children(context.Background(), "ws-1")
	require.NoError(t, err)
	require.Equal(t, []string{"ws-3", "ws-4"}, ids(list))

	list, err = svc.Children(context.Background(), "ws-2")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestWorkstreamService_Tree(t *testing.T) {
	svc := queryService(t)

	tree, err := svc.Tree(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"ws-1", "ws-2"}, ids(tree.Roots))
	require.Equal(t, []string{"ws-3", "ws-4"}, ids(tree.Children["ws-1"]))
	require.NotContains(t, tree.Children, "ws-2")
}
