package workstream_test

import (
	"context"
	"testing"

	"github.com/jpals/localmem/internal/domain/workstream"
	"github.com/jpals/localmem/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func suggestFor(t *testing.T, all []*workstream.Workstream) []workstream.Suggestion {
	t.Helper()
	repo := &mocks.WorkstreamRepository{}
	repo.On("List", context.Background()).Return(all, nil)
	svc := workstream.NewService(repo, nil)
	suggestions, err := svc.SuggestRelationships(context.Background())
	require.NoError(t, err)
	return suggestions
}

func findSuggestion(suggestions []workstream.Suggestion, sourceID, targetID string) *workstream.Suggestion {
	for i := range suggestions {
		if suggestions[i].SourceID == sourceID && suggestions[i].TargetID == targetID {
			return &suggestions[i]
		}
	}
	return nil
}

func TestSuggestRelationships_ProgramNameTag(t *testing.T) {
	suggestions := suggestFor(t, []*workstream.Workstream{
		{ID: "ws-prog", Name: "Jupiter", Summary: "Umbrella effort", Tags: []string{"program"}},
		{ID: "ws-net", Name: "Networking rollout", Summary: "Edge work", Tags: []string{"jupiter"}},
	})

	s := findSuggestion(suggestions, "ws-net", "ws-prog")
	require.NotNil(t, s)
	require.Equal(t, "parent", s.Relationship)
	require.InDelta(t, 0.85, s.Confidence, 0.001)
}

func TestSuggestRelationships_NameContainment(t *testing.T) {
	suggestions := suggestFor(t, []*workstream.Workstream{
		{ID: "ws-prog", Name: "Jupiter", Summary: "Umbrella effort", Tags: []string{"initiative"}},
		{ID: "ws-net", Name: "Jupiter - Networking", Summary: "Edge work", Tags: nil},
	})

	s := findSuggestion(suggestions, "ws-net", "ws-prog")
	require.NotNil(t, s)
	require.Equal(t, "parent", s.Relationship)
	require.InDelta(t, 0.75, s.Confidence, 0.001)
}

func TestSuggestRelationships_NoteCrossReference(t *testing.T) {
	suggestions := suggestFor(t, []*workstream.Workstream{
		{ID: "ws-a", Name: "Alpha", Summary: "First", Notes: []string{"[2026-01-01 10:00] depends on ws-b for rollout"}},
		{ID: "ws-b", Name: "Bravo", Summary: "Second"},
	})

	s := findSuggestion(suggestions, "ws-a", "ws-b")
	require.NotNil(t, s)
	require.Equal(t, "related", s.Relationship)
	require.InDelta(t, 0.9, s.Confidence, 0.001)
}

func TestSuggestRelationships_TagOverlap(t *testing.T) {
	suggestions := suggestFor(t, []*workstream.Workstream{
		{ID: "ws-a", Name: "Alpha", Summary: "First", Tags: []string{"infra", "billing", "q3"}},
		{ID: "ws-b", Name: "Bravo", Summary: "Second", Tags: []string{"billing", "infra"}},
	})

	s := findSuggestion(suggestions, "ws-a", "ws-b")
	require.NotNil(t, s)
	require.Equal(t, "related", s.Relationship)
	require.InDelta(t, 0.6, s.Confidence, 0.001)
	require.Contains(t, s.Reason, "billing, infra")
}

func TestSuggestRelationships_SingleSharedTagIsNotEnough(t *testing.T) {
	suggestions := suggestFor(t, []*workstream.Workstream{
		{ID: "ws-a", Name: "Alpha", Summary: "First", Tags: []string{"infra"}},
		{ID: "ws-b", Name: "Bravo", Summary: "Second", Tags: []string{"infra"}},
	})
	require.Empty(t, suggestions)
}

func TestSuggestRelationships_SummarySimilarity(t *testing.T) {
	suggestions := suggestFor(t, []*workstream.Workstream{
		{ID: "ws-a", Name: "Alpha", Summary: "Migrate payment ledger database to managed postgres cluster"},
		{ID: "ws-b", Name: "Bravo", Summary: "Backup strategy covering payment ledger database snapshots"},
	})

	s := findSuggestion(suggestions, "ws-a", "ws-b")
	require.NotNil(t, s)
	require.Equal(t, "similar", s.Relationship)
	require.GreaterOrEqual(t, s.Confidence, 0.3)
	require.LessOrEqual(t, s.Confidence, 0.6)
	require.Contains(t, s.Reason, "ledger")
}

func TestSuggestRelationships_SkipsExistingLinks(t *testing.T) {
	parentID := "ws-prog"
	suggestions := suggestFor(t, []*workstream.Workstream{
		{ID: "ws-prog", Name: "Jupiter", Summary: "Umbrella effort", Tags: []string{"program"}},
		{ID: "ws-net", Name: "Jupiter - Networking", Summary: "Edge work", ParentID: &parentID},
	})
	require.Empty(t, suggestions)
}

func TestSuggestRelationships_SortedByConfidence(t *testing.T) {
	suggestions := suggestFor(t, []*workstream.Workstream{
		{ID: "ws-prog", Name: "Jupiter", Summary: "Umbrella effort", Tags: []string{"program"}},
		{ID: "ws-net", Name: "Jupiter - Networking", Summary: "Edge work"},
		{ID: "ws-a", Name: "Alpha", Summary: "x", Notes: []string{"see ws-b"}},
		{ID: "ws-b", Name: "Bravo", Summary: "y"},
	})

	require.GreaterOrEqual(t, len(suggestions), 2)
	for i := 1; i < len(suggestions); i++ {
		require.GreaterOrEqual(t, suggestions[i-1].Confidence, suggestions[i].Confidence)
	}
}
