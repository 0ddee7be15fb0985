package functional_test

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/jpals/localmem/internal/testserver"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// callTool invokes a tool and decodes the JSON payload from its text content.
func callTool(t *testing.T, ts *testserver.TestServer, name string, args map[string]any, out any) {
	t.Helper()

	result := ts.CallTool(t, name, args)
	text := testserver.TextContent(t, result)
	require.False(t, result.IsError, "tool error: %s", text)
	// json.Unmarshal merges into pre-populated maps, so reset the
	// destination to keep reused output variables from retaining stale keys.
	rv := reflect.ValueOf(out).Elem()
	rv.Set(reflect.Zero(rv.Type()))
	require.NoError(t, json.Unmarshal([]byte(text), out))
}

// callToolExpectError invokes a tool expecting a tool-level error and returns
// the error text.
func callToolExpectError(t *testing.T, ts *testserver.TestServer, name string, args map[string]any) string {
	t.Helper()

	result := ts.CallTool(t, name, args)
	require.True(t, result.IsError, "expected tool error from %s", name)
	return testserver.TextContent(t, result)
}

func createWorkstream(t *testing.T, ts *testserver.TestServer, args map[string]any) map[string]any {
	t.Helper()
	var ws map[string]any
	callTool(t, ts, "create_workstream", args, &ws)
	require.NotEmpty(t, ws["id"])
	return ws
}

func TestFunctional_ToolCatalog(t *testing.T) {
	ts := testserver.New(t)

	tools, err := ts.Session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"create_workstream", "list_workstreams", "get_workstream",
		"update_workstream", "delete_workstream", "add_tags",
		"search_by_tags", "search_workstreams", "add_note", "get_notes",
		"edit_note", "delete_note", "set_parent", "get_children",
		"get_workstream_tree", "suggest_relationships", "create_template",
		"list_templates", "delete_template", "create_workstream_from_template",
	} {
		require.True(t, names[want], "missing tool %s", want)
	}
}

func TestFunctional_WorkstreamLifecycle(t *testing.T) {
	ts := testserver.New(t)

	ws := createWorkstream(t, ts, map[string]any{
		"name":     "Billing migration",
		"summary":  "Move invoicing off the legacy stack",
		"tags":     []string{"billing", "infra"},
		"metadata": map[string]any{"owner": "sam"},
	})
	id := ws["id"].(string)
	require.Equal(t, ws["createdAt"], ws["updatedAt"])

	var got map[string]any
	callTool(t, ts, "get_workstream", map[string]any{"id": id}, &got)
	require.Equal(t, "Billing migration", got["name"])

	var updated map[string]any
	callTool(t, ts, "update_workstream", map[string]any{
		"id":       id,
		"summary":  "Move invoicing to the new pipeline",
		"tags":     []string{"billing"},
		"metadata": map[string]any{"owner": "alex", "phase": "2"},
	}, &updated)
	require.Equal(t, "Move invoicing to the new pipeline", updated["summary"])
	require.Equal(t, []any{"billing"}, updated["tags"])
	require.Equal(t, map[string]any{"owner": "alex", "phase": "2"}, updated["metadata"])
	require.Equal(t, "Billing migration", updated["name"])

	var deleted map[string]any
	callTool(t, ts, "delete_workstream", map[string]any{"id": id}, &deleted)
	require.Equal(t, true, deleted["deleted"])

	// Second delete is a reported no-op, not an error.
	callTool(t, ts, "delete_workstream", map[string]any{"id": id}, &deleted)
	require.Equal(t, false, deleted["deleted"])

	// Reads of a deleted workstream degrade to a friendly message.
	result := ts.CallTool(t, "get_workstream", map[string]any{"id": id})
	require.False(t, result.IsError)
	require.Contains(t, testserver.TextContent(t, result), "No workstream found")
}

func TestFunctional_ValidationAndNotFoundErrors(t *testing.T) {
	ts := testserver.New(t)

	text := callToolExpectError(t, ts, "create_workstream", map[string]any{
		"name":    "",
		"summary": "something",
	})
	require.Contains(t, text, "INVALID_INPUT")

	text = callToolExpectError(t, ts, "update_workstream", map[string]any{
		"id":   "ws-does-not-exist",
		"name": "x",
	})
	require.Contains(t, text, "NOT_FOUND")
}

func TestFunctional_TagWorkflows(t *testing.T) {
	ts := testserver.New(t)

	a := createWorkstream(t, ts, map[string]any{"name": "A", "summary": "first", "tags": []string{"infra", "billing"}})
	b := createWorkstream(t, ts, map[string]any{"name": "B", "summary": "second", "tags": []string{"infra"}})
	createWorkstream(t, ts, map[string]any{"name": "C", "summary": "third"})

	var tagged map[string]any
	callTool(t, ts, "add_tags", map[string]any{
		"id":   b["id"],
		"tags": []string{"billing", "infra", "q3"},
	}, &tagged)
	require.Equal(t, []any{"infra", "billing", "q3"}, tagged["tags"])

	var anyMatch []map[string]any
	callTool(t, ts, "search_by_tags", map[string]any{"tags": []string{"billing"}}, &anyMatch)
	require.Len(t, anyMatch, 2)

	var allMatch []map[string]any
	callTool(t, ts, "search_by_tags", map[string]any{
		"tags":      []string{"billing", "q3"},
		"match_all": true,
	}, &allMatch)
	require.Len(t, allMatch, 1)
	require.Equal(t, b["id"], allMatch[0]["id"])

	var text []map[string]any
	callTool(t, ts, "search_workstreams", map[string]any{"query": "FIRST"}, &text)
	require.Len(t, text, 1)
	require.Equal(t, a["id"], text[0]["id"])
}

func TestFunctional_NotesLifecycle(t *testing.T) {
	ts := testserver.New(t)

	ws := createWorkstream(t, ts, map[string]any{"name": "Noted", "summary": "has notes"})
	id := ws["id"].(string)

	var after map[string]any
	callTool(t, ts, "add_note", map[string]any{"id": id, "note": "kicked off", "category": "status"}, &after)
	callTool(t, ts, "add_note", map[string]any{"id": id, "note": "hit a snag"}, &after)

	var notes map[string]any
	callTool(t, ts, "get_notes", map[string]any{"id": id}, &notes)
	list := notes["notes"].([]any)
	require.Len(t, list, 2)
	require.Contains(t, list[0], "[STATUS] kicked off")
	require.Contains(t, list[1], "hit a snag")

	callTool(t, ts, "edit_note", map[string]any{"id": id, "note_index": 1, "content": "snag resolved"}, &after)
	callTool(t, ts, "get_notes", map[string]any{"id": id}, &notes)
	require.Contains(t, notes["notes"].([]any)[1], "snag resolved")

	callTool(t, ts, "delete_note", map[string]any{"id": id, "note_index": 0}, &after)
	callTool(t, ts, "get_notes", map[string]any{"id": id}, &notes)
	require.Len(t, notes["notes"].([]any), 1)

	text := callToolExpectError(t, ts, "edit_note", map[string]any{"id": id, "note_index": 5, "content": "x"})
	require.Contains(t, text, "NOTE_OUT_OF_RANGE")
}

func TestFunctional_Hierarchy(t *testing.T) {
	ts := testserver.New(t)

	program := createWorkstream(t, ts, map[string]any{"name": "Program", "summary": "umbrella"})
	child := createWorkstream(t, ts, map[string]any{"name": "Child", "summary": "piece of it"})

	var linked map[string]any
	callTool(t, ts, "set_parent", map[string]any{"id": child["id"], "parent_id": program["id"]}, &linked)
	require.Equal(t, program["id"], linked["parentId"])

	var children []map[string]any
	callTool(t, ts, "get_children", map[string]any{"id": program["id"]}, &children)
	require.Len(t, children, 1)
	require.Equal(t, child["id"], children[0]["id"])

	var tree map[string]any
	callTool(t, ts, "get_workstream_tree", map[string]any{}, &tree)
	roots := tree["roots"].([]any)
	require.Len(t, roots, 1)
	require.Equal(t, program["id"], roots[0].(map[string]any)["id"])

	text := callToolExpectError(t, ts, "set_parent", map[string]any{
		"id":        program["id"],
		"parent_id": child["id"],
	})
	require.Contains(t, text, "PARENT_CYCLE")

	text = callToolExpectError(t, ts, "set_parent", map[string]any{
		"id":        child["id"],
		"parent_id": "ws-missing",
	})
	require.Contains(t, text, "PARENT_NOT_FOUND")

	// Clearing the parent makes the child a root again.
	callTool(t, ts, "set_parent", map[string]any{"id": child["id"], "parent_id": ""}, &linked)
	require.Nil(t, linked["parentId"])
}

func TestFunctional_SuggestRelationships(t *testing.T) {
	ts := testserver.New(t)

	program := createWorkstream(t, ts, map[string]any{
		"name": "Jupiter", "summary": "umbrella effort", "tags": []string{"program"},
	})
	createWorkstream(t, ts, map[string]any{
		"name": "Jupiter - Networking", "summary": "edge work",
	})

	var suggestions []map[string]any
	callTool(t, ts, "suggest_relationships", map[string]any{}, &suggestions)
	require.NotEmpty(t, suggestions)
	require.Equal(t, program["id"], suggestions[0]["targetId"])
	require.Equal(t, "parent", suggestions[0]["relationship"])
}

func TestFunctional_Templates(t *testing.T) {
	ts := testserver.New(t)

	var tmpl map[string]any
	callTool(t, ts, "create_template", map[string]any{
		"name":             "incident",
		"description":      "Incident response workstream",
		"default_tags":     []string{"incident", "ops"},
		"default_metadata": map[string]any{"severity": "unknown"},
		"note_templates":   []string{"Declare severity"},
	}, &tmpl)
	tmplID := tmpl["id"].(string)

	var templates []map[string]any
	callTool(t, ts, "list_templates", map[string]any{}, &templates)
	require.Len(t, templates, 1)

	var ws map[string]any
	callTool(t, ts, "create_workstream_from_template", map[string]any{
		"template_id":        tmplID,
		"name":               "API outage",
		"summary":            "Elevated 5xx on the public API",
		"additional_tags":    []string{"api"},
		"metadata_overrides": map[string]any{"severity": "sev2"},
	}, &ws)
	require.Equal(t, []any{"incident", "ops", "api"}, ws["tags"])
	require.Equal(t, "sev2", ws["metadata"].(map[string]any)["severity"])
	require.Len(t, ws["notes"].([]any), 1)

	text := callToolExpectError(t, ts, "create_workstream_from_template", map[string]any{
		"template_id": "tmpl-missing",
		"name":        "n",
		"summary":     "s",
	})
	require.Contains(t, text, "TEMPLATE_NOT_FOUND")

	var deleted map[string]any
	callTool(t, ts, "delete_template", map[string]any{"template_id": tmplID}, &deleted)
	require.Equal(t, true, deleted["deleted"])
}

func TestFunctional_Resources(t *testing.T) {
	ts := testserver.New(t)
	ctx := context.Background()

	ws := createWorkstream(t, ts, map[string]any{"name": "Exposed", "summary": "readable over resources"})
	id := ws["id"].(string)

	read, err := ts.Session.ReadResource(ctx, &sdkmcp.ReadResourceParams{
		URI: "workstream://" + id,
	})
	require.NoError(t, err)
	require.Len(t, read.Contents, 1)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(read.Contents[0].Text), &got))
	require.Equal(t, "Exposed", got["name"])

	_, err = ts.Session.ReadResource(ctx, &sdkmcp.ReadResourceParams{
		URI: "workstream://ws-missing",
	})
	require.Error(t, err)

	docs, err := ts.Session.ReadResource(ctx, &sdkmcp.ReadResourceParams{
		URI: "localmem://docs/index",
	})
	require.NoError(t, err)
	require.Contains(t, docs.Contents[0].Text, "workstream")
}

func TestFunctional_ListOrderSurvivesMutations(t *testing.T) {
	ts := testserver.New(t)

	first := createWorkstream(t, ts, map[string]any{"name": "first", "summary": "s"})
	second := createWorkstream(t, ts, map[string]any{"name": "second", "summary": "s"})
	third := createWorkstream(t, ts, map[string]any{"name": "third", "summary": "s"})

	var updated map[string]any
	callTool(t, ts, "update_workstream", map[string]any{"id": first["id"], "summary": "rewritten"}, &updated)

	var deleted map[string]any
	callTool(t, ts, "delete_workstream", map[string]any{"id": second["id"]}, &deleted)

	var list []map[string]any
	callTool(t, ts, "list_workstreams", map[string]any{}, &list)
	require.Len(t, list, 2)
	require.Equal(t, first["id"], list[0]["id"])
	require.Equal(t, third["id"], list[1]["id"])
}
