package mcp_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jpals/localmem/internal/domain/template"
	"github.com/jpals/localmem/internal/domain/workstream"
	"github.com/jpals/localmem/internal/mcp"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"not found", workstream.ErrNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("loading workstream: %w", workstream.ErrNotFound), "NOT_FOUND"},
		{"invalid input", fmt.Errorf("%w: name is required", workstream.ErrInvalidInput), "INVALID_INPUT"},
		{"note out of range", workstream.ErrNoteOutOfRange, "NOTE_OUT_OF_RANGE"},
		{"parent cycle", workstream.ErrParentCycle, "PARENT_CYCLE"},
		{"parent not found", workstream.ErrParentNotFound, "PARENT_NOT_FOUND"},
		{"template not found", template.ErrNotFound, "TEMPLATE_NOT_FOUND"},
		{"template invalid input", template.ErrInvalidInput, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := mcp.MapError(tt.err)
			require.NotNil(t, apiErr)
			require.Equal(t, tt.code, apiErr.Code)
			require.Contains(t, apiErr.Error(), tt.code)
		})
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	require.Nil(t, mcp.MapError(nil))
	require.Nil(t, mcp.MapError(errors.New("disk on fire")))
}
