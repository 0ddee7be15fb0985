package mcp

import (
	"errors"
	"fmt"

	"github.com/jpals/localmem/internal/domain/template"
	"github.com/jpals/localmem/internal/domain/workstream"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, workstream.ErrNotFound):
		return &APIError{Code: "NOT_FOUND", Message: "workstream not found", RecoveryHint: "Check the ID with list_workstreams"}
	case errors.Is(err, workstream.ErrNoteOutOfRange):
		return &APIError{Code: "NOTE_OUT_OF_RANGE", Message: "note index out of range", RecoveryHint: "Call get_notes to see valid indexes"}
	case errors.Is(err, workstream.ErrParentCycle):
		return &APIError{Code: "PARENT_CYCLE", Message: "parent assignment would create a cycle", RecoveryHint: "Pick a parent outside the workstream's subtree"}
	case errors.Is(err, workstream.ErrParentNotFound):
		return &APIError{Code: "PARENT_NOT_FOUND", Message: "parent workstream not found", RecoveryHint: "Create the parent first or clear parent_id"}
	case errors.Is(err, workstream.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Fix the named field and retry"}
	case errors.Is(err, template.ErrNotFound):
		return &APIError{Code: "TEMPLATE_NOT_FOUND", Message: "template not found", RecoveryHint: "Check the ID with list_templates"}
	case errors.Is(err, template.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Fix the named field and retry"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
