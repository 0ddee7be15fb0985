package workstream

import "errors"

var (
	// ErrNotFound indicates the workstream doesn't exist.
	ErrNotFound = errors.New("workstream not found")
	// ErrInvalidInput indicates a required field is missing.
	ErrInvalidInput = errors.New("invalid workstream input")
	// ErrNoteOutOfRange indicates a note index beyond the note list.
	ErrNoteOutOfRange = errors.New("note index out of range")
	// ErrParentNotFound indicates the named parent workstream doesn't exist.
	ErrParentNotFound = errors.New("parent workstream not found")
	// ErrParentCycle indicates the requested parent would create a cycle.
	ErrParentCycle = errors.New("parent assignment would create a cycle")
)
