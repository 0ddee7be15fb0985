package template

import "errors"

var (
	// ErrNotFound indicates the template doesn't exist.
	ErrNotFound = errors.New("template not found")
	// ErrInvalidInput indicates a required field is missing.
	ErrInvalidInput = errors.New("invalid template input")
)
