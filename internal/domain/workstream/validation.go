package workstream

import (
	"fmt"
	"strings"
)

// ValidateCreateInput validates fields required to create a workstream.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Summary) == "" {
		return fmt.Errorf("%w: summary is required", ErrInvalidInput)
	}
	return nil
}
