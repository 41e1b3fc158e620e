package posts

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("post not found")
	ErrNotConfigured    = errors.New("record store not configured")
	ErrRecordIDRequired = errors.New("record id is required")
)

// ValidationError reports the first invalid field of an Input.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "datetime":
		return fmt.Sprintf("%s must use the YYYY-MM-DD format", e.Field)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}
