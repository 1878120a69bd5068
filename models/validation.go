package models

import "fmt"

// ValidationError reports a domain rule violation. It is returned before
// anything is persisted; a failed validation never reaches storage.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
