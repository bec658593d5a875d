package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrNotADirectory = errors.New("not a directory")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LookupError reports a reference that does not exist in a source
type LookupError struct {
	Source string
	Ref    string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s has no entry %q", e.Source, e.Ref)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrNotFound
}
