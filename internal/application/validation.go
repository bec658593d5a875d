package application

import (
	"fmt"
	"os"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "descriptorDir" -> "descriptor directory")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"descriptorDir": "descriptor directory",
		"localRoot":     "local root",
		"ref":           "reference",
		"syncCommand":   "sync command",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateDirectory checks that path names an existing directory.
// A missing path is reported as a ValidationError, a regular file as
// ErrNotADirectory.
func ValidateDirectory(fieldName, path string) error {
	if err := ValidateRequired(fieldName, path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s %s does not exist", formatFieldName(fieldName), path),
		}
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotADirectory)
	}
	return nil
}
