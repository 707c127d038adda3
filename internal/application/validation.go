package application

import (
	"fmt"
	"strings"
	"unicode"
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
// for more readable error messages (e.g., "itemID" -> "item ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"id":         "ID",
		"itemID":     "item ID",
		"categoryID": "category ID",
		"text":       "text",
		"query":      "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateID checks that an identifier can be written to a board file:
// non-empty, no whitespace, not starting with the item marker.
func ValidateID(fieldName, id string) error {
	if err := ValidateRequired(fieldName, id); err != nil {
		return err
	}
	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not contain whitespace: %q", formatFieldName(fieldName), id),
		}
	}
	if strings.HasPrefix(id, ">") {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not start with '>': %q", formatFieldName(fieldName), id),
		}
	}
	return nil
}

// ValidateText checks that spoken text or a category name survives a save:
// non-blank and on a single line.
func ValidateText(fieldName, text string) error {
	if err := ValidateRequired(fieldName, text); err != nil {
		return err
	}
	if strings.ContainsAny(text, "\r\n") {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be a single line", formatFieldName(fieldName)),
		}
	}
	return nil
}
