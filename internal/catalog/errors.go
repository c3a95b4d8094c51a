package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBookNotFound is returned when no book has the requested ISBN.
	ErrBookNotFound = errors.New("book not found")
	// ErrReviewNotFound is returned when the user has no review on the book.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateISBN is returned when a seed lists the same ISBN twice.
	ErrDuplicateISBN = errors.New("duplicate isbn")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RequireField fails with a *ValidationError when value is blank.
func RequireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}
	return nil
}
