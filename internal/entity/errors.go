package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for the catalog and recommendation pipeline.
var (
	ErrCatalogUnavailable = errors.New("no languages available")
	ErrLanguageNotFound   = errors.New("language not found")
	ErrInvalidLanguage    = errors.New("invalid language descriptor")
	ErrInvalidQuery       = errors.New("invalid query")
)

// ValidationError reports required survey fields that were absent. It is
// caller-recoverable: re-prompt the user instead of invoking the scorer.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("survey incomplete: missing %s", strings.Join(e.MissingFields, ", "))
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
