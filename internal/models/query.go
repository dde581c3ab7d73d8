package models

import (
	"github.com/cockroachdb/errors"
)

// DefaultLimit is the number of results returned when the query does not set one.
const DefaultLimit = 20

// MaxLimit caps the number of results a single query may request.
const MaxLimit = 100

// ValidationError reports a rejected query field.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

// NewValidationError creates a validation error for the given field.
func NewValidationError(field, reason string) error {
	return errors.WithStack(&ValidationError{Field: field, Reason: reason})
}

// IsValidationError reports whether err is a query validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SearchQuery represents a search request with language and optional filters.
type SearchQuery struct {
	Text       string   `json:"text"`
	Language   string   `json:"language"`
	Kinds      []Kind   `json:"kinds,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Limit      int      `json:"limit,omitempty"`
	Offset     int      `json:"offset,omitempty"`
}

// Validate rejects an unsupported language and clamps limit and offset.
// supported is the declared supported-language list; an empty Language
// defaults to the first entry. Limit is clamped to [1, MaxLimit] with
// DefaultLimit when unset; offset is clamped to >= 0.
func (q *SearchQuery) Validate(supported []string) error {
	if len(supported) == 0 {
		return errors.New("no supported languages configured")
	}
	if q.Language == "" {
		q.Language = supported[0]
	}
	if !containsString(supported, q.Language) {
		return NewValidationError("language", "unsupported language code "+q.Language)
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
