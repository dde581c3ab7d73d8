// Package models defines core data structures for records, queries, and search results.
package models

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

// Kind is the closed set of searchable entity categories.
type Kind int

const (
	// KindCourse is a craft course or workshop listing.
	KindCourse Kind = iota
	// KindProduct is a physical product listing.
	KindProduct
	// KindPerson is an artisan or instructor profile.
	KindPerson
	// KindEvent is a scheduled event or exhibition.
	KindEvent
)

// kindNames maps each Kind to its wire name, in declaration order.
var kindNames = []string{"course", "product", "person", "event"}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns all defined kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindCourse, KindProduct, KindPerson, KindEvent}
}

// ParseKind parses a wire name into a Kind.
// Returns an error for names outside the closed set.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, errors.Newf("unknown kind: %q", s)
}

// MarshalJSON implements json.Marshaler.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// LocalizedText maps a language code to a display string for that language.
type LocalizedText map[string]string

// IsBlank reports whether the mapping has no non-empty value.
func (t LocalizedText) IsBlank() bool {
	for _, v := range t {
		if v != "" {
			return false
		}
	}
	return true
}

// Record represents a unit of searchable multilingual content.
type Record struct {
	ID          string        `json:"id"`
	Kind        Kind          `json:"kind"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description,omitempty"`
	Body        LocalizedText `json:"body,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Category    string        `json:"category,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// RecordInput is the input for creating or updating a record.
type RecordInput struct {
	ID          string        `json:"id,omitempty"`
	Kind        Kind          `json:"kind"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description,omitempty"`
	Body        LocalizedText `json:"body,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Category    string        `json:"category,omitempty"`
}
