// Package source provides the content source contract and a reference
// in-memory implementation. The search engine treats the source as a
// read-only collaborator returning a finite, materialized candidate list.
package source

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/heritagecraft/sousuo/internal/models"
)

// ErrNotFound is returned when a record ID is unknown to the source.
var ErrNotFound = errors.New("record not found")

// Filter restricts the candidate set by query-independent attributes.
// Empty slices leave the corresponding attribute unrestricted. A record
// matches the tag filter when it carries at least one of the listed tags.
type Filter struct {
	Kinds      []models.Kind
	Categories []string
	Tags       []string
}

// Matches reports whether the record passes every restriction of the filter.
func (f Filter) Matches(record *models.Record) bool {
	if record == nil {
		return false
	}
	if len(f.Kinds) > 0 && !containsKind(f.Kinds, record.Kind) {
		return false
	}
	if len(f.Categories) > 0 && !containsString(f.Categories, record.Category) {
		return false
	}
	if len(f.Tags) > 0 && !anyTagMatch(f.Tags, record.Tags) {
		return false
	}
	return true
}

// Source supplies candidate records for one search call.
type Source interface {
	// Candidates returns the current records matching the filter. The
	// returned slice is a snapshot owned by the caller.
	Candidates(ctx context.Context, filter Filter) ([]*models.Record, error)
}

func containsKind(kinds []models.Kind, k models.Kind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func anyTagMatch(wanted, tags []string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if w == t {
				return true
			}
		}
	}
	return false
}
