package search

import (
	"strings"
	"unicode/utf8"
)

// maxSuggestions caps the number of alternate terms returned per query.
const maxSuggestions = 5

// minSuggestQueryLen is the minimum raw query length (in runes) that yields suggestions.
const minSuggestQueryLen = 3

// Suggester proposes alternate query terms from a curated, injectable
// vocabulary. The vocabulary is a flat declaration-ordered list and may mix
// languages (bilingual entries), so the same suggester serves every supported
// query language.
type Suggester struct {
	vocabulary []string
}

// NewSuggester creates a Suggester over the given vocabulary.
func NewSuggester(vocabulary []string) *Suggester {
	return &Suggester{vocabulary: vocabulary}
}

// Suggest returns up to maxSuggestions vocabulary entries containing the query
// as a case-insensitive substring, in vocabulary-declaration order. The query
// itself is never suggested. Queries of fewer than three characters return nil.
func (s *Suggester) Suggest(query string) []string {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minSuggestQueryLen {
		return nil
	}

	queryLower := strings.ToLower(trimmed)
	var suggestions []string
	for _, entry := range s.vocabulary {
		if entry == trimmed {
			continue
		}
		if strings.Contains(strings.ToLower(entry), queryLower) {
			suggestions = append(suggestions, entry)
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}
	return suggestions
}
