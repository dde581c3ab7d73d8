package search

import (
	"regexp"
	"sort"
	"strings"
)

// Default match markers wrapped around term occurrences.
const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// Ellipsis prefixes a snippet that does not start at the first word.
const ellipsis = "..."

// snippetCharsPerWord approximates the average word width when converting a
// character budget into a word-window size.
const snippetCharsPerWord = 6

// Highlighter selects the most relevant snippet window from long fields and
// wraps query term occurrences in match markers.
type Highlighter struct{}

// NewHighlighter creates a Highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Highlight marks every case-insensitive occurrence of each term in text.
// When maxLen > 0 and the text exceeds it, the best snippet window is selected
// first. Highlighting is idempotent: text that already carries markers is not
// wrapped again.
func (h *Highlighter) Highlight(text string, terms []string, maxLen int) string {
	if text == "" {
		return text
	}

	snippet := text
	if maxLen > 0 && len(text) > maxLen {
		snippet = h.bestSnippet(text, terms, maxLen)
	}

	return h.wrapTerms(snippet, terms)
}

// bestSnippet slides a word window across the text and keeps the window with
// the highest count of term occurrences. The first best window wins ties, so
// snippet selection is deterministic.
func (h *Highlighter) bestSnippet(text string, terms []string, maxLen int) string {
	words := strings.Fields(text)
	window := maxLen / snippetCharsPerWord
	if window < 1 {
		window = 1
	}
	if window >= len(words) {
		return text
	}

	lowerTerms := normalizeTerms(terms)

	bestStart := 0
	bestCount := -1
	for start := 0; start+window <= len(words); start++ {
		segment := strings.ToLower(strings.Join(words[start:start+window], " "))
		count := 0
		for _, term := range lowerTerms {
			count += strings.Count(segment, term)
		}
		if count > bestCount {
			bestCount = count
			bestStart = start
		}
	}

	snippet := strings.Join(words[bestStart:bestStart+window], " ")
	if bestStart > 0 {
		snippet = ellipsis + snippet
	}
	return snippet
}

// wrapTerms wraps each term occurrence in match markers. Every term is escaped
// with regexp.QuoteMeta before the pattern is built, so query text containing
// regex metacharacters is matched literally. Regions already inside markers are
// matched by the marker alternative and left untouched, which keeps repeated
// highlighting from nesting markers.
func (h *Highlighter) wrapTerms(text string, terms []string) string {
	lowerTerms := normalizeTerms(terms)
	if len(lowerTerms) == 0 {
		return text
	}

	// Longer terms first so overlapping terms prefer the longest match.
	sort.SliceStable(lowerTerms, func(i, j int) bool {
		return len(lowerTerms[i]) > len(lowerTerms[j])
	})

	escaped := make([]string, 0, len(lowerTerms))
	for _, term := range lowerTerms {
		escaped = append(escaped, regexp.QuoteMeta(term))
	}

	pattern := "(?i)" + regexp.QuoteMeta(markOpen) + ".*?" + regexp.QuoteMeta(markClose) +
		"|" + strings.Join(escaped, "|")
	re, err := regexp.Compile(pattern)
	if err != nil {
		return text
	}

	return re.ReplaceAllStringFunc(text, func(match string) string {
		if strings.HasPrefix(strings.ToLower(match), markOpen) {
			return match
		}
		return markOpen + match + markClose
	})
}

// normalizeTerms lowercases terms and drops empty entries and duplicates.
func normalizeTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
