// Package cli provides CLI output utilities for Sousuo.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/heritagecraft/sousuo/internal/models"
	"github.com/heritagecraft/sousuo/pkg/utils"
)

// SearchOutputFormat is the format for search result output.
type SearchOutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText SearchOutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON SearchOutputFormat = "json"
)

// WriteSearchResults writes search results to w in the given format.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format SearchOutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeSearchResultsText(w, response)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, response *models.SearchResponse) {
	fmt.Fprintf(w, "\nFound %d results in %dms\n\n", response.Total, response.QueryTime)

	for _, result := range response.Results {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "Rank: %d | Score: %.2f | Kind: %s\n",
			result.Rank, result.Score, result.Record.Kind)
		fmt.Fprintf(w, "ID: %s\n", result.Record.ID)
		if title, ok := result.Highlights[models.FieldTitle]; ok {
			fmt.Fprintf(w, "Title: %s\n", title)
		}
		if desc, ok := result.Highlights[models.FieldDescription]; ok {
			fmt.Fprintf(w, "\n%s\n", utils.Truncate(desc, 200))
		}
		fmt.Fprintln(w)
	}

	if len(response.Suggestions) > 0 {
		fmt.Fprintf(w, "Suggestions: %v\n", response.Suggestions)
	}
	if response.Facets != nil && len(response.Facets.Kinds) > 0 {
		fmt.Fprint(w, "Kinds:")
		for _, f := range response.Facets.Kinds {
			fmt.Fprintf(w, " %s(%d)", f.Name, f.Count)
		}
		fmt.Fprintln(w)
	}
}

// PrintSearchResults prints search results to stdout in text format.
func PrintSearchResults(response *models.SearchResponse) {
	_ = WriteSearchResults(os.Stdout, response, OutputText)
}
