package search

import (
	"sort"

	"github.com/heritagecraft/sousuo/internal/models"
)

// maxTagFacets truncates the tags facet list; categories and kinds are not truncated.
const maxTagFacets = 20

// ComputeFacets aggregates category, tag, and kind counts over the full
// candidate set of a query, before any score-based filtering. Each facet list
// is sorted by count descending with name ascending on ties.
func ComputeFacets(candidates []*models.Record) *models.Facets {
	categories := make(map[string]int)
	tags := make(map[string]int)
	kinds := make(map[string]int)

	for _, record := range candidates {
		if record == nil {
			continue
		}
		if record.Category != "" {
			categories[record.Category]++
		}
		for _, tag := range record.Tags {
			if tag != "" {
				tags[tag]++
			}
		}
		kinds[record.Kind.String()]++
	}

	tagFacets := sortedFacets(tags)
	if len(tagFacets) > maxTagFacets {
		tagFacets = tagFacets[:maxTagFacets]
	}

	return &models.Facets{
		Categories: sortedFacets(categories),
		Tags:       tagFacets,
		Kinds:      sortedFacets(kinds),
	}
}

// sortedFacets converts a counter map into a deterministically ordered list.
func sortedFacets(counts map[string]int) []models.FacetCount {
	facets := make([]models.FacetCount, 0, len(counts))
	for name, count := range counts {
		facets = append(facets, models.FacetCount{Name: name, Count: count})
	}
	sort.Slice(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return facets[i].Name < facets[j].Name
	})
	return facets
}
