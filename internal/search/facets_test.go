package search

import (
	"fmt"
	"testing"

	"github.com/heritagecraft/sousuo/internal/models"
)

func TestComputeFacets(t *testing.T) {
	candidates := []*models.Record{
		{ID: "1", Kind: models.KindCourse, Category: "crafts", Tags: []string{"woodworking", "traditional"}},
		{ID: "2", Kind: models.KindCourse, Category: "crafts", Tags: []string{"ceramics"}},
		{ID: "3", Kind: models.KindProduct, Category: "homeware", Tags: []string{"ceramics", "handmade"}},
		{ID: "4", Kind: models.KindPerson, Tags: []string{"bamboo", "weaving"}},
	}

	facets := ComputeFacets(candidates)

	// Kind counts sum to the number of candidates considered.
	sum := 0
	for _, f := range facets.Kinds {
		sum += f.Count
	}
	if sum != len(candidates) {
		t.Errorf("kind counts sum = %d, want %d", sum, len(candidates))
	}

	if facets.Kinds[0].Name != "course" || facets.Kinds[0].Count != 2 {
		t.Errorf("top kind = %+v, want course/2", facets.Kinds[0])
	}

	if len(facets.Categories) != 2 {
		t.Fatalf("categories = %v, want 2 entries", facets.Categories)
	}
	if facets.Categories[0].Name != "crafts" || facets.Categories[0].Count != 2 {
		t.Errorf("top category = %+v, want crafts/2", facets.Categories[0])
	}

	if facets.Tags[0].Name != "ceramics" || facets.Tags[0].Count != 2 {
		t.Errorf("top tag = %+v, want ceramics/2", facets.Tags[0])
	}
}

func TestComputeFacets_TieBreakByName(t *testing.T) {
	candidates := []*models.Record{
		{ID: "1", Kind: models.KindEvent, Tags: []string{"zither"}},
		{ID: "2", Kind: models.KindCourse, Tags: []string{"abacus"}},
	}

	facets := ComputeFacets(candidates)
	if facets.Tags[0].Name != "abacus" || facets.Tags[1].Name != "zither" {
		t.Errorf("equal counts should order by name: %v", facets.Tags)
	}
	if facets.Kinds[0].Name != "course" || facets.Kinds[1].Name != "event" {
		t.Errorf("equal counts should order by name: %v", facets.Kinds)
	}
}

func TestComputeFacets_TagsTruncatedToTop20(t *testing.T) {
	var candidates []*models.Record
	for i := 0; i < 30; i++ {
		candidates = append(candidates, &models.Record{
			ID:   fmt.Sprintf("r%d", i),
			Kind: models.KindProduct,
			Tags: []string{fmt.Sprintf("tag-%02d", i)},
		})
	}

	facets := ComputeFacets(candidates)
	if len(facets.Tags) != maxTagFacets {
		t.Errorf("tags facet length = %d, want %d", len(facets.Tags), maxTagFacets)
	}
}

func TestComputeFacets_Empty(t *testing.T) {
	facets := ComputeFacets(nil)
	if len(facets.Categories) != 0 || len(facets.Tags) != 0 || len(facets.Kinds) != 0 {
		t.Errorf("empty candidate set should produce empty facets: %+v", facets)
	}
}
