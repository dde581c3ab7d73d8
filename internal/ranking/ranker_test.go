package ranking

import (
	"testing"
	"time"

	"github.com/heritagecraft/sousuo/internal/models"
)

func TestRanker_RankAppliesRecencyBoost(t *testing.T) {
	ranker := NewRanker(nil, testAccessor())
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	record := &models.Record{
		ID:        "r1",
		Kind:      models.KindCourse,
		Title:     models.LocalizedText{"en": "Woodworking"},
		UpdatedAt: now.Add(-48 * time.Hour),
	}

	score, matched := ranker.Rank([]string{"woodworking"}, "en", record, now)
	want := ranker.Config().TitleExactScore * ranker.Config().RecencyMultiplier
	if score != want {
		t.Errorf("Rank() = %v, want %v", score, want)
	}
	if len(matched) != 1 || matched[0] != models.FieldTitle {
		t.Errorf("matched = %v, want [title]", matched)
	}
}

func TestRanker_ZeroScoreHasNoMatchedFields(t *testing.T) {
	ranker := NewRanker(nil, testAccessor())

	record := &models.Record{
		ID:    "r1",
		Kind:  models.KindCourse,
		Title: models.LocalizedText{"en": "Calligraphy basics"},
	}

	score, matched := ranker.Rank([]string{"ceramics"}, "en", record, time.Now())
	if score != 0 {
		t.Errorf("Rank() = %v, want 0", score)
	}
	if matched != nil {
		t.Errorf("matched = %v, want nil", matched)
	}
}

func TestSortRanked_StableOnTies(t *testing.T) {
	a := &RankedRecord{Record: &models.Record{ID: "a"}, Score: 40}
	b := &RankedRecord{Record: &models.Record{ID: "b"}, Score: 40}
	c := &RankedRecord{Record: &models.Record{ID: "c"}, Score: 90}

	results := []*RankedRecord{a, b, c}
	SortRanked(results)

	ids := []string{results[0].Record.ID, results[1].Record.ID, results[2].Record.ID}
	if ids[0] != "c" || ids[1] != "a" || ids[2] != "b" {
		t.Errorf("sorted order = %v, want [c a b] (ties keep original order)", ids)
	}
}

func TestPaginate(t *testing.T) {
	results := []*RankedRecord{
		{Record: &models.Record{ID: "1"}},
		{Record: &models.Record{ID: "2"}},
		{Record: &models.Record{ID: "3"}},
	}

	tests := []struct {
		name    string
		offset  int
		limit   int
		wantIDs []string
	}{
		{name: "first page", offset: 0, limit: 2, wantIDs: []string{"1", "2"}},
		{name: "second page", offset: 2, limit: 2, wantIDs: []string{"3"}},
		{name: "offset past end", offset: 5, limit: 2, wantIDs: nil},
		{name: "limit past end", offset: 1, limit: 10, wantIDs: []string{"2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(results, tt.offset, tt.limit)
			if len(page) != len(tt.wantIDs) {
				t.Fatalf("page length = %d, want %d", len(page), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if page[i].Record.ID != want {
					t.Errorf("page[%d] = %s, want %s", i, page[i].Record.ID, want)
				}
			}
		})
	}
}
