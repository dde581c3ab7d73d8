package ranking

import (
	"testing"

	"github.com/heritagecraft/sousuo/internal/content"
	"github.com/heritagecraft/sousuo/internal/models"
)

func testAccessor() *content.Accessor {
	return content.NewAccessor([]string{"en", "zh-HK", "zh-CN"}, "en")
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "lowercases and splits", input: "Bamboo Weaving", want: []string{"bamboo", "weaving"}},
		{name: "collapses whitespace", input: "  tea   set ", want: []string{"tea", "set"}},
		{name: "empty query", input: "", want: []string{}},
		{name: "whitespace only", input: "   \t ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeQuery(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeQuery(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("term[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRecordScorer_Score(t *testing.T) {
	config := DefaultConfig()
	scorer := NewRecordScorer(config, testAccessor())

	record := &models.Record{
		ID:          "r1",
		Kind:        models.KindCourse,
		Title:       models.LocalizedText{"en": "Traditional Woodworking Course"},
		Description: models.LocalizedText{"en": "Learn traditional joinery and woodworking techniques."},
		Body:        models.LocalizedText{"en": "A hands-on course covering traditional woodworking tools."},
		Tags:        []string{"woodworking", "traditional"},
		Category:    "craft courses",
	}

	tests := []struct {
		name        string
		terms       []string
		wantScore   float64
		wantMatched []models.MatchedField
	}{
		{
			name:        "empty terms score zero",
			terms:       nil,
			wantScore:   0,
			wantMatched: nil,
		},
		{
			name:  "substring title match plus description body tag",
			terms: []string{"woodworking"},
			// title substring 20 + description 10 + body 5 + one tag 15
			wantScore: config.TitleSubstringScore + config.DescriptionTermScore +
				config.BodyTermScore + config.TagTermScore,
			wantMatched: []models.MatchedField{
				models.FieldTitle, models.FieldDescription, models.FieldBody, models.FieldTags,
			},
		},
		{
			name:  "prefix title match",
			terms: []string{"traditional"},
			// prefix 50 + description 10 + body 5 + one tag 15
			wantScore: config.TitlePrefixScore + config.DescriptionTermScore +
				config.BodyTermScore + config.TagTermScore,
			wantMatched: []models.MatchedField{
				models.FieldTitle, models.FieldDescription, models.FieldBody, models.FieldTags,
			},
		},
		{
			name:        "category match only",
			terms:       []string{"craft"},
			wantScore:   config.CategoryTermScore,
			wantMatched: []models.MatchedField{models.FieldCategory},
		},
		{
			name:        "no match scores zero",
			terms:       []string{"ceramics"},
			wantScore:   0,
			wantMatched: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matched := scorer.Score(&ScoringContext{
				Terms:    tt.terms,
				Language: "en",
				Record:   record,
			})
			if score != tt.wantScore {
				t.Errorf("Score() = %v, want %v", score, tt.wantScore)
			}
			if len(matched) != len(tt.wantMatched) {
				t.Fatalf("matched = %v, want %v", matched, tt.wantMatched)
			}
			for i := range matched {
				if matched[i] != tt.wantMatched[i] {
					t.Errorf("matched[%d] = %v, want %v", i, matched[i], tt.wantMatched[i])
				}
			}
		})
	}
}

func TestRecordScorer_ExactTitleMatch(t *testing.T) {
	config := DefaultConfig()
	scorer := NewRecordScorer(config, testAccessor())

	record := &models.Record{
		ID:    "r1",
		Kind:  models.KindProduct,
		Title: models.LocalizedText{"en": "Woodworking"},
	}

	score, matched := scorer.Score(&ScoringContext{
		Terms:    []string{"woodworking"},
		Language: "en",
		Record:   record,
	})
	if score != config.TitleExactScore {
		t.Errorf("exact title match score = %v, want %v", score, config.TitleExactScore)
	}
	if len(matched) != 1 || matched[0] != models.FieldTitle {
		t.Errorf("matched = %v, want [title]", matched)
	}
}

func TestRecordScorer_TagPairScoring(t *testing.T) {
	config := DefaultConfig()
	scorer := NewRecordScorer(config, testAccessor())

	// "weaving" occurs in two tags: 15 points per (term, tag) pair.
	record := &models.Record{
		ID:    "r1",
		Kind:  models.KindCourse,
		Title: models.LocalizedText{"en": "Craft class"},
		Tags:  []string{"basket weaving", "bamboo weaving"},
	}

	score, _ := scorer.Score(&ScoringContext{
		Terms:    []string{"weaving"},
		Language: "en",
		Record:   record,
	})
	if want := 2 * config.TagTermScore; score != want {
		t.Errorf("tag pair score = %v, want %v", score, want)
	}
}

func TestRecordScorer_ResolvesQueryLanguage(t *testing.T) {
	config := DefaultConfig()
	scorer := NewRecordScorer(config, testAccessor())

	record := &models.Record{
		ID:    "r1",
		Kind:  models.KindProduct,
		Title: models.LocalizedText{"en": "Handmade ceramic tea set", "zh-HK": "手工陶瓷茶具"},
	}

	score, _ := scorer.Score(&ScoringContext{
		Terms:    []string{"陶瓷"},
		Language: "zh-HK",
		Record:   record,
	})
	if score != config.TitleSubstringScore {
		t.Errorf("zh-HK title score = %v, want %v", score, config.TitleSubstringScore)
	}

	// Same query against the en resolution finds nothing.
	score, _ = scorer.Score(&ScoringContext{
		Terms:    []string{"陶瓷"},
		Language: "en",
		Record:   record,
	})
	if score != 0 {
		t.Errorf("en resolution score = %v, want 0", score)
	}
}
