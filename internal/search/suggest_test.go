package search

import "testing"

func testVocabulary() []string {
	return []string{
		"woodworking",
		"traditional woodworking",
		"wooden toys",
		"woodturning",
		"wood carving",
		"driftwood art",
		"ceramics",
		"陶瓷",
	}
}

func TestSuggester_Suggest(t *testing.T) {
	s := NewSuggester(testVocabulary())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "short query returns nothing",
			query: "wo",
			want:  nil,
		},
		{
			name:  "substring matches in declaration order capped at five",
			query: "wood",
			want:  []string{"woodworking", "traditional woodworking", "wooden toys", "woodturning", "wood carving"},
		},
		{
			name:  "query itself is never suggested",
			query: "woodworking",
			want:  []string{"traditional woodworking"},
		},
		{
			name:  "no vocabulary match",
			query: "calligraphy",
			want:  nil,
		},
		{
			name:  "chinese query of two runes returns nothing",
			query: "陶瓷",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Suggest(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Suggest(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("suggestion[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSuggester_CaseInsensitive(t *testing.T) {
	s := NewSuggester([]string{"Bamboo Weaving"})
	got := s.Suggest("bamboo")
	if len(got) != 1 || got[0] != "Bamboo Weaving" {
		t.Errorf("Suggest(bamboo) = %v, want [Bamboo Weaving]", got)
	}
}
