package ranking

import (
	"strings"

	"github.com/heritagecraft/sousuo/internal/content"
	"github.com/heritagecraft/sousuo/internal/models"
)

// RecordScorer scores a record against normalized query terms using tiered
// title matching and per-term field scores.
type RecordScorer struct {
	config   *Config
	accessor *content.Accessor
}

// NewRecordScorer creates a RecordScorer with the given config and accessor.
func NewRecordScorer(config *Config, accessor *content.Accessor) *RecordScorer {
	if config == nil {
		config = DefaultConfig()
	}
	config.ApplyDefaults()
	return &RecordScorer{config: config, accessor: accessor}
}

// Name returns the scorer name.
func (s *RecordScorer) Name() string {
	return "record"
}

// Score calculates the relevance score and matched fields for the record.
// A record with no matching term scores 0 and is expected to be dropped by
// the caller; an empty term list always scores 0.
func (s *RecordScorer) Score(ctx *ScoringContext) (float64, []models.MatchedField) {
	if ctx.Record == nil || len(ctx.Terms) == 0 {
		return 0, nil
	}

	score := 0.0
	var matched []models.MatchedField

	if titleScore := s.scoreTitle(ctx); titleScore > 0 {
		score += titleScore
		matched = append(matched, models.FieldTitle)
	}
	if descScore := s.scoreText(ctx, ctx.Record.Description, s.config.DescriptionTermScore); descScore > 0 {
		score += descScore
		matched = append(matched, models.FieldDescription)
	}
	if bodyScore := s.scoreText(ctx, ctx.Record.Body, s.config.BodyTermScore); bodyScore > 0 {
		score += bodyScore
		matched = append(matched, models.FieldBody)
	}
	if tagScore := s.scoreTags(ctx); tagScore > 0 {
		score += tagScore
		matched = append(matched, models.FieldTags)
	}
	if catScore := s.scoreCategory(ctx); catScore > 0 {
		score += catScore
		matched = append(matched, models.FieldCategory)
	}

	return score, matched
}

// scoreTitle applies the tiered title scores per term: exact match of the
// whole title, then prefix, then any other substring occurrence.
func (s *RecordScorer) scoreTitle(ctx *ScoringContext) float64 {
	title := strings.ToLower(s.accessor.Resolve(ctx.Record.Title, ctx.Language))
	if title == "" {
		return 0
	}

	score := 0.0
	for _, term := range ctx.Terms {
		switch {
		case title == term:
			score += s.config.TitleExactScore
		case strings.HasPrefix(title, term):
			score += s.config.TitlePrefixScore
		case strings.Contains(title, term):
			score += s.config.TitleSubstringScore
		}
	}
	return score
}

// scoreText adds perTerm points for each query term found in the resolved text.
func (s *RecordScorer) scoreText(ctx *ScoringContext, text models.LocalizedText, perTerm float64) float64 {
	resolved := strings.ToLower(s.accessor.Resolve(text, ctx.Language))
	if resolved == "" {
		return 0
	}

	score := 0.0
	for _, term := range ctx.Terms {
		if strings.Contains(resolved, term) {
			score += perTerm
		}
	}
	return score
}

// scoreTags adds points for every (term, tag) substring match.
func (s *RecordScorer) scoreTags(ctx *ScoringContext) float64 {
	if len(ctx.Record.Tags) == 0 {
		return 0
	}

	score := 0.0
	for _, tag := range ctx.Record.Tags {
		tagLower := strings.ToLower(tag)
		for _, term := range ctx.Terms {
			if strings.Contains(tagLower, term) {
				score += s.config.TagTermScore
			}
		}
	}
	return score
}

// scoreCategory adds points per term found in the category label.
func (s *RecordScorer) scoreCategory(ctx *ScoringContext) float64 {
	category := strings.ToLower(ctx.Record.Category)
	if category == "" {
		return 0
	}

	score := 0.0
	for _, term := range ctx.Terms {
		if strings.Contains(category, term) {
			score += s.config.CategoryTermScore
		}
	}
	return score
}
