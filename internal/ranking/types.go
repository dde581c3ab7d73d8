// Package ranking provides deterministic, rule-based relevance scoring for
// multilingual records. Scoring is purely additive with no document-length
// normalization or term-frequency dampening, so every score is explainable
// from the configured constants.
package ranking

import (
	"strings"
	"time"

	"github.com/heritagecraft/sousuo/internal/models"
)

// NormalizeQuery splits raw query text into lowercase whitespace-separated
// terms. An empty or all-whitespace query yields an empty term list.
func NormalizeQuery(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			terms = append(terms, f)
		}
	}
	return terms
}

// ScoringContext provides all the context needed to score one record.
type ScoringContext struct {
	// Terms are the normalized lowercase query terms.
	Terms []string
	// Language is the validated query language.
	Language string
	// Record is the candidate being scored.
	Record *models.Record
	// Now is the evaluation time used by recency boosts.
	Now time.Time
}

// Scorer is the interface for scoring components.
type Scorer interface {
	// Score returns the relevance score and matched fields for the context's record.
	Score(ctx *ScoringContext) (float64, []models.MatchedField)
	// Name returns the scorer name for debugging and logging.
	Name() string
}

// Multiplier is the interface for score multipliers.
type Multiplier interface {
	// Multiply applies a multiplier to the base score.
	Multiply(ctx *ScoringContext, baseScore float64) float64
	// Name returns the multiplier name for debugging and logging.
	Name() string
}
