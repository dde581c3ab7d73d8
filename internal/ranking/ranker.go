package ranking

import (
	"sort"
	"time"

	"github.com/heritagecraft/sousuo/internal/content"
	"github.com/heritagecraft/sousuo/internal/models"
)

// Ranker combines the record scorer and multipliers to rank candidates.
type Ranker struct {
	config      *Config
	scorer      *RecordScorer
	multipliers []Multiplier
}

// NewRanker creates a Ranker with the given configuration and accessor.
func NewRanker(config *Config, accessor *content.Accessor) *Ranker {
	if config == nil {
		config = DefaultConfig()
	}
	config.ApplyDefaults()

	return &Ranker{
		config:      config,
		scorer:      NewRecordScorer(config, accessor),
		multipliers: DefaultMultipliers(config),
	}
}

// WithMultipliers sets custom multipliers.
func (r *Ranker) WithMultipliers(multipliers []Multiplier) *Ranker {
	r.multipliers = multipliers
	return r
}

// Config returns the ranking configuration.
func (r *Ranker) Config() *Config {
	return r.config
}

// RankedRecord holds a candidate with its computed score and matched fields.
type RankedRecord struct {
	Record        *models.Record
	Score         float64
	MatchedFields []models.MatchedField
}

// Rank scores a single record and applies multipliers.
func (r *Ranker) Rank(terms []string, language string, record *models.Record, now time.Time) (float64, []models.MatchedField) {
	ctx := &ScoringContext{
		Terms:    terms,
		Language: language,
		Record:   record,
		Now:      now,
	}
	score, matched := r.scorer.Score(ctx)
	if score == 0 {
		return 0, nil
	}
	return ApplyMultipliers(ctx, score, r.multipliers), matched
}

// SortRanked sorts ranked records by score descending. The sort is stable so
// ties keep the original candidate order.
func SortRanked(results []*RankedRecord) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

// Paginate returns the [offset, offset+limit) page of results.
func Paginate(results []*RankedRecord, offset, limit int) []*RankedRecord {
	if offset >= len(results) {
		return nil
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
