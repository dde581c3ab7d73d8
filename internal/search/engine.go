// Package search provides the search orchestrator: query normalization,
// candidate scoring, snippet highlighting, facets, and suggestions.
package search

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/heritagecraft/sousuo/internal/config"
	"github.com/heritagecraft/sousuo/internal/content"
	"github.com/heritagecraft/sousuo/internal/models"
	"github.com/heritagecraft/sousuo/internal/ranking"
	"github.com/heritagecraft/sousuo/internal/source"
)

// Engine runs relevance-ranked search over candidates from a content source.
// Each search call is an independent computation over a snapshot of
// candidates, so the engine is safe for concurrent use without locking.
type Engine struct {
	src         source.Source
	accessor    *content.Accessor
	ranker      *ranking.Ranker
	highlighter *Highlighter
	suggester   *Suggester
	config      *config.SearchConfig
	pool        *ants.Pool
	logger      *zap.Logger
}

// NewEngine creates a search engine with the given dependencies. A worker
// pool sized to the CPU count is created for parallel candidate scoring.
func NewEngine(
	src source.Source,
	accessor *content.Accessor,
	ranker *ranking.Ranker,
	suggester *Suggester,
	cfg *config.SearchConfig,
	logger *zap.Logger,
) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		return nil, errors.Wrap(err, "create scoring pool")
	}

	return &Engine{
		src:         src,
		accessor:    accessor,
		ranker:      ranker,
		highlighter: NewHighlighter(),
		suggester:   suggester,
		config:      cfg,
		pool:        pool,
		logger:      logger,
	}, nil
}

// Close releases the scoring worker pool.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Search validates the query, scores candidates, and assembles the response.
// Facets cover the full filtered candidate set; Total counts only candidates
// that scored above zero. Candidate-fetch failures propagate untouched.
func (e *Engine) Search(ctx context.Context, query *models.SearchQuery) (*models.SearchResponse, error) {
	startTime := time.Now()

	if query == nil {
		return nil, models.NewValidationError("query", "query is required")
	}
	if err := query.Validate(e.accessor.Languages()); err != nil {
		return nil, err
	}

	filter := source.Filter{
		Kinds:      query.Kinds,
		Categories: query.Categories,
		Tags:       query.Tags,
	}
	candidates, err := e.src.Candidates(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "fetch candidates")
	}

	terms := ranking.NormalizeQuery(query.Text)
	now := time.Now()

	ranked := e.rankCandidates(terms, query.Language, candidates, now)
	ranking.SortRanked(ranked)

	facets := ComputeFacets(candidates)
	suggestions := e.suggester.Suggest(query.Text)

	page := ranking.Paginate(ranked, query.Offset, query.Limit)
	results := make([]*models.SearchResult, 0, len(page))
	for i, rr := range page {
		results = append(results, &models.SearchResult{
			Record:        rr.Record,
			Score:         rr.Score,
			MatchedFields: rr.MatchedFields,
			Highlights:    e.buildHighlights(rr.Record, terms, query.Language),
			Rank:          query.Offset + i + 1,
		})
	}

	e.logger.Debug("search completed",
		zap.String("query", query.Text),
		zap.String("language", query.Language),
		zap.Int("candidates", len(candidates)),
		zap.Int("total", len(ranked)),
		zap.Int("returned", len(results)),
	)

	return &models.SearchResponse{
		Results:     results,
		Total:       len(ranked),
		Suggestions: suggestions,
		Facets:      facets,
		Query:       query.Text,
		QueryTime:   time.Since(startTime).Milliseconds(),
	}, nil
}

// rankCandidates scores every candidate and drops zero scores. Large
// candidate sets are scored on the worker pool; each worker writes into its
// own slot so the merge never depends on completion order, and the stable
// sort afterwards is the synchronization point.
func (e *Engine) rankCandidates(terms []string, language string, candidates []*models.Record, now time.Time) []*ranking.RankedRecord {
	if len(terms) == 0 || len(candidates) == 0 {
		return nil
	}

	threshold := e.config.ParallelScoreThreshold
	scored := make([]*ranking.RankedRecord, len(candidates))

	if e.pool == nil || threshold < 0 || len(candidates) < threshold {
		for i, record := range candidates {
			scored[i] = e.rankOne(terms, language, record, now)
		}
	} else {
		var wg sync.WaitGroup
		for i, record := range candidates {
			i, record := i, record
			wg.Add(1)
			submitErr := e.pool.Submit(func() {
				defer wg.Done()
				scored[i] = e.rankOne(terms, language, record, now)
			})
			if submitErr != nil {
				scored[i] = e.rankOne(terms, language, record, now)
				wg.Done()
			}
		}
		wg.Wait()
	}

	ranked := make([]*ranking.RankedRecord, 0, len(candidates))
	for _, rr := range scored {
		if rr != nil {
			ranked = append(ranked, rr)
		}
	}
	return ranked
}

// rankOne scores a single candidate; nil means the record did not match.
func (e *Engine) rankOne(terms []string, language string, record *models.Record, now time.Time) *ranking.RankedRecord {
	score, matched := e.ranker.Rank(terms, language, record, now)
	if score == 0 {
		return nil
	}
	return &ranking.RankedRecord{
		Record:        record,
		Score:         score,
		MatchedFields: matched,
	}
}

// buildHighlights marks query terms in the resolved title, description, and
// body. The title is never truncated; description and body use the configured
// snippet budgets.
func (e *Engine) buildHighlights(record *models.Record, terms []string, language string) map[models.MatchedField]string {
	highlights := make(map[models.MatchedField]string)

	if title := e.accessor.Resolve(record.Title, language); title != "" {
		highlights[models.FieldTitle] = e.highlighter.Highlight(title, terms, 0)
	}
	if desc := e.accessor.Resolve(record.Description, language); desc != "" {
		highlights[models.FieldDescription] = e.highlighter.Highlight(desc, terms, e.config.DescriptionSnippetLength)
	}
	if body := e.accessor.Resolve(record.Body, language); body != "" {
		highlights[models.FieldBody] = e.highlighter.Highlight(body, terms, e.config.BodySnippetLength)
	}

	if len(highlights) == 0 {
		return nil
	}
	return highlights
}
