package source

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heritagecraft/sousuo/internal/models"
)

// MemorySource is an in-memory Source safe for concurrent use. It keeps
// records in insertion order so candidate snapshots are reproducible, and
// notifies a Notifier of every lifecycle event.
type MemorySource struct {
	mu       sync.RWMutex
	records  []*models.Record
	idIndex  map[string]int
	notifier Notifier
}

// NewMemorySource creates an empty MemorySource. A nil notifier defaults to
// NopNotifier.
func NewMemorySource(notifier Notifier) *MemorySource {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &MemorySource{
		records:  make([]*models.Record, 0),
		idIndex:  make(map[string]int),
		notifier: notifier,
	}
}

// Add inserts a new record built from the input. A missing ID is assigned.
// The title must carry at least one non-blank language entry; the search
// engine relies on the source enforcing that invariant.
func (s *MemorySource) Add(input *models.RecordInput) (*models.Record, error) {
	if input == nil {
		return nil, models.NewValidationError("record", "record input is required")
	}
	if input.Title.IsBlank() {
		return nil, models.NewValidationError("title", "title requires at least one non-blank language entry")
	}

	now := time.Now()
	record := &models.Record{
		ID:          input.ID,
		Kind:        input.Kind,
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		Tags:        input.Tags,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	s.mu.Lock()
	if idx, exists := s.idIndex[record.ID]; exists {
		record.CreatedAt = s.records[idx].CreatedAt
		s.records[idx] = record
		s.mu.Unlock()
		s.notifier.Reindexed(record)
		return record, nil
	}
	s.idIndex[record.ID] = len(s.records)
	s.records = append(s.records, record)
	s.mu.Unlock()

	s.notifier.Indexed(record)
	return record, nil
}

// Update replaces the record with the given ID. Returns ErrNotFound for an
// unknown ID.
func (s *MemorySource) Update(id string, input *models.RecordInput) (*models.Record, error) {
	if input == nil {
		return nil, models.NewValidationError("record", "record input is required")
	}
	if input.Title.IsBlank() {
		return nil, models.NewValidationError("title", "title requires at least one non-blank language entry")
	}

	s.mu.Lock()
	idx, exists := s.idIndex[id]
	if !exists {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	record := &models.Record{
		ID:          id,
		Kind:        input.Kind,
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		Tags:        input.Tags,
		Category:    input.Category,
		CreatedAt:   s.records[idx].CreatedAt,
		UpdatedAt:   time.Now(),
	}
	s.records[idx] = record
	s.mu.Unlock()

	s.notifier.Reindexed(record)
	return record, nil
}

// Remove deletes the record with the given ID. Returns ErrNotFound for an
// unknown ID.
func (s *MemorySource) Remove(id string) error {
	s.mu.Lock()
	idx, exists := s.idIndex[id]
	if !exists {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	delete(s.idIndex, id)
	for i := idx; i < len(s.records); i++ {
		s.idIndex[s.records[i].ID] = i
	}
	s.mu.Unlock()

	s.notifier.Removed(id)
	return nil
}

// Get returns the record with the given ID, or ErrNotFound.
func (s *MemorySource) Get(id string) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, exists := s.idIndex[id]
	if !exists {
		return nil, ErrNotFound
	}
	return s.records[idx], nil
}

// Size returns the number of stored records.
func (s *MemorySource) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear removes all records without emitting lifecycle events.
func (s *MemorySource) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]*models.Record, 0)
	s.idIndex = make(map[string]int)
}

// Candidates implements Source. The returned slice is a snapshot; record
// pointers are shared but records are treated as immutable once stored.
func (s *MemorySource) Candidates(ctx context.Context, filter Filter) ([]*models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := make([]*models.Record, 0, len(s.records))
	for _, record := range s.records {
		if filter.Matches(record) {
			candidates = append(candidates, record)
		}
	}
	return candidates, nil
}
