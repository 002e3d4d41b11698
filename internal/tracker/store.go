package tracker

import (
	"context"
	"sync"

	"sitegen-workers/internal/models"
)

// RunStore is the append-only run history. List returns runs in append order,
// which is completion order.
type RunStore interface {
	Add(ctx context.Context, run models.GenerationRun) error
	List(ctx context.Context) ([]models.GenerationRun, error)
	Clear(ctx context.Context) error
}

// MemoryStore keeps history for the life of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	runs []models.GenerationRun
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(_ context.Context, run models.GenerationRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run.Clone())
	return nil
}

// List returns copies; callers cannot change stored records.
func (s *MemoryStore) List(_ context.Context) ([]models.GenerationRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GenerationRun, len(s.runs))
	for i, r := range s.runs {
		out[i] = r.Clone()
	}
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = nil
	return nil
}
