package history

import (
	"context"
	"sync"

	"mbg-project/internal/models"
)

// MemStore is an in-memory history store used in tests and local runs without
// redis.
type MemStore struct {
	mu      sync.Mutex
	records []models.HistoricalPayment
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Append(_ context.Context, rec models.HistoricalPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

func (s *MemStore) List(_ context.Context) ([]models.HistoricalPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.HistoricalPayment, len(s.records))
	copy(out, s.records)
	return out, nil
}
