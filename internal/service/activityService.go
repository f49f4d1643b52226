package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"mbg-project/internal/models"
)

const defaultActivityLimit = 50

// ActivityService keeps the most recent activity events in memory for the
// dashboard feed. It is fed by the kafka consumer and read by GET /aktivitas.
type ActivityService struct {
	mu     sync.RWMutex
	events []models.ActivityEvent
	limit  int
}

func NewActivityService() *ActivityService {
	return &ActivityService{limit: defaultActivityLimit}
}

// HandleActivityMessage is the kafka MessageProcessor for the activity topic.
func (s *ActivityService) HandleActivityMessage(_ context.Context, data []byte) error {
	var event models.ActivityEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("decoding activity event, skipping: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// newest first, bounded ring
	s.events = append([]models.ActivityEvent{event}, s.events...)
	if len(s.events) > s.limit {
		s.events = s.events[:s.limit]
	}
	return nil
}

func (s *ActivityService) Recent(_ context.Context) []models.ActivityEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ActivityEvent, len(s.events))
	copy(out, s.events)
	return out
}
