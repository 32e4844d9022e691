package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemorySink keeps the latest update per job in process memory. It is the
// default sink for single-node deployments and for tests.
type MemorySink struct {
	mu      sync.RWMutex
	updates map[uuid.UUID]Update
}

func NewMemorySink() *MemorySink {
	return &MemorySink{updates: make(map[uuid.UUID]Update)}
}

func (s *MemorySink) Report(_ context.Context, jobID uuid.UUID, update Update) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates[jobID] = update
}

func (s *MemorySink) Get(_ context.Context, jobID uuid.UUID) (Update, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	update, ok := s.updates[jobID]
	return update, ok
}

// Forget drops a job's progress, typically after its terminal status has
// been persisted.
func (s *MemorySink) Forget(_ context.Context, jobID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.updates, jobID)
}
