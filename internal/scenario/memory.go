package scenario

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

type memoryEntry struct {
	plan      domain.Plan
	createdAt time.Time
	updatedAt time.Time
}

// MemoryStore is a map-backed Store used in tests and as a no-persistence
// fallback. Plans are stored by value so callers cannot mutate them in place.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, name string, plan *domain.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := memoryEntry{plan: *plan, createdAt: now, updatedAt: now}
	if prev, ok := s.entries[name]; ok {
		entry.createdAt = prev.createdAt
	}
	s.entries[name] = entry
	return nil
}

func (s *MemoryStore) Load(_ context.Context, name string) (*domain.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[name]
	if !ok {
		return nil, ErrNotFound
	}
	plan := entry.plan
	return &plan, nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[name]; !ok {
		return ErrNotFound
	}
	delete(s.entries, name)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.ScenarioInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]domain.ScenarioInfo, 0, len(s.entries))
	for name, entry := range s.entries {
		infos = append(infos, domain.ScenarioInfo{
			Name:      name,
			CreatedAt: entry.createdAt,
			UpdatedAt: entry.updatedAt,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}
