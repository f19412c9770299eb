package inmemory

import (
	"context"
	"sync"

	"github.com/mymlak/mymlak/internal/domain/plan"
	ierr "github.com/mymlak/mymlak/internal/errors"
)

// InMemoryPlanStore implements plan.Repository over the immutable catalog.
// Catalog order is preserved for display.
type InMemoryPlanStore struct {
	mu    sync.RWMutex
	plans []*plan.Plan
	byID  map[string]*plan.Plan
}

// NewInMemoryPlanStore creates a plan store seeded with the given catalog.
func NewInMemoryPlanStore(plans []*plan.Plan) *InMemoryPlanStore {
	byID := make(map[string]*plan.Plan, len(plans))
	for _, p := range plans {
		byID[p.ID] = p
	}
	return &InMemoryPlanStore{
		plans: plans,
		byID:  byID,
	}
}

func (s *InMemoryPlanStore) Get(ctx context.Context, id string) (*plan.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.byID[id]; ok {
		return p, nil
	}

	return nil, ierr.NewError("plan not found").
		WithHintf("No plan found with id %s", id).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryPlanStore) List(ctx context.Context) ([]*plan.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*plan.Plan, len(s.plans))
	copy(result, s.plans)
	return result, nil
}
