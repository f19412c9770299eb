package inmemory

import (
	"context"
	"sync"

	"github.com/mymlak/mymlak/internal/domain/merchant"
	ierr "github.com/mymlak/mymlak/internal/errors"
)

// InMemoryMerchantStore implements merchant.Repository over the per-merchant
// discount table.
type InMemoryMerchantStore struct {
	mu        sync.RWMutex
	merchants []*merchant.Merchant
	byID      map[string]*merchant.Merchant
}

// NewInMemoryMerchantStore creates a merchant store seeded with the given table.
func NewInMemoryMerchantStore(merchants []*merchant.Merchant) *InMemoryMerchantStore {
	byID := make(map[string]*merchant.Merchant, len(merchants))
	for _, m := range merchants {
		byID[m.ID] = m
	}
	return &InMemoryMerchantStore{
		merchants: merchants,
		byID:      byID,
	}
}

func (s *InMemoryMerchantStore) Get(ctx context.Context, id string) (*merchant.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.byID[id]; ok {
		return m, nil
	}

	return nil, ierr.NewError("merchant not found").
		WithHintf("No merchant found with id %s", id).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryMerchantStore) List(ctx context.Context) ([]*merchant.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*merchant.Merchant, len(s.merchants))
	copy(result, s.merchants)
	return result, nil
}
