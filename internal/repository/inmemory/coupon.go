package inmemory

import (
	"context"
	"sync"

	"github.com/mymlak/mymlak/internal/domain/coupon"
	ierr "github.com/mymlak/mymlak/internal/errors"
)

// InMemoryCouponStore implements coupon.Repository over the fixed coupon
// table. Lookups expect normalized codes.
type InMemoryCouponStore struct {
	mu      sync.RWMutex
	coupons []*coupon.Coupon
	byCode  map[string]*coupon.Coupon
}

// NewInMemoryCouponStore creates a coupon store seeded with the given table.
func NewInMemoryCouponStore(coupons []*coupon.Coupon) *InMemoryCouponStore {
	byCode := make(map[string]*coupon.Coupon, len(coupons))
	for _, c := range coupons {
		byCode[c.Code] = c
	}
	return &InMemoryCouponStore{
		coupons: coupons,
		byCode:  byCode,
	}
}

func (s *InMemoryCouponStore) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.byCode[code]; ok {
		return c, nil
	}

	return nil, ierr.NewError("coupon not found").
		WithHintf("No coupon found with code %s", code).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryCouponStore) List(ctx context.Context) ([]*coupon.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*coupon.Coupon, len(s.coupons))
	copy(result, s.coupons)
	return result, nil
}
