package inmemory

import (
	"context"

	"github.com/mymlak/mymlak/internal/domain/subscription"
	ierr "github.com/mymlak/mymlak/internal/errors"
)

// InMemorySubscriptionStore implements subscription.Repository. Records are
// keyed by user phone; there is at most one per user and writes overwrite
// unconditionally.
type InMemorySubscriptionStore struct {
	*InMemoryStore[*subscription.Subscription]
}

// NewInMemorySubscriptionStore creates a new in-memory subscription store
func NewInMemorySubscriptionStore() *InMemorySubscriptionStore {
	return &InMemorySubscriptionStore{
		InMemoryStore: NewInMemoryStore[*subscription.Subscription](),
	}
}

func (s *InMemorySubscriptionStore) GetByUser(ctx context.Context, userPhone string) (*subscription.Subscription, error) {
	sub, err := s.InMemoryStore.Get(ctx, userPhone)
	if err != nil {
		return nil, ierr.NewError("no subscription record").
			WithHint("No subscription found for this user").
			Mark(ierr.ErrNotFound)
	}
	return sub, nil
}

func (s *InMemorySubscriptionStore) Upsert(ctx context.Context, sub *subscription.Subscription) error {
	if sub == nil {
		return ierr.NewError("subscription cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Upsert(ctx, sub.UserPhone, sub)
}

// Clear removes all subscription records
func (s *InMemorySubscriptionStore) Clear() {
	s.InMemoryStore.Clear()
}
