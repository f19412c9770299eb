package inmemory

import (
	"context"

	"github.com/mymlak/mymlak/internal/domain/booking"
	ierr "github.com/mymlak/mymlak/internal/errors"
)

// InMemoryBookingStore implements booking.Repository
type InMemoryBookingStore struct {
	*InMemoryStore[*booking.Booking]
}

// NewInMemoryBookingStore creates a new in-memory booking store
func NewInMemoryBookingStore() *InMemoryBookingStore {
	return &InMemoryBookingStore{
		InMemoryStore: NewInMemoryStore[*booking.Booking](),
	}
}

// bookingSortFn orders bookings newest first
func bookingSortFn(i, j *booking.Booking) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryBookingStore) Create(ctx context.Context, b *booking.Booking) error {
	if b == nil {
		return ierr.NewError("booking cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, b.ID, b)
}

func (s *InMemoryBookingStore) Get(ctx context.Context, id string) (*booking.Booking, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryBookingStore) Update(ctx context.Context, b *booking.Booking) error {
	if b == nil {
		return ierr.NewError("booking cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, b.ID, b)
}

func (s *InMemoryBookingStore) ListByUser(ctx context.Context, userPhone string) ([]*booking.Booking, error) {
	return s.InMemoryStore.List(ctx, func(ctx context.Context, b *booking.Booking) bool {
		return b != nil && b.UserPhone == userPhone
	}, bookingSortFn)
}

// Clear removes all bookings
func (s *InMemoryBookingStore) Clear() {
	s.InMemoryStore.Clear()
}
