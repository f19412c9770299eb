package booking

import (
	"context"
)

// Repository persists bookings for the lifetime of the process.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	Get(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, b *Booking) error
	ListByUser(ctx context.Context, userPhone string) ([]*Booking, error)
}
