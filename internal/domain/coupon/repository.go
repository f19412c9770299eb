package coupon

import (
	"context"
)

// Repository defines read access to the coupon table. Lookups expect a
// normalized code (see NormalizeCode).
type Repository interface {
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context) ([]*Coupon, error)
}
