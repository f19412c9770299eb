package merchant

import (
	"context"
)

// Repository defines read access to the merchant discount table.
type Repository interface {
	Get(ctx context.Context, id string) (*Merchant, error)
	List(ctx context.Context) ([]*Merchant, error)
}
