package plan

import (
	"context"
)

// Repository defines read access to the plan catalog. The catalog has no write
// operations; it is seeded once from configuration.
type Repository interface {
	Get(ctx context.Context, id string) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
}
