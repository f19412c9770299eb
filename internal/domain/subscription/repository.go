package subscription

import (
	"context"
)

// Repository persists the single subscription record per user. Writes are
// last-write-wins; Upsert covers both the unconditional overwrite on
// subscribe and the flag update on cancel.
type Repository interface {
	GetByUser(ctx context.Context, userPhone string) (*Subscription, error)
	Upsert(ctx context.Context, sub *Subscription) error
}
