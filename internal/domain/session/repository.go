package session

import (
	"context"
)

// Repository persists the current session and the pending OTP challenge in the
// device-local key-value store. The session lives under a single fixed key, so
// reads and writes are last-write-wins with no multi-account switching.
type Repository interface {
	Get(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context) error

	GetChallenge(ctx context.Context) (*Challenge, error)
	SaveChallenge(ctx context.Context, c *Challenge) error
	DeleteChallenge(ctx context.Context) error
}
