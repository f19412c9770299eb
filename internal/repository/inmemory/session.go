package inmemory

import (
	"context"
	"encoding/json"

	"github.com/mymlak/mymlak/internal/cache"
	"github.com/mymlak/mymlak/internal/domain/session"
	ierr "github.com/mymlak/mymlak/internal/errors"
)

const (
	// SessionKey is the fixed storage key for the session object. Presence of
	// this key means authenticated. No schema versioning, no encryption.
	SessionKey = "user"

	// challengeKey holds the pending OTP challenge until verification.
	challengeKey = "otp_challenge"
)

// KVSessionStore implements session.Repository on top of the key-value cache,
// JSON-serializing the session object under the fixed "user" key the way a
// device-local store would.
type KVSessionStore struct {
	kv cache.Cache
}

// NewKVSessionStore creates a session store backed by the given cache.
func NewKVSessionStore(kv cache.Cache) *KVSessionStore {
	return &KVSessionStore{kv: kv}
}

func (s *KVSessionStore) Get(ctx context.Context) (*session.Session, error) {
	raw, ok := s.kv.Get(ctx, SessionKey)
	if !ok {
		return nil, ierr.NewError("no session").
			WithHint("You are not logged in").
			Mark(ierr.ErrNotFound)
	}

	data, ok := raw.(string)
	if !ok {
		return nil, ierr.NewError("malformed session value").
			Mark(ierr.ErrSystem)
	}

	var sess session.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Stored session could not be decoded").
			Mark(ierr.ErrSystem)
	}

	return &sess, nil
}

func (s *KVSessionStore) Save(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return ierr.NewError("session cannot be nil").
			Mark(ierr.ErrValidation)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Session could not be encoded").
			Mark(ierr.ErrSystem)
	}

	s.kv.Set(ctx, SessionKey, string(data), 0)
	return nil
}

func (s *KVSessionStore) Delete(ctx context.Context) error {
	s.kv.Delete(ctx, SessionKey)
	return nil
}

func (s *KVSessionStore) GetChallenge(ctx context.Context) (*session.Challenge, error) {
	raw, ok := s.kv.Get(ctx, challengeKey)
	if !ok {
		return nil, ierr.NewError("no pending verification").
			WithHint("Request an OTP first").
			Mark(ierr.ErrNotFound)
	}

	challenge, ok := raw.(*session.Challenge)
	if !ok {
		return nil, ierr.NewError("malformed challenge value").
			Mark(ierr.ErrSystem)
	}

	return challenge, nil
}

func (s *KVSessionStore) SaveChallenge(ctx context.Context, c *session.Challenge) error {
	if c == nil {
		return ierr.NewError("challenge cannot be nil").
			Mark(ierr.ErrValidation)
	}

	// A new login attempt replaces any pending challenge, mirroring the
	// cancel-on-re-entry behavior of the OTP screen.
	s.kv.Set(ctx, challengeKey, c, 0)
	return nil
}

func (s *KVSessionStore) DeleteChallenge(ctx context.Context) error {
	s.kv.Delete(ctx, challengeKey)
	return nil
}
