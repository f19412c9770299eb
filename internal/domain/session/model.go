package session

import (
	"time"
)

// Session is the persisted identity of the current user. Presence of a stored
// session means authenticated; absence means unauthenticated. No credential
// material is kept beyond the phone number.
type Session struct {
	Phone string `json:"phone"`
	Name  string `json:"name,omitempty"`
}

// IsProfileComplete reports whether the user finished the profile step.
func (s *Session) IsProfileComplete() bool {
	return s.Name != ""
}

// Challenge is a pending OTP verification. Verification is simulated: any
// code presented after the challenge was issued succeeds.
type Challenge struct {
	Phone    string    `json:"phone"`
	IssuedAt time.Time `json:"issued_at"`
}
