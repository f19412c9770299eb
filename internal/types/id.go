package types

import (
	"fmt"
	"math/rand"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex book_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_SUBSCRIPTION = "subs"
	UUID_PREFIX_BOOKING      = "book"
)

const confirmationAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ConfirmationCodeLength is the length of user-facing reference codes.
const ConfirmationCodeLength = 6

// GenerateConfirmationCode returns a human-shown reference code sampled from
// [0-9A-Z]. The code is cosmetic: it carries no uniqueness guarantee and
// collisions are accepted.
func GenerateConfirmationCode() string {
	b := make([]byte, ConfirmationCodeLength)
	for i := range b {
		b[i] = confirmationAlphabet[rand.Intn(len(confirmationAlphabet))]
	}
	return string(b)
}
