package booking

import (
	"time"

	"github.com/mymlak/mymlak/internal/types"
)

// Booking is a generic request/order a user submits against a merchant:
// a table booking, a service request or a custom quote. It follows the
// pending -> completed / cancelled lifecycle; confirmed submissions never
// fail.
type Booking struct {
	ID         string `json:"id"`
	UserPhone  string `json:"user_phone"`
	MerchantID string `json:"merchant_id"`
	Notes      string `json:"notes,omitempty"`

	// AmountMinorUnits is the user-entered bill amount, when the request
	// carries one. Zero means no amount was attached.
	AmountMinorUnits int64 `json:"amount_minor_units,omitempty"`

	Status types.BookingStatus `json:"status"`

	// ConfirmationCode is the human-shown reference issued on completion.
	ConfirmationCode string `json:"confirmation_code,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CanConfirm reports whether the booking can still be confirmed.
func (b *Booking) CanConfirm() bool {
	return b.Status == types.BookingStatusPending
}

// CanCancel reports whether the booking can still be cancelled.
func (b *Booking) CanCancel() bool {
	return b.Status == types.BookingStatusPending
}

// Complete marks the booking completed and stamps the confirmation code.
func (b *Booking) Complete(code string, now time.Time) {
	b.Status = types.BookingStatusCompleted
	b.ConfirmationCode = code
	b.UpdatedAt = now
	b.CompletedAt = &now
}

// Cancel marks the booking cancelled.
func (b *Booking) Cancel(now time.Time) {
	b.Status = types.BookingStatusCancelled
	b.UpdatedAt = now
}
