package subscription

import (
	"time"

	"github.com/mymlak/mymlak/internal/types"
)

// Subscription is a user's VIP subscription record. There is at most one
// record per user; subscribing again overwrites it unconditionally. Cancel
// flips the flags but never deletes the record, preserving the price-paid
// audit trail.
type Subscription struct {
	ID        string `json:"id"`
	UserPhone string `json:"user_phone"`
	PlanID    string `json:"plan_id"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	IsActive  bool `json:"is_active"`
	AutoRenew bool `json:"auto_renew"`

	// OriginalPriceMinorUnits snapshots the plan price at subscribe time.
	// Catalog prices can change later; the record must not silently reprice.
	OriginalPriceMinorUnits int64 `json:"original_price_minor_units"`
	PricePaidMinorUnits     int64 `json:"price_paid_minor_units"`

	AppliedCouponCode *string `json:"applied_coupon_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Cancel deactivates the record in place. Price and coupon fields are left
// untouched.
func (s *Subscription) Cancel(now time.Time) {
	s.IsActive = false
	s.AutoRenew = false
	s.UpdatedAt = now
}

// DaysRemaining returns the whole days left until the end date, floored at
// zero.
func (s *Subscription) DaysRemaining(now time.Time) int {
	return types.DaysRemaining(now, s.EndDate)
}

// IsCurrentlyActive derives the effective active state at read time. The
// stored IsActive flag is never proactively flipped when the end date passes;
// only reads reflect natural expiry.
func (s *Subscription) IsCurrentlyActive(now time.Time) bool {
	return s.IsActive && s.DaysRemaining(now) > 0
}
