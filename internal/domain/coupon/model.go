package coupon

import (
	"strings"

	"github.com/mymlak/mymlak/internal/config"
	"github.com/shopspring/decimal"
)

// Coupon grants a flat percentage discount on subscription price, independent
// of user tier. A coupon is either fully valid (recognized code) or rejected
// outright; no expiry or redemption limits are modeled.
type Coupon struct {
	Code             string          `json:"code"`
	DiscountFraction decimal.Decimal `json:"discount_fraction"`
}

// ResolutionReason explains why a coupon resolution failed. An empty reason
// means the coupon resolved successfully.
type ResolutionReason string

const (
	ReasonMissingCode      ResolutionReason = "missing_code"
	ReasonUnrecognizedCode ResolutionReason = "unrecognized_code"
)

// Resolution is the discriminated result of a coupon lookup. Rejection is not
// an error: an invalid coupon simply resolves to a zero discount.
type Resolution struct {
	Valid            bool             `json:"valid"`
	Code             string           `json:"code,omitempty"`
	DiscountFraction decimal.Decimal  `json:"discount_fraction"`
	Reason           ResolutionReason `json:"reason,omitempty"`
}

// NormalizeCode canonicalizes a user-entered code: trimmed and uppercased.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// FromConfig converts a coupon table config entry to a domain Coupon. Codes
// are normalized at load time so lookups only ever see canonical form.
func FromConfig(c config.CouponConfig) *Coupon {
	return &Coupon{
		Code:             NormalizeCode(c.Code),
		DiscountFraction: decimal.NewFromFloat(c.DiscountFraction),
	}
}

// FromConfigList converts coupon table config entries to domain Coupons
func FromConfigList(list []config.CouponConfig) []*Coupon {
	coupons := make([]*Coupon, len(list))
	for i, item := range list {
		coupons[i] = FromConfig(item)
	}
	return coupons
}
