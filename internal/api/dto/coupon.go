package dto

import (
	"github.com/mymlak/mymlak/internal/domain/coupon"
	"github.com/shopspring/decimal"
)

// ResolveCouponRequest carries the raw user-entered code, any case and
// whitespace.
type ResolveCouponRequest struct {
	Code string `json:"code"`
}

// CouponResolutionResponse is the discriminated result of a coupon lookup.
// An invalid coupon is not an error; it resolves with Valid=false, a zero
// discount and a reason for UI messaging.
type CouponResolutionResponse struct {
	Valid            bool            `json:"valid"`
	Code             string          `json:"code,omitempty"`
	DiscountFraction decimal.Decimal `json:"discount_fraction"`
	Reason           string          `json:"reason,omitempty"`
}

func NewCouponResolutionResponse(r coupon.Resolution) *CouponResolutionResponse {
	return &CouponResolutionResponse{
		Valid:            r.Valid,
		Code:             r.Code,
		DiscountFraction: r.DiscountFraction,
		Reason:           string(r.Reason),
	}
}
