package dto

import (
	"time"

	"github.com/mymlak/mymlak/internal/domain/subscription"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/validator"
	"github.com/shopspring/decimal"
)

// SubscribeRequest starts (or replaces) the user's VIP subscription.
type SubscribeRequest struct {
	PlanID     string  `json:"plan_id" validate:"required"`
	CouponCode *string `json:"coupon_code,omitempty"`
}

// Validate validates the SubscribeRequest
func (r *SubscribeRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.PlanID == "" {
		return ierr.NewError("plan_id is required").
			WithHint("Please choose a subscription plan").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PriceQuoteResponse is the result of computing a plan's final price with an
// optional coupon applied.
type PriceQuoteResponse struct {
	PlanID                  string          `json:"plan_id"`
	OriginalPriceMinorUnits int64           `json:"original_price_minor_units"`
	FinalPriceMinorUnits    int64           `json:"final_price_minor_units"`
	DiscountFraction        decimal.Decimal `json:"discount_fraction"`
}

// SubscriptionResponse mirrors the stored subscription record.
type SubscriptionResponse struct {
	ID                      string     `json:"id"`
	PlanID                  string     `json:"plan_id"`
	PlanName                string     `json:"plan_name"`
	StartDate               time.Time  `json:"start_date"`
	EndDate                 time.Time  `json:"end_date"`
	IsActive                bool       `json:"is_active"`
	AutoRenew               bool       `json:"auto_renew"`
	OriginalPriceMinorUnits int64      `json:"original_price_minor_units"`
	PricePaidMinorUnits     int64      `json:"price_paid_minor_units"`
	AppliedCouponCode       *string    `json:"applied_coupon_code"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// SubscriptionStatusResponse is the derived, read-time view of the
// subscription. IsActive here reflects natural expiry even when the stored
// flag does not.
type SubscriptionStatusResponse struct {
	IsActive      bool   `json:"is_active"`
	DaysRemaining int    `json:"days_remaining"`
	PlanName      string `json:"plan_name"`
}

// NoActivePlanName is the placeholder plan name reported when the user has no
// active subscription.
const NoActivePlanName = "No Active Plan"

func NewSubscriptionResponse(s *subscription.Subscription, planName string) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:                      s.ID,
		PlanID:                  s.PlanID,
		PlanName:                planName,
		StartDate:               s.StartDate,
		EndDate:                 s.EndDate,
		IsActive:                s.IsActive,
		AutoRenew:               s.AutoRenew,
		OriginalPriceMinorUnits: s.OriginalPriceMinorUnits,
		PricePaidMinorUnits:     s.PricePaidMinorUnits,
		AppliedCouponCode:       s.AppliedCouponCode,
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}
