package dto

import (
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/mymlak/mymlak/internal/validator"
	"github.com/shopspring/decimal"
)

// BillQuoteRequest asks for the discounted total of an ad-hoc bill at a
// merchant. Tier is optional; when omitted it is derived from the caller's
// subscription state.
type BillQuoteRequest struct {
	MerchantID            string          `json:"merchant_id" validate:"required"`
	GrossAmountMinorUnits int64           `json:"gross_amount_minor_units" validate:"gte=0"`
	Tier                  *types.UserTier `json:"tier,omitempty"`
}

// Validate validates the BillQuoteRequest
func (r *BillQuoteRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.MerchantID == "" {
		return ierr.NewError("merchant_id is required").
			WithHint("Please choose a merchant").
			Mark(ierr.ErrValidation)
	}

	if r.GrossAmountMinorUnits < 0 {
		return ierr.NewError("gross_amount_minor_units must not be negative").
			WithHint("Please enter a valid bill amount").
			Mark(ierr.ErrValidation)
	}

	if r.Tier != nil && !r.Tier.Validate() {
		return ierr.NewError("invalid tier").
			WithHint("Tier must be normal or vip").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// BillQuoteResponse is the ephemeral bill computation. Nothing is persisted.
type BillQuoteResponse struct {
	MerchantID            string          `json:"merchant_id"`
	Tier                  types.UserTier  `json:"tier"`
	GrossAmountMinorUnits int64           `json:"gross_amount_minor_units"`
	DiscountFraction      decimal.Decimal `json:"discount_fraction"`
	NetAmountMinorUnits   int64           `json:"net_amount_minor_units"`
}
