package dto

import (
	"time"

	"github.com/mymlak/mymlak/internal/domain/booking"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/mymlak/mymlak/internal/validator"
)

// CreateBookingRequest submits a new request/order against a merchant.
type CreateBookingRequest struct {
	MerchantID       string `json:"merchant_id" validate:"required"`
	Notes            string `json:"notes,omitempty"`
	AmountMinorUnits int64  `json:"amount_minor_units,omitempty" validate:"gte=0"`
}

// Validate validates the CreateBookingRequest
func (r *CreateBookingRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.MerchantID == "" {
		return ierr.NewError("merchant_id is required").
			WithHint("Please choose a merchant").
			Mark(ierr.ErrValidation)
	}

	if r.AmountMinorUnits < 0 {
		return ierr.NewError("amount_minor_units must not be negative").
			WithHint("Please enter a valid amount").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// BookingResponse mirrors a stored booking.
type BookingResponse struct {
	ID               string              `json:"id"`
	MerchantID       string              `json:"merchant_id"`
	Notes            string              `json:"notes,omitempty"`
	AmountMinorUnits int64               `json:"amount_minor_units,omitempty"`
	Status           types.BookingStatus `json:"status"`
	ConfirmationCode string              `json:"confirmation_code,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	CompletedAt      *time.Time          `json:"completed_at,omitempty"`
}

// ListBookingsResponse wraps the caller's bookings, newest first.
type ListBookingsResponse struct {
	Items []*BookingResponse `json:"items"`
	Total int                `json:"total"`
}

func NewBookingResponse(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		MerchantID:       b.MerchantID,
		Notes:            b.Notes,
		AmountMinorUnits: b.AmountMinorUnits,
		Status:           b.Status,
		ConfirmationCode: b.ConfirmationCode,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
		CompletedAt:      b.CompletedAt,
	}
}
