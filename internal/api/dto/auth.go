package dto

import (
	"strings"

	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/mymlak/mymlak/internal/validator"
)

// LoginRequest starts the OTP flow for a phone number.
type LoginRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// Validate validates the LoginRequest
func (r *LoginRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Phone) == "" {
		return ierr.NewError("phone is required").
			WithHint("Please enter your phone number").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// LoginResponse acknowledges that an OTP challenge was issued.
type LoginResponse struct {
	Phone   string `json:"phone"`
	OTPSent bool   `json:"otp_sent"`
}

// VerifyOTPRequest completes the OTP flow. Verification is simulated and
// always succeeds once a challenge is pending for the phone.
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// Validate validates the VerifyOTPRequest
func (r *VerifyOTPRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Phone) == "" {
		return ierr.NewError("phone is required").
			WithHint("Please enter your phone number").
			Mark(ierr.ErrValidation)
	}
	if strings.TrimSpace(r.OTP) == "" {
		return ierr.NewError("otp is required").
			WithHint("Please enter the code you received").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CompleteProfileRequest sets the display name on the current session.
type CompleteProfileRequest struct {
	Name string `json:"name" validate:"required"`
}

// Validate validates the CompleteProfileRequest
func (r *CompleteProfileRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Name) == "" {
		return ierr.NewError("name is required").
			WithHint("Please enter your name").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// SessionResponse is the current identity plus the derived discount tier.
type SessionResponse struct {
	Phone             string         `json:"phone"`
	Name              string         `json:"name,omitempty"`
	IsProfileComplete bool           `json:"is_profile_complete"`
	Tier              types.UserTier `json:"tier"`
}
