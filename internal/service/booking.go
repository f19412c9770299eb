package service

import (
	"context"

	"github.com/mymlak/mymlak/internal/api/dto"
	"github.com/mymlak/mymlak/internal/domain/booking"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/samber/lo"
)

// BookingService runs the generic request/order flow: create a pending
// booking, confirm it (simulated submission latency, then a confirmation
// code) or cancel it while still pending. Submissions never fail once
// confirmed.
type BookingService interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingResponse, error)
	Confirm(ctx context.Context, id string) (*dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (*dto.BookingResponse, error)
	Get(ctx context.Context, id string) (*dto.BookingResponse, error)
	List(ctx context.Context) (*dto.ListBookingsResponse, error)
}

type bookingService struct {
	ServiceParams
}

// NewBookingService creates a new booking service
func NewBookingService(params ServiceParams) BookingService {
	return &bookingService{
		ServiceParams: params,
	}
}

func (s *bookingService) Create(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	phone, err := s.requirePhone(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.MerchantRepo.Get(ctx, req.MerchantID); err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	b := &booking.Booking{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BOOKING),
		UserPhone:        phone,
		MerchantID:       req.MerchantID,
		Notes:            req.Notes,
		AmountMinorUnits: req.AmountMinorUnits,
		Status:           types.BookingStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.BookingRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.Logger.Infow("booking created", "booking_id", b.ID, "merchant_id", b.MerchantID)

	return dto.NewBookingResponse(b), nil
}

// Confirm submits a pending booking. The simulated latency stands in for the
// upstream call; afterwards the booking always completes and a reference code
// is issued.
func (s *bookingService) Confirm(ctx context.Context, id string) (*dto.BookingResponse, error) {
	b, err := s.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.CanConfirm() {
		return nil, ierr.NewError("booking is not pending").
			WithHintf("A %s booking cannot be confirmed", b.Status).
			Mark(ierr.ErrInvalidOperation)
	}

	s.Clock.Sleep(s.Config.Simulation.SubmitLatency)

	b.Complete(types.GenerateConfirmationCode(), s.Clock.Now())

	if err := s.BookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.Logger.Infow("booking completed",
		"booking_id", b.ID,
		"confirmation_code", b.ConfirmationCode,
	)

	return dto.NewBookingResponse(b), nil
}

func (s *bookingService) Cancel(ctx context.Context, id string) (*dto.BookingResponse, error) {
	b, err := s.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.CanCancel() {
		return nil, ierr.NewError("booking is not pending").
			WithHintf("A %s booking cannot be cancelled", b.Status).
			Mark(ierr.ErrInvalidOperation)
	}

	b.Cancel(s.Clock.Now())

	if err := s.BookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	return dto.NewBookingResponse(b), nil
}

func (s *bookingService) Get(ctx context.Context, id string) (*dto.BookingResponse, error) {
	b, err := s.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewBookingResponse(b), nil
}

func (s *bookingService) List(ctx context.Context) (*dto.ListBookingsResponse, error) {
	phone, err := s.requirePhone(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.BookingRepo.ListByUser(ctx, phone)
	if err != nil {
		return nil, err
	}

	items := lo.Map(bookings, func(b *booking.Booking, _ int) *dto.BookingResponse {
		return dto.NewBookingResponse(b)
	})

	return &dto.ListBookingsResponse{
		Items: items,
		Total: len(items),
	}, nil
}

func (s *bookingService) requirePhone(ctx context.Context) (string, error) {
	phone := types.GetUserPhone(ctx)
	if phone == "" {
		return "", ierr.NewError("not authenticated").
			WithHint("Please log in first").
			Mark(ierr.ErrPermissionDenied)
	}
	return phone, nil
}

func (s *bookingService) getOwned(ctx context.Context, id string) (*booking.Booking, error) {
	phone, err := s.requirePhone(ctx)
	if err != nil {
		return nil, err
	}

	if id == "" {
		return nil, ierr.NewError("booking id is required").
			Mark(ierr.ErrValidation)
	}

	b, err := s.BookingRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.UserPhone != phone {
		// Do not leak other users' bookings
		return nil, ierr.NewError("booking not found").
			WithHintf("No booking found with id %s", id).
			Mark(ierr.ErrNotFound)
	}

	return b, nil
}
