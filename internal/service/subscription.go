package service

import (
	"context"

	"github.com/mymlak/mymlak/internal/api/dto"
	"github.com/mymlak/mymlak/internal/domain/subscription"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/types"
)

// SubscriptionService manages the VIP subscription lifecycle for the
// authenticated user: subscribe (unconditional overwrite), cancel (flag flip,
// audit trail preserved) and the derived status read.
type SubscriptionService interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) (*dto.SubscriptionResponse, error)
	Cancel(ctx context.Context) (*dto.SubscriptionResponse, error)
	GetStatus(ctx context.Context) (*dto.SubscriptionStatusResponse, error)
	CurrentTier(ctx context.Context) types.UserTier
}

type subscriptionService struct {
	ServiceParams
	pricing PricingService
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{
		ServiceParams: params,
		pricing:       NewPricingService(params),
	}
}

// Subscribe resolves the optional coupon, snapshots the plan price, computes
// the calendar-based end date and overwrites any existing record for the
// user. Payment is mocked; aside from the timestamp this is deterministic.
func (s *subscriptionService) Subscribe(ctx context.Context, req dto.SubscribeRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	phone := types.GetUserPhone(ctx)
	if phone == "" {
		return nil, ierr.NewError("not authenticated").
			WithHint("Please log in to subscribe").
			Mark(ierr.ErrPermissionDenied)
	}

	p, err := s.PlanRepo.Get(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	var resolution *dto.CouponResolutionResponse
	if req.CouponCode != nil {
		resolution, err = s.pricing.ResolveCoupon(ctx, *req.CouponCode)
		if err != nil {
			return nil, err
		}
	}

	quote, err := s.pricing.ComputeFinalPrice(ctx, p.ID, resolution)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	endDate, err := types.NextRenewalDate(now, p.Period())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Plan period is not supported").
			Mark(ierr.ErrNotFound)
	}

	var appliedCoupon *string
	if resolution != nil && resolution.Valid {
		code := resolution.Code
		appliedCoupon = &code
	}

	sub := &subscription.Subscription{
		ID:                      types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		UserPhone:               phone,
		PlanID:                  p.ID,
		StartDate:               now,
		EndDate:                 endDate,
		IsActive:                true,
		AutoRenew:               true,
		OriginalPriceMinorUnits: quote.OriginalPriceMinorUnits,
		PricePaidMinorUnits:     quote.FinalPriceMinorUnits,
		AppliedCouponCode:       appliedCoupon,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := s.SubscriptionRepo.Upsert(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("subscription created",
		"subscription_id", sub.ID,
		"plan_id", sub.PlanID,
		"price_paid", sub.PricePaidMinorUnits,
	)

	return dto.NewSubscriptionResponse(sub, p.Name), nil
}

// Cancel deactivates the user's subscription record. Cancelling an already
// inactive record is an idempotent success; only a user with no record at all
// gets an error.
func (s *subscriptionService) Cancel(ctx context.Context) (*dto.SubscriptionResponse, error) {
	phone := types.GetUserPhone(ctx)
	if phone == "" {
		return nil, ierr.NewError("not authenticated").
			WithHint("Please log in first").
			Mark(ierr.ErrPermissionDenied)
	}

	sub, err := s.SubscriptionRepo.GetByUser(ctx, phone)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.NewError("no active subscription").
				WithHint("There is no subscription to cancel").
				Mark(ierr.ErrNotFound)
		}
		return nil, err
	}

	sub.Cancel(s.Clock.Now())

	if err := s.SubscriptionRepo.Upsert(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("subscription cancelled", "subscription_id", sub.ID)

	return dto.NewSubscriptionResponse(sub, s.planName(ctx, sub.PlanID)), nil
}

// GetStatus returns the derived subscription view. A naturally expired
// record reports inactive here even though the stored flag is only flipped by
// cancel or a later subscribe.
func (s *subscriptionService) GetStatus(ctx context.Context) (*dto.SubscriptionStatusResponse, error) {
	inactive := &dto.SubscriptionStatusResponse{
		IsActive:      false,
		DaysRemaining: 0,
		PlanName:      dto.NoActivePlanName,
	}

	phone := types.GetUserPhone(ctx)
	if phone == "" {
		return inactive, nil
	}

	sub, err := s.SubscriptionRepo.GetByUser(ctx, phone)
	if err != nil {
		if ierr.IsNotFound(err) {
			return inactive, nil
		}
		return nil, err
	}

	if !sub.IsActive {
		return inactive, nil
	}

	days := sub.DaysRemaining(s.Clock.Now())
	if days == 0 {
		return inactive, nil
	}

	return &dto.SubscriptionStatusResponse{
		IsActive:      true,
		DaysRemaining: days,
		PlanName:      s.planName(ctx, sub.PlanID),
	}, nil
}

// CurrentTier derives the discount tier from the subscription state. The
// tier is never stored anywhere.
func (s *subscriptionService) CurrentTier(ctx context.Context) types.UserTier {
	phone := types.GetUserPhone(ctx)
	if phone == "" {
		return types.UserTierNormal
	}

	sub, err := s.SubscriptionRepo.GetByUser(ctx, phone)
	if err != nil || !sub.IsCurrentlyActive(s.Clock.Now()) {
		return types.UserTierNormal
	}

	return types.UserTierVIP
}

func (s *subscriptionService) planName(ctx context.Context, planID string) string {
	p, err := s.PlanRepo.Get(ctx, planID)
	if err != nil {
		return planID
	}
	return p.Name
}
