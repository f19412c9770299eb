package service

import (
	"github.com/mymlak/mymlak/internal/config"
	"github.com/mymlak/mymlak/internal/domain/booking"
	"github.com/mymlak/mymlak/internal/domain/coupon"
	"github.com/mymlak/mymlak/internal/domain/merchant"
	"github.com/mymlak/mymlak/internal/domain/plan"
	"github.com/mymlak/mymlak/internal/domain/session"
	"github.com/mymlak/mymlak/internal/domain/subscription"
	"github.com/mymlak/mymlak/internal/logger"
	"github.com/mymlak/mymlak/internal/types"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Clock  types.Clock

	// Repositories
	PlanRepo         plan.Repository
	CouponRepo       coupon.Repository
	MerchantRepo     merchant.Repository
	SubscriptionRepo subscription.Repository
	BookingRepo      booking.Repository
	SessionRepo      session.Repository
}

// NewServiceParams assembles the dependency bundle for the composition root.
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	clock types.Clock,
	planRepo plan.Repository,
	couponRepo coupon.Repository,
	merchantRepo merchant.Repository,
	subscriptionRepo subscription.Repository,
	bookingRepo booking.Repository,
	sessionRepo session.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:           logger,
		Config:           config,
		Clock:            clock,
		PlanRepo:         planRepo,
		CouponRepo:       couponRepo,
		MerchantRepo:     merchantRepo,
		SubscriptionRepo: subscriptionRepo,
		BookingRepo:      bookingRepo,
		SessionRepo:      sessionRepo,
	}
}
