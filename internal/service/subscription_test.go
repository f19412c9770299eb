package service

import (
	"context"
	"testing"
	"time"

	"github.com/mymlak/mymlak/internal/api/dto"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/testutil"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SubscriptionService
	ctx     context.Context
	phone   string
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceSuite))
}

func (s *SubscriptionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSubscriptionService(s.serviceParams())
	s.phone = "+8801712345678"
	s.ctx = types.WithUserPhone(s.GetContext(), s.phone)
}

func (s *SubscriptionServiceSuite) serviceParams() ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		Clock:            s.GetClock(),
		PlanRepo:         stores.PlanRepo,
		CouponRepo:       stores.CouponRepo,
		MerchantRepo:     stores.MerchantRepo,
		SubscriptionRepo: stores.SubscriptionRepo,
		BookingRepo:      stores.BookingRepo,
		SessionRepo:      stores.SessionRepo,
	}
}

func (s *SubscriptionServiceSuite) TestSubscribeRequiresAuthentication() {
	_, err := s.service.Subscribe(s.GetContext(), dto.SubscribeRequest{PlanID: "monthly"})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *SubscriptionServiceSuite) TestSubscribeWithoutCoupon() {
	now := s.GetClock().Now()

	resp, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "quarterly"})
	s.NoError(err)

	s.Equal("quarterly", resp.PlanID)
	s.Equal("VIP Quarterly", resp.PlanName)
	s.Equal(int64(799), resp.OriginalPriceMinorUnits)
	s.Equal(int64(799), resp.PricePaidMinorUnits)
	s.Nil(resp.AppliedCouponCode)
	s.True(resp.IsActive)
	s.True(resp.AutoRenew)
	s.True(resp.EndDate.Equal(types.AddClampedDate(now, 0, 3, 0)))
}

func (s *SubscriptionServiceSuite) TestSubscribeWithCoupon() {
	code := "  mymlaktr "
	resp, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{
		PlanID:     "quarterly",
		CouponCode: &code,
	})
	s.NoError(err)

	// 799 * 0.5 = 399.5 rounds half-up to 400
	s.Equal(int64(799), resp.OriginalPriceMinorUnits)
	s.Equal(int64(400), resp.PricePaidMinorUnits)
	s.Equal("MYMLAKTR", lo.FromPtr(resp.AppliedCouponCode))
}

func (s *SubscriptionServiceSuite) TestSubscribeWithUnknownCoupon() {
	code := "BOGUS50"
	resp, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{
		PlanID:     "monthly",
		CouponCode: &code,
	})
	s.NoError(err)

	// Unknown coupons are tolerated and simply apply no discount
	s.Equal(int64(299), resp.PricePaidMinorUnits)
	s.Nil(resp.AppliedCouponCode)
}

func (s *SubscriptionServiceSuite) TestSubscribeUnknownPlan() {
	_, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "weekly"})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SubscriptionServiceSuite) TestSubscribeClampsEndOfMonth() {
	testCases := []struct {
		name     string
		start    time.Time
		planID   string
		expected time.Time
	}{
		{
			name:     "jan_31_monthly_clamps_to_feb_28",
			start:    time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC),
			planID:   "monthly",
			expected: time.Date(2025, 2, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "jan_31_monthly_leap_year_clamps_to_feb_29",
			start:    time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC),
			planID:   "monthly",
			expected: time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "nov_30_quarterly_crosses_year",
			start:    time.Date(2025, 11, 30, 10, 0, 0, 0, time.UTC),
			planID:   "quarterly",
			expected: time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "feb_29_yearly_clamps_to_feb_28",
			start:    time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC),
			planID:   "yearly",
			expected: time.Date(2025, 2, 28, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.GetClock().SetNow(tc.start)
			resp, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: tc.planID})
			s.NoError(err)
			s.True(resp.EndDate.Equal(tc.expected),
				"expected end date %s, got %s", tc.expected, resp.EndDate)
		})
	}
}

func (s *SubscriptionServiceSuite) TestSubscribeOverwritesExistingRecord() {
	first, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "monthly"})
	s.NoError(err)

	second, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "yearly"})
	s.NoError(err)
	s.NotEqual(first.ID, second.ID)

	stored, err := s.GetStores().SubscriptionRepo.GetByUser(s.ctx, s.phone)
	s.NoError(err)
	s.Equal(second.ID, stored.ID)
	s.Equal("yearly", stored.PlanID)
	s.Equal(int64(2499), stored.PricePaidMinorUnits)
}

func (s *SubscriptionServiceSuite) TestCancelWithoutRecord() {
	_, err := s.service.Cancel(s.ctx)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SubscriptionServiceSuite) TestCancelDeactivatesRecord() {
	sub, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "monthly"})
	s.NoError(err)

	resp, err := s.service.Cancel(s.ctx)
	s.NoError(err)
	s.Equal(sub.ID, resp.ID)
	s.False(resp.IsActive)
	s.False(resp.AutoRenew)

	// The record survives cancellation with its price audit trail intact
	stored, err := s.GetStores().SubscriptionRepo.GetByUser(s.ctx, s.phone)
	s.NoError(err)
	s.False(stored.IsActive)
	s.Equal(int64(299), stored.PricePaidMinorUnits)
}

func (s *SubscriptionServiceSuite) TestCancelIsIdempotent() {
	_, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "monthly"})
	s.NoError(err)

	_, err = s.service.Cancel(s.ctx)
	s.NoError(err)

	// A second cancel of the already inactive record still succeeds
	resp, err := s.service.Cancel(s.ctx)
	s.NoError(err)
	s.False(resp.IsActive)
}

func (s *SubscriptionServiceSuite) TestGetStatusWithoutRecord() {
	resp, err := s.service.GetStatus(s.ctx)
	s.NoError(err)
	s.False(resp.IsActive)
	s.Equal(0, resp.DaysRemaining)
	s.Equal(dto.NoActivePlanName, resp.PlanName)
}

func (s *SubscriptionServiceSuite) TestGetStatusUnauthenticated() {
	resp, err := s.service.GetStatus(s.GetContext())
	s.NoError(err)
	s.False(resp.IsActive)
	s.Equal(dto.NoActivePlanName, resp.PlanName)
}

func (s *SubscriptionServiceSuite) TestGetStatusActiveSubscription() {
	s.GetClock().SetNow(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	_, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "quarterly"})
	s.NoError(err)

	resp, err := s.service.GetStatus(s.ctx)
	s.NoError(err)
	s.True(resp.IsActive)
	s.Equal("VIP Quarterly", resp.PlanName)
	// Mar 10 to Jun 10 is exactly 92 days
	s.Equal(92, resp.DaysRemaining)
}

func (s *SubscriptionServiceSuite) TestGetStatusPartialDayCountsAsOne() {
	s.GetClock().SetNow(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	_, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "monthly"})
	s.NoError(err)

	// Six hours before expiry there is still one remaining day
	s.GetClock().SetNow(time.Date(2025, 4, 10, 6, 0, 0, 0, time.UTC))
	resp, err := s.service.GetStatus(s.ctx)
	s.NoError(err)
	s.True(resp.IsActive)
	s.Equal(1, resp.DaysRemaining)
}

func (s *SubscriptionServiceSuite) TestGetStatusReflectsNaturalExpiry() {
	_, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "monthly"})
	s.NoError(err)

	s.GetClock().Advance(40 * 24 * time.Hour)

	resp, err := s.service.GetStatus(s.ctx)
	s.NoError(err)
	s.False(resp.IsActive)
	s.Equal(0, resp.DaysRemaining)
	s.Equal(dto.NoActivePlanName, resp.PlanName)

	// Expiry is derived at read time only; the stored flag is untouched
	stored, err := s.GetStores().SubscriptionRepo.GetByUser(s.ctx, s.phone)
	s.NoError(err)
	s.True(stored.IsActive)
}

func (s *SubscriptionServiceSuite) TestCurrentTier() {
	s.Equal(types.UserTierNormal, s.service.CurrentTier(s.GetContext()))
	s.Equal(types.UserTierNormal, s.service.CurrentTier(s.ctx))

	_, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "yearly"})
	s.NoError(err)
	s.Equal(types.UserTierVIP, s.service.CurrentTier(s.ctx))

	_, err = s.service.Cancel(s.ctx)
	s.NoError(err)
	s.Equal(types.UserTierNormal, s.service.CurrentTier(s.ctx))
}

func (s *SubscriptionServiceSuite) TestCancelledRecordStaysCancelledOnRead() {
	_, err := s.service.Subscribe(s.ctx, dto.SubscribeRequest{PlanID: "monthly"})
	s.NoError(err)
	_, err = s.service.Cancel(s.ctx)
	s.NoError(err)

	stored, err := s.GetStores().SubscriptionRepo.GetByUser(s.ctx, s.phone)
	s.NoError(err)
	s.False(stored.IsCurrentlyActive(s.GetClock().Now()))
}
