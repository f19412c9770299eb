package service

import (
	"testing"
	"time"

	"github.com/mymlak/mymlak/internal/api/dto"
	"github.com/mymlak/mymlak/internal/domain/coupon"
	"github.com/mymlak/mymlak/internal/domain/subscription"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/testutil"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PricingServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PricingService
}

func TestPricingService(t *testing.T) {
	suite.Run(t, new(PricingServiceSuite))
}

func (s *PricingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPricingService(s.serviceParams())
}

func (s *PricingServiceSuite) serviceParams() ServiceParams {
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

func (s *PricingServiceSuite) TestGetPlans() {
	resp, err := s.service.GetPlans(s.GetContext())
	s.NoError(err)
	s.Equal(3, resp.Total)

	// Catalog order is preserved
	s.Equal("monthly", resp.Items[0].ID)
	s.Equal("quarterly", resp.Items[1].ID)
	s.Equal("yearly", resp.Items[2].ID)

	s.Equal(int64(799), resp.Items[1].PriceMinorUnits)
	s.True(resp.Items[1].IsPopular)
}

func (s *PricingServiceSuite) TestGetMerchants() {
	resp, err := s.service.GetMerchants(s.GetContext())
	s.NoError(err)
	s.Equal(7, resp.Total)
	s.Equal("dineout-central", resp.Items[0].ID)
}

func (s *PricingServiceSuite) TestResolveCoupon() {
	testCases := []struct {
		name             string
		rawCode          string
		expectedValid    bool
		expectedCode     string
		expectedFraction decimal.Decimal
		expectedReason   string
	}{
		{
			name:             "exact_code",
			rawCode:          "MYMLAKTR",
			expectedValid:    true,
			expectedCode:     "MYMLAKTR",
			expectedFraction: decimal.NewFromFloat(0.5),
		},
		{
			name:             "lowercase_with_whitespace_normalizes",
			rawCode:          "  mymlaktr ",
			expectedValid:    true,
			expectedCode:     "MYMLAKTR",
			expectedFraction: decimal.NewFromFloat(0.5),
		},
		{
			name:             "second_catalog_code",
			rawCode:          "manasrcl",
			expectedValid:    true,
			expectedCode:     "MANASRCL",
			expectedFraction: decimal.NewFromFloat(0.3),
		},
		{
			name:           "empty_code",
			rawCode:        "",
			expectedValid:  false,
			expectedReason: string(coupon.ReasonMissingCode),
		},
		{
			name:           "whitespace_only_code",
			rawCode:        "   ",
			expectedValid:  false,
			expectedReason: string(coupon.ReasonMissingCode),
		},
		{
			name:           "unknown_code",
			rawCode:        "BOGUS50",
			expectedValid:  false,
			expectedReason: string(coupon.ReasonUnrecognizedCode),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.ResolveCoupon(s.GetContext(), tc.rawCode)
			s.NoError(err)
			s.Equal(tc.expectedValid, resp.Valid)

			if tc.expectedValid {
				s.Equal(tc.expectedCode, resp.Code)
				s.True(tc.expectedFraction.Equal(resp.DiscountFraction),
					"expected fraction %s, got %s", tc.expectedFraction, resp.DiscountFraction)
				s.Empty(resp.Reason)
			} else {
				s.True(resp.DiscountFraction.IsZero())
				s.Equal(tc.expectedReason, resp.Reason)
			}
		})
	}
}

func (s *PricingServiceSuite) TestResolveCouponIsDeterministic() {
	first, err := s.service.ResolveCoupon(s.GetContext(), "mymlaktr")
	s.NoError(err)

	for i := 0; i < 5; i++ {
		again, err := s.service.ResolveCoupon(s.GetContext(), " MYMLAKTR  ")
		s.NoError(err)
		s.Equal(first.Valid, again.Valid)
		s.Equal(first.Code, again.Code)
		s.True(first.DiscountFraction.Equal(again.DiscountFraction))
	}
}

func (s *PricingServiceSuite) TestComputeFinalPrice() {
	ctx := s.GetContext()

	// Half-off quarterly: 799 * 0.5 = 399.5 rounds half-up to 400
	res, err := s.service.ResolveCoupon(ctx, "MYMLAKTR")
	s.NoError(err)
	quote, err := s.service.ComputeFinalPrice(ctx, "quarterly", res)
	s.NoError(err)
	s.Equal(int64(799), quote.OriginalPriceMinorUnits)
	s.Equal(int64(400), quote.FinalPriceMinorUnits)

	// 30% off monthly: 299 * 0.7 = 209.3 rounds down to 209
	res, err = s.service.ResolveCoupon(ctx, "MANASRCL")
	s.NoError(err)
	quote, err = s.service.ComputeFinalPrice(ctx, "monthly", res)
	s.NoError(err)
	s.Equal(int64(209), quote.FinalPriceMinorUnits)
}

func (s *PricingServiceSuite) TestComputeFinalPriceWithoutCoupon() {
	ctx := s.GetContext()

	// No resolution at all
	quote, err := s.service.ComputeFinalPrice(ctx, "yearly", nil)
	s.NoError(err)
	s.Equal(int64(2499), quote.OriginalPriceMinorUnits)
	s.Equal(int64(2499), quote.FinalPriceMinorUnits)
	s.True(quote.DiscountFraction.IsZero())

	// An invalid resolution leaves the listed price unchanged
	res, err := s.service.ResolveCoupon(ctx, "NOPE")
	s.NoError(err)
	quote, err = s.service.ComputeFinalPrice(ctx, "quarterly", res)
	s.NoError(err)
	s.Equal(int64(799), quote.FinalPriceMinorUnits)
}

func (s *PricingServiceSuite) TestComputeFinalPriceUnknownPlan() {
	_, err := s.service.ComputeFinalPrice(s.GetContext(), "weekly", nil)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PricingServiceSuite) TestComputeBillDiscount() {
	normal := types.UserTierNormal
	vip := types.UserTierVIP

	testCases := []struct {
		name        string
		merchantID  string
		gross       int64
		tier        *types.UserTier
		expectedNet int64
	}{
		{name: "dineout_normal", merchantID: "dineout-central", gross: 1000, tier: &normal, expectedNet: 950},
		{name: "dineout_vip", merchantID: "dineout-central", gross: 1000, tier: &vip, expectedNet: 900},
		{name: "grand_bazaar_vip", merchantID: "grand-bazaar", gross: 1000, tier: &vip, expectedNet: 850},
		{name: "quick_finance_normal", merchantID: "quick-finance", gross: 1000, tier: &normal, expectedNet: 980},
		{name: "rounds_half_up", merchantID: "electro-mart", gross: 50, tier: &normal, expectedNet: 49}, // 50*0.97=48.5
		{name: "zero_amount", merchantID: "city-care", gross: 0, tier: &vip, expectedNet: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.ComputeBillDiscount(s.GetContext(), dto.BillQuoteRequest{
				MerchantID:            tc.merchantID,
				GrossAmountMinorUnits: tc.gross,
				Tier:                  tc.tier,
			})
			s.NoError(err)
			s.Equal(tc.expectedNet, resp.NetAmountMinorUnits)
			s.Equal(*tc.tier, resp.Tier)
		})
	}
}

func (s *PricingServiceSuite) TestComputeBillDiscountDerivesTierFromSubscription() {
	phone := "+8801712345678"
	ctx := types.WithUserPhone(s.GetContext(), phone)
	now := s.GetClock().Now()

	// No subscription record: defaults to normal
	resp, err := s.service.ComputeBillDiscount(ctx, dto.BillQuoteRequest{
		MerchantID:            "dineout-central",
		GrossAmountMinorUnits: 1000,
	})
	s.NoError(err)
	s.Equal(types.UserTierNormal, resp.Tier)
	s.Equal(int64(950), resp.NetAmountMinorUnits)

	// Active subscription: derived VIP
	err = s.GetStores().SubscriptionRepo.Upsert(ctx, &subscription.Subscription{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		UserPhone: phone,
		PlanID:    "monthly",
		StartDate: now,
		EndDate:   types.AddClampedDate(now, 0, 1, 0),
		IsActive:  true,
	})
	s.NoError(err)

	resp, err = s.service.ComputeBillDiscount(ctx, dto.BillQuoteRequest{
		MerchantID:            "dineout-central",
		GrossAmountMinorUnits: 1000,
	})
	s.NoError(err)
	s.Equal(types.UserTierVIP, resp.Tier)
	s.Equal(int64(900), resp.NetAmountMinorUnits)

	// Natural expiry drops the derived tier back to normal
	s.GetClock().Advance(32 * 24 * time.Hour)
	resp, err = s.service.ComputeBillDiscount(ctx, dto.BillQuoteRequest{
		MerchantID:            "dineout-central",
		GrossAmountMinorUnits: 1000,
	})
	s.NoError(err)
	s.Equal(types.UserTierNormal, resp.Tier)
}

func (s *PricingServiceSuite) TestComputeBillDiscountErrors() {
	_, err := s.service.ComputeBillDiscount(s.GetContext(), dto.BillQuoteRequest{
		MerchantID:            "no-such-merchant",
		GrossAmountMinorUnits: 100,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	_, err = s.service.ComputeBillDiscount(s.GetContext(), dto.BillQuoteRequest{
		MerchantID:            "dineout-central",
		GrossAmountMinorUnits: -1,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
