package service

import (
	"context"

	"github.com/mymlak/mymlak/internal/api/dto"
	"github.com/mymlak/mymlak/internal/domain/coupon"
	"github.com/mymlak/mymlak/internal/domain/merchant"
	"github.com/mymlak/mymlak/internal/domain/plan"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PricingService owns the deterministic pricing computations: coupon
// resolution, plan price quotes and per-merchant bill discounts. It never
// errors for expected business conditions; unknown coupons resolve to a zero
// discount and only unknown plan or merchant ids are surfaced as errors.
type PricingService interface {
	GetPlans(ctx context.Context) (*dto.ListPlansResponse, error)
	GetMerchants(ctx context.Context) (*dto.ListMerchantsResponse, error)
	ResolveCoupon(ctx context.Context, rawCode string) (*dto.CouponResolutionResponse, error)
	ComputeFinalPrice(ctx context.Context, planID string, resolution *dto.CouponResolutionResponse) (*dto.PriceQuoteResponse, error)
	ComputeBillDiscount(ctx context.Context, req dto.BillQuoteRequest) (*dto.BillQuoteResponse, error)
}

type pricingService struct {
	ServiceParams
}

// NewPricingService creates a new pricing service
func NewPricingService(params ServiceParams) PricingService {
	return &pricingService{
		ServiceParams: params,
	}
}

// GetPlans returns the plan catalog in display order.
func (s *pricingService) GetPlans(ctx context.Context) (*dto.ListPlansResponse, error) {
	plans, err := s.PlanRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(plans, func(p *plan.Plan, _ int) *dto.PlanResponse {
		return dto.NewPlanResponse(p)
	})

	return &dto.ListPlansResponse{
		Items: items,
		Total: len(items),
	}, nil
}

// GetMerchants returns the merchant discount table.
func (s *pricingService) GetMerchants(ctx context.Context) (*dto.ListMerchantsResponse, error) {
	merchants, err := s.MerchantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(merchants, func(m *merchant.Merchant, _ int) *dto.MerchantResponse {
		return dto.NewMerchantResponse(m)
	})

	return &dto.ListMerchantsResponse{
		Items: items,
		Total: len(items),
	}, nil
}

// ResolveCoupon normalizes and looks up a user-entered code. The result is a
// pure function of trim(uppercase(code)); there are no side effects.
func (s *pricingService) ResolveCoupon(ctx context.Context, rawCode string) (*dto.CouponResolutionResponse, error) {
	code := coupon.NormalizeCode(rawCode)
	if code == "" {
		return dto.NewCouponResolutionResponse(coupon.Resolution{
			Valid:            false,
			DiscountFraction: decimal.Zero,
			Reason:           coupon.ReasonMissingCode,
		}), nil
	}

	c, err := s.CouponRepo.GetByCode(ctx, code)
	if err != nil {
		if ierr.IsNotFound(err) {
			return dto.NewCouponResolutionResponse(coupon.Resolution{
				Valid:            false,
				Code:             code,
				DiscountFraction: decimal.Zero,
				Reason:           coupon.ReasonUnrecognizedCode,
			}), nil
		}
		return nil, err
	}

	return dto.NewCouponResolutionResponse(coupon.Resolution{
		Valid:            true,
		Code:             c.Code,
		DiscountFraction: c.DiscountFraction,
	}), nil
}

// ComputeFinalPrice applies a coupon resolution to a plan's listed price.
// The final price is rounded half-up and floored at zero; an invalid
// resolution leaves the listed price unchanged.
func (s *pricingService) ComputeFinalPrice(ctx context.Context, planID string, resolution *dto.CouponResolutionResponse) (*dto.PriceQuoteResponse, error) {
	p, err := s.PlanRepo.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	fraction := decimal.Zero
	if resolution != nil && resolution.Valid {
		fraction = resolution.DiscountFraction
	}

	return &dto.PriceQuoteResponse{
		PlanID:                  p.ID,
		OriginalPriceMinorUnits: p.PriceMinorUnits,
		FinalPriceMinorUnits:    types.ApplyDiscountFraction(p.PriceMinorUnits, fraction),
		DiscountFraction:        fraction,
	}, nil
}

// ComputeBillDiscount quotes the net amount of an ad-hoc bill at a merchant.
// The tier defaults to the caller's derived subscription tier when not set
// explicitly. Pure computation; nothing is persisted.
func (s *pricingService) ComputeBillDiscount(ctx context.Context, req dto.BillQuoteRequest) (*dto.BillQuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m, err := s.MerchantRepo.Get(ctx, req.MerchantID)
	if err != nil {
		return nil, err
	}

	tier := types.UserTierNormal
	if req.Tier != nil {
		tier = *req.Tier
	} else if phone := types.GetUserPhone(ctx); phone != "" {
		if sub, err := s.SubscriptionRepo.GetByUser(ctx, phone); err == nil {
			if sub.IsCurrentlyActive(s.Clock.Now()) {
				tier = types.UserTierVIP
			}
		}
	}

	fraction := m.DiscountFor(tier)

	return &dto.BillQuoteResponse{
		MerchantID:            m.ID,
		Tier:                  tier,
		GrossAmountMinorUnits: req.GrossAmountMinorUnits,
		DiscountFraction:      fraction,
		NetAmountMinorUnits:   types.ApplyDiscountFraction(req.GrossAmountMinorUnits, fraction),
	}, nil
}
