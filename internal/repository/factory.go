package repository

import (
	"github.com/mymlak/mymlak/internal/cache"
	"github.com/mymlak/mymlak/internal/config"
	"github.com/mymlak/mymlak/internal/domain/booking"
	"github.com/mymlak/mymlak/internal/domain/coupon"
	"github.com/mymlak/mymlak/internal/domain/merchant"
	"github.com/mymlak/mymlak/internal/domain/plan"
	"github.com/mymlak/mymlak/internal/domain/session"
	"github.com/mymlak/mymlak/internal/domain/subscription"
	"github.com/mymlak/mymlak/internal/repository/inmemory"
)

// The process owns all state in memory: catalog repositories are seeded from
// configuration, mutable repositories start empty, and the session store sits
// on the key-value cache. There is no durable persistence layer by design.

func NewPlanRepository(cfg *config.Configuration) plan.Repository {
	return inmemory.NewInMemoryPlanStore(plan.FromConfigList(cfg.Pricing.Plans))
}

func NewCouponRepository(cfg *config.Configuration) coupon.Repository {
	return inmemory.NewInMemoryCouponStore(coupon.FromConfigList(cfg.Pricing.Coupons))
}

func NewMerchantRepository(cfg *config.Configuration) merchant.Repository {
	return inmemory.NewInMemoryMerchantStore(merchant.FromConfigList(cfg.Pricing.Merchants))
}

func NewSubscriptionRepository() subscription.Repository {
	return inmemory.NewInMemorySubscriptionStore()
}

func NewBookingRepository() booking.Repository {
	return inmemory.NewInMemoryBookingStore()
}

func NewSessionRepository(kv cache.Cache) session.Repository {
	return inmemory.NewKVSessionStore(kv)
}
