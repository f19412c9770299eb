package testutil

import (
	"context"
	"time"

	"github.com/mymlak/mymlak/internal/cache"
	"github.com/mymlak/mymlak/internal/config"
	"github.com/mymlak/mymlak/internal/domain/booking"
	"github.com/mymlak/mymlak/internal/domain/coupon"
	"github.com/mymlak/mymlak/internal/domain/merchant"
	"github.com/mymlak/mymlak/internal/domain/plan"
	"github.com/mymlak/mymlak/internal/domain/session"
	"github.com/mymlak/mymlak/internal/domain/subscription"
	"github.com/mymlak/mymlak/internal/logger"
	"github.com/mymlak/mymlak/internal/repository/inmemory"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/mymlak/mymlak/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	PlanRepo         plan.Repository
	CouponRepo       coupon.Repository
	MerchantRepo     merchant.Repository
	SubscriptionRepo subscription.Repository
	BookingRepo      booking.Repository
	SessionRepo      session.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	kv     cache.Cache
	logger *logger.Logger
	config *config.Configuration
	clock  *FakeClock
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	// Default catalog, zero simulated latencies
	cfg := config.GetDefaultConfig()
	cfg.Simulation = config.SimulationConfig{}

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.clock = NewFakeClock(time.Now().UTC())
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = types.WithRequestID(s.ctx, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.kv = cache.NewInMemoryCache()
	s.stores = Stores{
		PlanRepo:         inmemory.NewInMemoryPlanStore(plan.FromConfigList(s.config.Pricing.Plans)),
		CouponRepo:       inmemory.NewInMemoryCouponStore(coupon.FromConfigList(s.config.Pricing.Coupons)),
		MerchantRepo:     inmemory.NewInMemoryMerchantStore(merchant.FromConfigList(s.config.Pricing.Merchants)),
		SubscriptionRepo: inmemory.NewInMemorySubscriptionStore(),
		BookingRepo:      inmemory.NewInMemoryBookingStore(),
		SessionRepo:      inmemory.NewKVSessionStore(s.kv),
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.SubscriptionRepo.(*inmemory.InMemorySubscriptionStore).Clear()
	s.stores.BookingRepo.(*inmemory.InMemoryBookingStore).Clear()
	s.kv.Flush(s.ctx)
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetClock returns the manually controlled test clock
func (s *BaseServiceTestSuite) GetClock() *FakeClock {
	return s.clock
}
