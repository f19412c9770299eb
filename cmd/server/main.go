package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mymlak/mymlak/internal/api"
	v1 "github.com/mymlak/mymlak/internal/api/v1"
	"github.com/mymlak/mymlak/internal/cache"
	"github.com/mymlak/mymlak/internal/config"
	"github.com/mymlak/mymlak/internal/domain/session"
	"github.com/mymlak/mymlak/internal/logger"
	"github.com/mymlak/mymlak/internal/repository"
	"github.com/mymlak/mymlak/internal/service"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/mymlak/mymlak/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Clock
			types.NewRealClock,

			// Cache
			provideCache,

			// Repositories
			repository.NewPlanRepository,
			repository.NewCouponRepository,
			repository.NewMerchantRepository,
			repository.NewSubscriptionRepository,
			repository.NewBookingRepository,
			repository.NewSessionRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewPricingService,
			service.NewSubscriptionService,
			service.NewSessionService,
			service.NewBookingService,
		),
	)

	// API layer
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			// Register the request validator before the server starts
			validator.NewValidator,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideCache() cache.Cache {
	return cache.NewInMemoryCache()
}

func provideHandlers(
	logger *logger.Logger,
	pricingService service.PricingService,
	subscriptionService service.SubscriptionService,
	sessionService service.SessionService,
	bookingService service.BookingService,
) api.Handlers {
	return api.Handlers{
		Health:       v1.NewHealthHandler(),
		Plan:         v1.NewPlanHandler(pricingService, logger),
		Coupon:       v1.NewCouponHandler(pricingService, logger),
		Subscription: v1.NewSubscriptionHandler(subscriptionService, logger),
		Billing:      v1.NewBillingHandler(pricingService, logger),
		Auth:         v1.NewAuthHandler(sessionService, logger),
		Booking:      v1.NewBookingHandler(bookingService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger, sessionRepo session.Repository) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger, sessionRepo)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
