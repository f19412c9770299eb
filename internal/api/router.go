package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/mymlak/mymlak/internal/api/v1"
	"github.com/mymlak/mymlak/internal/config"
	"github.com/mymlak/mymlak/internal/domain/session"
	"github.com/mymlak/mymlak/internal/logger"
	"github.com/mymlak/mymlak/internal/rest/middleware"
	"github.com/mymlak/mymlak/internal/types"
)

type Handlers struct {
	Health       *v1.HealthHandler
	Plan         *v1.PlanHandler
	Coupon       *v1.CouponHandler
	Subscription *v1.SubscriptionHandler
	Billing      *v1.BillingHandler
	Auth         *v1.AuthHandler
	Booking      *v1.BookingHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger, sessionRepo session.Repository) *gin.Engine {
	if cfg.Deployment.Mode == types.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Infow("setting up router", "mode", cfg.Deployment.Mode)
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.CORSMiddleware(),
		middleware.SessionContext(sessionRepo),
		middleware.ErrorHandler(),
		gin.Recovery(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/verify", handlers.Auth.VerifyOTP)
		auth.PUT("/profile", handlers.Auth.CompleteProfile)
		auth.POST("/logout", handlers.Auth.Logout)
		auth.GET("/me", handlers.Auth.Me)
	}

	// Plan routes
	plans := router.Group("/plans")
	{
		plans.GET("", handlers.Plan.ListPlans)
	}

	// Coupon routes
	coupons := router.Group("/coupons")
	{
		coupons.POST("/resolve", handlers.Coupon.ResolveCoupon)
	}

	// Subscription routes
	subscriptions := router.Group("/subscriptions")
	{
		subscriptions.POST("", handlers.Subscription.Subscribe)
		subscriptions.POST("/cancel", handlers.Subscription.Cancel)
		subscriptions.GET("/status", handlers.Subscription.GetStatus)
	}

	// Merchant and billing routes
	merchants := router.Group("/merchants")
	{
		merchants.GET("", handlers.Billing.ListMerchants)
	}
	billing := router.Group("/billing")
	{
		billing.POST("/quote", handlers.Billing.QuoteBill)
	}

	// Booking routes
	bookings := router.Group("/bookings")
	{
		bookings.POST("", handlers.Booking.CreateBooking)
		bookings.GET("", handlers.Booking.ListBookings)
		bookings.GET("/:id", handlers.Booking.GetBooking)
		bookings.POST("/:id/confirm", handlers.Booking.ConfirmBooking)
		bookings.POST("/:id/cancel", handlers.Booking.CancelBooking)
	}
}
