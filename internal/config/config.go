package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Pricing    PricingConfig    `validate:"required"`
	Simulation SimulationConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// PricingConfig carries the pricing tables injected into the engine at
// construction time: the plan catalog, the coupon table and the per-merchant
// discount table. All three are immutable once loaded.
type PricingConfig struct {
	Plans     []PlanConfig     `validate:"required,min=1,dive"`
	Coupons   []CouponConfig   `validate:"dive"`
	Merchants []MerchantConfig `validate:"dive"`
}

type PlanConfig struct {
	ID              string   `mapstructure:"id" validate:"required"`
	Name            string   `mapstructure:"name" validate:"required"`
	PriceMinorUnits int64    `mapstructure:"price_minor_units" validate:"gte=0"`
	DurationMonths  int      `mapstructure:"duration_months" validate:"gt=0"`
	Features        []string `mapstructure:"features"`
	IsPopular       bool     `mapstructure:"is_popular"`
}

type CouponConfig struct {
	Code             string  `mapstructure:"code" validate:"required"`
	DiscountFraction float64 `mapstructure:"discount_fraction" validate:"gte=0,lt=1"`
}

type MerchantConfig struct {
	ID             string  `mapstructure:"id" validate:"required"`
	Name           string  `mapstructure:"name" validate:"required"`
	Category       string  `mapstructure:"category" validate:"required"`
	NormalDiscount float64 `mapstructure:"normal_discount" validate:"gte=0,lt=1"`
	VIPDiscount    float64 `mapstructure:"vip_discount" validate:"gte=0,lt=1"`
}

// SimulationConfig holds the artificial latencies that stand in for network
// round-trips (OTP verification, request submission). Tests run with zero
// delays.
type SimulationConfig struct {
	SubmitLatency time.Duration `mapstructure:"submit_latency"`
	OTPLatency    time.Duration `mapstructure:"otp_latency"`
}

func NewConfig() (*Configuration, error) {
	// Best effort; a missing .env file is not an error
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/mymlak")

	v.SetEnvPrefix("MLAK")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	config := GetDefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return c.Pricing.validateTables()
}

// validateTables enforces the invariants the struct tags cannot express:
// exactly one catalog entry per id and normalized, unique coupon codes. A
// malformed catalog is a programmer error and must fail startup.
func (p PricingConfig) validateTables() error {
	planIDs := make(map[string]struct{}, len(p.Plans))
	for _, plan := range p.Plans {
		if _, ok := planIDs[plan.ID]; ok {
			return fmt.Errorf("duplicate plan id in catalog: %s", plan.ID)
		}
		planIDs[plan.ID] = struct{}{}

		if !types.PlanPeriod(plan.ID).Validate() {
			return fmt.Errorf("unknown plan period: %s", plan.ID)
		}
	}

	couponCodes := make(map[string]struct{}, len(p.Coupons))
	for _, coupon := range p.Coupons {
		code := strings.ToUpper(strings.TrimSpace(coupon.Code))
		if code == "" {
			return fmt.Errorf("empty coupon code in table")
		}
		if _, ok := couponCodes[code]; ok {
			return fmt.Errorf("duplicate coupon code in table: %s", code)
		}
		couponCodes[code] = struct{}{}
	}

	merchantIDs := make(map[string]struct{}, len(p.Merchants))
	for _, merchant := range p.Merchants {
		if _, ok := merchantIDs[merchant.ID]; ok {
			return fmt.Errorf("duplicate merchant id in table: %s", merchant.ID)
		}
		merchantIDs[merchant.ID] = struct{}{}
	}

	return nil
}

// GetDefaultConfig returns the stock configuration: the production plan
// catalog, coupon table and merchant discount table. Values from config.yaml
// or MLAK_* environment variables override these.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
		Pricing: PricingConfig{
			Plans: []PlanConfig{
				{
					ID:              "monthly",
					Name:            "VIP Monthly",
					PriceMinorUnits: 299,
					DurationMonths:  1,
					Features: []string{
						"Up to 10% off on dine-out bills",
						"VIP rates at partner merchants",
						"Priority request handling",
					},
				},
				{
					ID:              "quarterly",
					Name:            "VIP Quarterly",
					PriceMinorUnits: 799,
					DurationMonths:  3,
					Features: []string{
						"Everything in monthly",
						"Quarterly partner vouchers",
					},
					IsPopular: true,
				},
				{
					ID:              "yearly",
					Name:            "VIP Yearly",
					PriceMinorUnits: 2499,
					DurationMonths:  12,
					Features: []string{
						"Everything in quarterly",
						"Best value over 12 months",
					},
				},
			},
			Coupons: []CouponConfig{
				{Code: "MYMLAKTR", DiscountFraction: 0.5},
				{Code: "MANASRCL", DiscountFraction: 0.3},
			},
			Merchants: []MerchantConfig{
				{ID: "dineout-central", Name: "Dine Out Central", Category: "dine_out", NormalDiscount: 0.05, VIPDiscount: 0.10},
				{ID: "fashion-hub", Name: "Fashion Hub", Category: "shopping", NormalDiscount: 0.05, VIPDiscount: 0.10},
				{ID: "electro-mart", Name: "Electro Mart", Category: "shopping", NormalDiscount: 0.03, VIPDiscount: 0.07},
				{ID: "grand-bazaar", Name: "Grand Bazaar", Category: "shopping", NormalDiscount: 0.08, VIPDiscount: 0.15},
				{ID: "city-care", Name: "City Care Clinic", Category: "healthcare", NormalDiscount: 0.05, VIPDiscount: 0.12},
				{ID: "auto-garage", Name: "Auto Garage", Category: "automobile", NormalDiscount: 0.03, VIPDiscount: 0.08},
				{ID: "quick-finance", Name: "Quick Finance", Category: "financial", NormalDiscount: 0.02, VIPDiscount: 0.05},
			},
		},
		Simulation: SimulationConfig{
			SubmitLatency: 1500 * time.Millisecond,
			OTPLatency:    time.Second,
		},
	}
}
