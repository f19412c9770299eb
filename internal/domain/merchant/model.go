package merchant

import (
	"github.com/mymlak/mymlak/internal/config"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/shopspring/decimal"
)

// Merchant is a partner offering per-tier bill discounts. Discount fractions
// vary per merchant; they are never a single global constant.
type Merchant struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Category       types.MerchantCategory `json:"category"`
	NormalDiscount decimal.Decimal        `json:"normal_discount"`
	VIPDiscount    decimal.Decimal        `json:"vip_discount"`
}

// DiscountFor returns the discount fraction for the given user tier.
func (m *Merchant) DiscountFor(tier types.UserTier) decimal.Decimal {
	if tier == types.UserTierVIP {
		return m.VIPDiscount
	}
	return m.NormalDiscount
}

// FromConfig converts a merchant table config entry to a domain Merchant
func FromConfig(c config.MerchantConfig) *Merchant {
	return &Merchant{
		ID:             c.ID,
		Name:           c.Name,
		Category:       types.MerchantCategory(c.Category),
		NormalDiscount: decimal.NewFromFloat(c.NormalDiscount),
		VIPDiscount:    decimal.NewFromFloat(c.VIPDiscount),
	}
}

// FromConfigList converts merchant table config entries to domain Merchants
func FromConfigList(list []config.MerchantConfig) []*Merchant {
	merchants := make([]*Merchant, len(list))
	for i, item := range list {
		merchants[i] = FromConfig(item)
	}
	return merchants
}
