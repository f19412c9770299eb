package dto

import (
	"github.com/mymlak/mymlak/internal/domain/merchant"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/shopspring/decimal"
)

// MerchantResponse exposes a partner merchant and its per-tier discounts.
type MerchantResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Category       types.MerchantCategory `json:"category"`
	NormalDiscount decimal.Decimal        `json:"normal_discount"`
	VIPDiscount    decimal.Decimal        `json:"vip_discount"`
}

// ListMerchantsResponse wraps the merchant table.
type ListMerchantsResponse struct {
	Items []*MerchantResponse `json:"items"`
	Total int                 `json:"total"`
}

func NewMerchantResponse(m *merchant.Merchant) *MerchantResponse {
	return &MerchantResponse{
		ID:             m.ID,
		Name:           m.Name,
		Category:       m.Category,
		NormalDiscount: m.NormalDiscount,
		VIPDiscount:    m.VIPDiscount,
	}
}
