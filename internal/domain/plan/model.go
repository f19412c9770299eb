package plan

import (
	"github.com/mymlak/mymlak/internal/config"
	"github.com/mymlak/mymlak/internal/types"
)

// Plan is a purchasable subscription bundle. The catalog is loaded from
// configuration at startup and is immutable at runtime; Features and IsPopular
// are presentation hints with no pricing behavior.
type Plan struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	PriceMinorUnits int64    `json:"price_minor_units"`
	DurationMonths  int      `json:"duration_months"`
	Features        []string `json:"features"`
	IsPopular       bool     `json:"is_popular"`
}

// Period maps the plan id onto its calendar period.
func (p *Plan) Period() types.PlanPeriod {
	return types.PlanPeriod(p.ID)
}

// FromConfig converts a catalog config entry to a domain Plan
func FromConfig(c config.PlanConfig) *Plan {
	return &Plan{
		ID:              c.ID,
		Name:            c.Name,
		PriceMinorUnits: c.PriceMinorUnits,
		DurationMonths:  c.DurationMonths,
		Features:        c.Features,
		IsPopular:       c.IsPopular,
	}
}

// FromConfigList converts catalog config entries to domain Plans
func FromConfigList(list []config.PlanConfig) []*Plan {
	plans := make([]*Plan, len(list))
	for i, item := range list {
		plans[i] = FromConfig(item)
	}
	return plans
}
