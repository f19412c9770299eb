package dto

import (
	"github.com/mymlak/mymlak/internal/domain/plan"
)

// PlanResponse is the read-only catalog entry returned to clients.
type PlanResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	PriceMinorUnits int64    `json:"price_minor_units"`
	DurationMonths  int      `json:"duration_months"`
	Features        []string `json:"features"`
	IsPopular       bool     `json:"is_popular"`
}

// ListPlansResponse wraps the full plan catalog.
type ListPlansResponse struct {
	Items []*PlanResponse `json:"items"`
	Total int             `json:"total"`
}

func NewPlanResponse(p *plan.Plan) *PlanResponse {
	return &PlanResponse{
		ID:              p.ID,
		Name:            p.Name,
		PriceMinorUnits: p.PriceMinorUnits,
		DurationMonths:  p.DurationMonths,
		Features:        p.Features,
		IsPopular:       p.IsPopular,
	}
}
