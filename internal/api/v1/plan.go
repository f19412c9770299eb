package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mymlak/mymlak/internal/logger"
	"github.com/mymlak/mymlak/internal/service"
)

type PlanHandler struct {
	pricingService service.PricingService
	logger         *logger.Logger
}

func NewPlanHandler(pricingService service.PricingService, logger *logger.Logger) *PlanHandler {
	return &PlanHandler{
		pricingService: pricingService,
		logger:         logger,
	}
}

// ListPlans returns the subscription plan catalog.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	response, err := h.pricingService.GetPlans(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
