package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mymlak/mymlak/internal/api/dto"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/logger"
	"github.com/mymlak/mymlak/internal/service"
)

type BillingHandler struct {
	pricingService service.PricingService
	logger         *logger.Logger
}

func NewBillingHandler(pricingService service.PricingService, logger *logger.Logger) *BillingHandler {
	return &BillingHandler{
		pricingService: pricingService,
		logger:         logger,
	}
}

// ListMerchants returns the partner merchants and their per-tier discounts.
func (h *BillingHandler) ListMerchants(c *gin.Context) {
	response, err := h.pricingService.GetMerchants(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// QuoteBill computes the discounted total of an ad-hoc bill.
func (h *BillingHandler) QuoteBill(c *gin.Context) {
	var req dto.BillQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.pricingService.ComputeBillDiscount(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
