package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mymlak/mymlak/internal/api/dto"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/logger"
	"github.com/mymlak/mymlak/internal/service"
)

type CouponHandler struct {
	pricingService service.PricingService
	logger         *logger.Logger
}

func NewCouponHandler(pricingService service.PricingService, logger *logger.Logger) *CouponHandler {
	return &CouponHandler{
		pricingService: pricingService,
		logger:         logger,
	}
}

// ResolveCoupon checks a user-entered code against the coupon table. An
// unrecognized code is a 200 with valid=false, not an error.
func (h *CouponHandler) ResolveCoupon(c *gin.Context) {
	var req dto.ResolveCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.pricingService.ResolveCoupon(c.Request.Context(), req.Code)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
