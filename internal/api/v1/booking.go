package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mymlak/mymlak/internal/api/dto"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/logger"
	"github.com/mymlak/mymlak/internal/service"
)

type BookingHandler struct {
	bookingService service.BookingService
	logger         *logger.Logger
}

func NewBookingHandler(bookingService service.BookingService, logger *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// CreateBooking submits a new pending request/order.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.bookingService.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ConfirmBooking submits a pending booking for completion.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("booking ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.bookingService.Confirm(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CancelBooking cancels a pending booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("booking ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetBooking returns one of the caller's bookings.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("booking ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListBookings returns the caller's bookings, newest first.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	response, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
