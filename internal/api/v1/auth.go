package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mymlak/mymlak/internal/api/dto"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/logger"
	"github.com/mymlak/mymlak/internal/service"
)

type AuthHandler struct {
	sessionService service.SessionService
	logger         *logger.Logger
}

func NewAuthHandler(sessionService service.SessionService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Login issues an OTP challenge for the given phone number.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.sessionService.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// VerifyOTP completes the pending challenge and establishes the session.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.sessionService.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CompleteProfile sets the display name on the current session.
func (h *AuthHandler) CompleteProfile(c *gin.Context) {
	var req dto.CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.sessionService.CompleteProfile(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout removes the stored session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the current session, if any.
func (h *AuthHandler) Me(c *gin.Context) {
	response, err := h.sessionService.Current(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
