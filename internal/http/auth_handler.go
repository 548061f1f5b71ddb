package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenai-backend/internal/domain"
	"greenai-backend/internal/service"
)

// AuthHandler mantiene dependencias para el flujo de verificacion OTP.
type AuthHandler struct {
	logger   *zap.Logger
	authServ *service.AuthService
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, authServ *service.AuthService) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		authServ: authServ,
	}
}

// SendOTP maneja POST /send_otp.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email is required"})
		return
	}

	if err := h.authServ.RequestOTP(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email is required"})
		case errors.Is(err, domain.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"status": "error", "message": "Too many OTP requests"})
		case errors.Is(err, domain.ErrEmailSendFailure):
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to send OTP"})
		default:
			h.logger.Error("send otp failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "OTP sent successfully"})
}

// VerifyOTP maneja POST /verify_otp.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email and OTP are required"})
		return
	}

	if err := h.authServ.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid OTP"})
		case errors.Is(err, domain.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email and OTP are required"})
		default:
			h.logger.Error("verify otp failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "OTP verified successfully"})
}

// CheckEmail maneja POST /check_email.
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email is required"})
		return
	}

	if err := h.authServ.CheckEmail(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Email not registered"})
		case errors.Is(err, domain.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email is required"})
		default:
			h.logger.Error("check email failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Email exists"})
}

// AddActive maneja POST /add_active.
func (h *AuthHandler) AddActive(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email is required"})
		return
	}

	if _, err := h.authServ.MarkActive(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyActive):
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "Email already active"})
		case errors.Is(err, domain.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email is required"})
		default:
			h.logger.Error("add active failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Email added to active successfully"})
}
