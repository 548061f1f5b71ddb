package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenai-backend/internal/domain"
	"greenai-backend/internal/service"
)

// UserHandler mantiene dependencias para endpoints de perfiles.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
	sessions *service.SessionService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService, sessions *service.SessionService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		userServ: userServ,
		sessions: sessions,
	}
}

// AddUserDetails maneja POST /userdetails.
func (h *UserHandler) AddUserDetails(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Mobile   string `json:"mobile" binding:"required"`
		Language string `json:"language" binding:"required"`
		Location string `json:"location" binding:"required"`
		Crops    string `json:"crops" binding:"required"`
		LandSize string `json:"land_size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid userdetails request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request"})
		return
	}

	id, err := h.userServ.CreateProfile(c.Request.Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Language: req.Language,
		Location: req.Location,
		Crops:    req.Crops,
		LandSize: req.LandSize,
	})
	if err != nil {
		h.logger.Error("create userdetails failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User details added", "id": id})
}

// GetActiveUserDetails maneja GET /get_active_user_details.
func (h *UserHandler) GetActiveUserDetails(c *gin.Context) {
	user, err := h.sessions.CurrentProfile(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActiveNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "No active user found"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User details not found for active user"})
		default:
			h.logger.Error("get active user details failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"data":    user,
		"message": "User details retrieved successfully",
	})
}

// GetCurrentUser maneja GET /get_current_user. Mismo resolver que
// GetActiveUserDetails pero con el payload bajo "user" y sin id.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.sessions.CurrentProfile(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActiveNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "No active user found"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User details not found"})
		default:
			h.logger.Error("get current user failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user": gin.H{
			"name":      user.Name,
			"email":     user.Email,
			"mobile":    user.Mobile,
			"language":  user.Language,
			"location":  user.Location,
			"crops":     user.Crops,
			"land_size": user.LandSize,
		},
	})
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Language string `json:"language"`
	Location string `json:"location"`
	Crops    string `json:"crops"`
	LandSize string `json:"land_size"`
}

// UpdateUserProfile maneja PUT /update_user_profile.
func (h *UserHandler) UpdateUserProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil || req == (updateProfileRequest{}) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "No data provided"})
		return
	}

	user, err := h.userServ.UpdateCurrentProfile(c.Request.Context(), service.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Language: req.Language,
		Location: req.Location,
		Crops:    req.Crops,
		LandSize: req.LandSize,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActiveNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "No active user found"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User not found"})
		default:
			h.logger.Error("update user profile failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"data":    user,
		"message": "Profile updated successfully",
	})
}
