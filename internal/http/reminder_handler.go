package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenai-backend/internal/domain"
	"greenai-backend/internal/service"
)

// ReminderHandler mantiene dependencias para los recordatorios de cultivo.
type ReminderHandler struct {
	logger       *zap.Logger
	reminderServ *service.ReminderService
}

func NewReminderHandler(logger *zap.Logger, reminderServ *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		logger:       logger,
		reminderServ: reminderServ,
	}
}

// CreateReminder maneja POST /api/reminders.
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req struct {
		UserID       int64  `json:"user_id"`
		ReminderType string `json:"reminder_type" binding:"required"`
		CropType     string `json:"crop_type" binding:"required"`
		Date         string `json:"date" binding:"required"`
		Time         string `json:"time" binding:"required"`
		IntervalType string `json:"interval_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error creating reminder: %v", err),
		})
		return
	}

	reminder, err := h.reminderServ.Create(c.Request.Context(), service.CreateReminderInput{
		UserID:       req.UserID,
		ReminderType: req.ReminderType,
		CropType:     req.CropType,
		Date:         req.Date,
		Time:         req.Time,
		IntervalType: req.IntervalType,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error creating reminder: %v", err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Reminder created successfully",
		"reminder": reminder.View(),
	})
}

// GetReminders maneja GET /api/reminders.
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	userID, _ := strconv.ParseInt(c.DefaultQuery("user_id", "1"), 10, 64)

	reminders, err := h.reminderServ.ListActive(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list reminders failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error fetching reminders: %v", err),
		})
		return
	}

	views := make([]domain.ReminderView, 0, len(reminders))
	for _, r := range reminders {
		views = append(views, r.View())
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"reminders": views,
	})
}

// UpdateReminder maneja PUT /api/reminders/:id.
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Reminder not found"})
		return
	}

	var req struct {
		ReminderType string `json:"reminder_type"`
		CropType     string `json:"crop_type"`
		Date         string `json:"date"`
		Time         string `json:"time"`
		IntervalType string `json:"interval_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error updating reminder: %v", err),
		})
		return
	}

	reminder, err := h.reminderServ.Update(c.Request.Context(), id, service.UpdateReminderInput{
		ReminderType: req.ReminderType,
		CropType:     req.CropType,
		Date:         req.Date,
		Time:         req.Time,
		IntervalType: req.IntervalType,
	})
	if err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Reminder not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error updating reminder: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Reminder updated successfully",
		"reminder": reminder.View(),
	})
}

// DeleteReminder maneja DELETE /api/reminders/:id.
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Reminder not found"})
		return
	}

	if err := h.reminderServ.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Reminder not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error deleting reminder: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Reminder deleted successfully",
	})
}
