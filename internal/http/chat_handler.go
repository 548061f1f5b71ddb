package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenai-backend/internal/domain"
	"greenai-backend/internal/service"
)

// ChatHandler mantiene dependencias para el chat comunitario.
type ChatHandler struct {
	logger   *zap.Logger
	chatServ *service.ChatService
}

func NewChatHandler(logger *zap.Logger, chatServ *service.ChatService) *ChatHandler {
	return &ChatHandler{
		logger:   logger,
		chatServ: chatServ,
	}
}

// SendMessage maneja POST /send_message.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Name and message are required"})
		return
	}

	msg, err := h.chatServ.Send(c.Request.Context(), req.Name, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrChatInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Name and message are required"})
			return
		}
		h.logger.Error("send message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message sent successfully",
		"data":    msg,
	})
}

// GetMessages maneja GET /get_messages.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	messages, err := h.chatServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("get messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		return
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"messages": messages,
	})
}
