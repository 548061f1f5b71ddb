package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	authH *AuthHandler,
	userH *UserHandler,
	chatH *ChatHandler,
	reminderH *ReminderHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: request id, logging, recovery y JSON content-type.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	// Flujo de verificacion.
	r.POST("/send_otp", authH.SendOTP)
	r.POST("/verify_otp", authH.VerifyOTP)
	r.POST("/check_email", authH.CheckEmail)
	r.POST("/add_active", authH.AddActive)

	// Perfiles.
	r.POST("/userdetails", userH.AddUserDetails)
	r.GET("/get_active_user_details", userH.GetActiveUserDetails)
	r.GET("/get_current_user", userH.GetCurrentUser)
	r.PUT("/update_user_profile", userH.UpdateUserProfile)

	// Chat comunitario.
	r.POST("/send_message", chatH.SendMessage)
	r.GET("/get_messages", chatH.GetMessages)

	// Recordatorios.
	api := r.Group("/api")
	api.POST("/reminders", reminderH.CreateReminder)
	api.GET("/reminders", reminderH.GetReminders)
	api.PUT("/reminders/:id", reminderH.UpdateReminder)
	api.DELETE("/reminders/:id", reminderH.DeleteReminder)

	return r
}

// requestIDMiddleware adjunta un id por request, respetando el del cliente.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
