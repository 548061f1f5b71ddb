package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"greenai-backend/internal/config"
	"greenai-backend/internal/db"
	"greenai-backend/internal/email"
	apihttp "greenai-backend/internal/http"
	"greenai-backend/internal/repository"
	"greenai-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	activeRepo := repository.NewPgActiveRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)
	reminderRepo := repository.NewPgReminderRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	// Sin Redis no hay throttle: una nueva solicitud reemplaza el codigo
	// anterior sin cooldown.
	var otpLimiter service.OTPRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			otpLimiter = service.NewRedisOTPRateLimiter(
				redisClient,
				time.Duration(cfg.OTPRateWindowMinutes)*time.Minute,
				cfg.OTPRateMax,
			)
		}
		cancel()
	}

	registry := service.NewOTPRegistry()
	authSvc := service.NewAuthService(logger, userRepo, activeRepo, registry, emailSender, otpLimiter)
	sessionSvc := service.NewSessionService(activeRepo, userRepo)
	userSvc := service.NewUserService(logger, userRepo, sessionSvc)
	chatSvc := service.NewChatService(messageRepo)
	reminderSvc := service.NewReminderService(reminderRepo)

	authHandler := apihttp.NewAuthHandler(logger, authSvc)
	userHandler := apihttp.NewUserHandler(logger, userSvc, sessionSvc)
	chatHandler := apihttp.NewChatHandler(logger, chatSvc)
	reminderHandler := apihttp.NewReminderHandler(logger, reminderSvc)
	router := apihttp.NewRouter(logger, authHandler, userHandler, chatHandler, reminderHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
