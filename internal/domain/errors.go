package domain

import "errors"

// Errores centinela compartidos entre servicios y handlers.
var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrUserNotFound     = errors.New("user not found")
	ErrActiveNotFound   = errors.New("no active user found")
	ErrAlreadyActive    = errors.New("email already active")
	ErrOTPInvalid       = errors.New("invalid otp")
	ErrEmailSendFailure = errors.New("email send failed")
	ErrRateLimited      = errors.New("rate limited")
	ErrReminderNotFound = errors.New("reminder not found")
)
