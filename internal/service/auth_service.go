package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"greenai-backend/internal/domain"
	"greenai-backend/internal/email"
	"greenai-backend/internal/repository"
)

// AuthService coordina el flujo de verificacion: emitir codigo, verificarlo
// y promover la identidad verificada a puntero activo.
type AuthService struct {
	logger      *zap.Logger
	users       repository.UserRepository
	active      repository.ActiveRepository
	registry    *OTPRegistry
	emailSender email.Sender
	otpLimiter  OTPRateLimiter
}

func NewAuthService(
	logger *zap.Logger,
	users repository.UserRepository,
	active repository.ActiveRepository,
	registry *OTPRegistry,
	emailSender email.Sender,
	otpLimiter OTPRateLimiter,
) *AuthService {
	if registry == nil {
		registry = NewOTPRegistry()
	}
	return &AuthService{
		logger:      logger,
		users:       users,
		active:      active,
		registry:    registry,
		emailSender: emailSender,
		otpLimiter:  otpLimiter,
	}
}

// RequestOTP emite un codigo para el email y lo despacha por correo. El
// despacho ocurre fuera del lock del registro. Si el envio falla, el codigo
// ya emitido queda valido igualmente: no hay rollback sobre el registro.
func (s *AuthService) RequestOTP(ctx context.Context, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return domain.ErrInvalidEmail
	}

	if s.otpLimiter != nil && !s.otpLimiter.Allow(emailAddr) {
		return domain.ErrRateLimited
	}

	code, err := s.registry.Issue(emailAddr)
	if err != nil {
		return err
	}

	if s.emailSender == nil {
		return domain.ErrEmailSendFailure
	}
	if err := s.emailSender.SendOTP(ctx, emailAddr, code); err != nil {
		if s.logger != nil {
			s.logger.Warn("send otp failed", zap.Error(err), zap.String("email", emailAddr))
		}
		return domain.ErrEmailSendFailure
	}
	return nil
}

// VerifyOTP valida el codigo enviado y, en caso de exito, garantiza que
// exista un puntero activo para esa identidad (get-or-create: un puntero
// existente se deja intacto). Codigo ausente y codigo incorrecto colapsan
// en el mismo error.
func (s *AuthService) VerifyOTP(ctx context.Context, emailAddr, code string) error {
	emailAddr = normalizeEmail(emailAddr)
	code = strings.TrimSpace(code)
	if emailAddr == "" {
		return domain.ErrInvalidEmail
	}
	if !isValidOTPCode(code) {
		return domain.ErrOTPInvalid
	}

	if !s.registry.Verify(emailAddr, code) {
		return domain.ErrOTPInvalid
	}

	_, err := s.active.GetByEmail(ctx, emailAddr)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if _, err := s.active.Create(ctx, emailAddr); err != nil {
		return err
	}
	return nil
}

// CheckEmail responde si la identidad esta registrada en userdetails.
// No consulta ni el registro de codigos ni los punteros activos.
func (s *AuthService) CheckEmail(ctx context.Context, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return domain.ErrInvalidEmail
	}
	if _, err := s.users.GetByEmail(ctx, emailAddr); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

// MarkActive crea explicitamente un puntero activo para el email.
// Si la identidad ya figura como activa, devuelve conflicto.
func (s *AuthService) MarkActive(ctx context.Context, emailAddr string) (domain.ActiveSession, error) {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return domain.ActiveSession{}, domain.ErrInvalidEmail
	}

	_, err := s.active.GetByEmail(ctx, emailAddr)
	if err == nil {
		return domain.ActiveSession{}, domain.ErrAlreadyActive
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.ActiveSession{}, err
	}

	return s.active.Create(ctx, emailAddr)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidOTPCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
