package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"greenai-backend/internal/domain"
)

func newAuthFixture(sender *mockEmailSender, limiter OTPRateLimiter) (*AuthService, *mockUserRepo, *mockActiveRepo) {
	active := newMockActiveRepo()
	users := newMockUserRepo(active)
	svc := NewAuthService(zap.NewNop(), users, active, NewOTPRegistry(), sender, limiter)
	return svc, users, active
}

func TestAuthServiceRequestOTP_DispatchesCode(t *testing.T) {
	sender := &mockEmailSender{}
	svc, _, _ := newAuthFixture(sender, nil)

	if err := svc.RequestOTP(context.Background(), "Farmer@X.com"); err != nil {
		t.Fatalf("request otp failed: %v", err)
	}
	if sender.lastTo != "farmer@x.com" {
		t.Fatalf("expected normalized recipient, got %q", sender.lastTo)
	}
	if len(sender.lastCode) != 6 {
		t.Fatalf("expected 6-digit code, got %q", sender.lastCode)
	}
}

func TestAuthServiceRequestOTP_EmptyEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(&mockEmailSender{}, nil)

	if err := svc.RequestOTP(context.Background(), "   "); !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestAuthServiceRequestOTP_SendFailureKeepsCodeValid(t *testing.T) {
	sender := &mockEmailSender{err: errors.New("smtp down")}
	svc, _, active := newAuthFixture(sender, nil)

	err := svc.RequestOTP(context.Background(), "farmer@x.com")
	if !errors.Is(err, domain.ErrEmailSendFailure) {
		t.Fatalf("expected ErrEmailSendFailure, got %v", err)
	}

	// El despacho fallo pero el codigo emitido sigue siendo valido.
	if err := svc.VerifyOTP(context.Background(), "farmer@x.com", sender.lastCode); err != nil {
		t.Fatalf("code issued before failed dispatch should verify: %v", err)
	}
	if len(active.sessions) != 1 {
		t.Fatalf("expected one active pointer, got %d", len(active.sessions))
	}
}

func TestAuthServiceRequestOTP_RateLimited(t *testing.T) {
	sender := &mockEmailSender{}
	svc, _, _ := newAuthFixture(sender, NewOTPRateLimiter(time.Minute, 1))

	if err := svc.RequestOTP(context.Background(), "farmer@x.com"); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if err := svc.RequestOTP(context.Background(), "farmer@x.com"); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if sender.sent != 1 {
		t.Fatalf("limited request must not dispatch email, sent=%d", sender.sent)
	}
}

func TestAuthServiceVerifyOTP_Lifecycle(t *testing.T) {
	sender := &mockEmailSender{}
	svc, _, active := newAuthFixture(sender, nil)
	ctx := context.Background()

	if err := svc.RequestOTP(ctx, "a@x.com"); err != nil {
		t.Fatalf("request otp failed: %v", err)
	}
	code := sender.lastCode

	// Codigo equivocado: falla y la entrada se conserva.
	wrong := "000000"
	if err := svc.VerifyOTP(ctx, "a@x.com", wrong); !errors.Is(err, domain.ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid for wrong code, got %v", err)
	}
	if len(active.sessions) != 0 {
		t.Fatalf("pointer created on failed verify")
	}

	// Codigo correcto: exito, entrada consumida, puntero creado.
	if err := svc.VerifyOTP(ctx, "a@x.com", code); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if len(active.sessions) != 1 || active.sessions[0].Email != "a@x.com" {
		t.Fatalf("expected one pointer for a@x.com, got %+v", active.sessions)
	}

	// Reuso del mismo codigo: falla (un solo uso).
	if err := svc.VerifyOTP(ctx, "a@x.com", code); !errors.Is(err, domain.ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid on reuse, got %v", err)
	}
}

func TestAuthServiceVerifyOTP_SecondVerifyKeepsSinglePointer(t *testing.T) {
	sender := &mockEmailSender{}
	svc, _, active := newAuthFixture(sender, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := svc.RequestOTP(ctx, "a@x.com"); err != nil {
			t.Fatalf("request %d failed: %v", i, err)
		}
		if err := svc.VerifyOTP(ctx, "a@x.com", sender.lastCode); err != nil {
			t.Fatalf("verify %d failed: %v", i, err)
		}
	}

	if len(active.sessions) != 1 {
		t.Fatalf("expected get-or-create to keep one pointer, got %d", len(active.sessions))
	}
}

func TestAuthServiceVerifyOTP_NoCodeIssued(t *testing.T) {
	svc, _, _ := newAuthFixture(&mockEmailSender{}, nil)

	err := svc.VerifyOTP(context.Background(), "a@x.com", "123456")
	if !errors.Is(err, domain.ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid when no code issued, got %v", err)
	}
}

func TestAuthServiceVerifyOTP_MalformedCode(t *testing.T) {
	svc, _, _ := newAuthFixture(&mockEmailSender{}, nil)

	for _, code := range []string{"", "12345", "1234567", "12a456"} {
		if err := svc.VerifyOTP(context.Background(), "a@x.com", code); !errors.Is(err, domain.ErrOTPInvalid) {
			t.Fatalf("code %q: expected ErrOTPInvalid, got %v", code, err)
		}
	}
}

func TestAuthServiceCheckEmail(t *testing.T) {
	svc, users, _ := newAuthFixture(&mockEmailSender{}, nil)
	ctx := context.Background()

	if _, err := users.Create(ctx, domain.UserDetails{Name: "Ravi", Email: "ravi@x.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if err := svc.CheckEmail(ctx, "ravi@x.com"); err != nil {
		t.Fatalf("expected known email, got %v", err)
	}
	if err := svc.CheckEmail(ctx, "ghost@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthServiceMarkActive(t *testing.T) {
	svc, _, active := newAuthFixture(&mockEmailSender{}, nil)
	ctx := context.Background()

	session, err := svc.MarkActive(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("mark active failed: %v", err)
	}
	if session.Email != "a@x.com" || session.ID == 0 {
		t.Fatalf("unexpected session %+v", session)
	}

	if _, err := svc.MarkActive(ctx, "a@x.com"); !errors.Is(err, domain.ErrAlreadyActive) {
		t.Fatalf("expected ErrAlreadyActive, got %v", err)
	}
	if len(active.sessions) != 1 {
		t.Fatalf("conflict should not create a second pointer")
	}
}
