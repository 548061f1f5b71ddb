package email

import (
	"context"
	"strings"
	"testing"
)

func TestNewSMTPSenderValidation(t *testing.T) {
	if _, err := NewSMTPSender("", 587, "", "", "noreply@greenai.app", "", false); err == nil {
		t.Fatalf("expected error for missing host")
	}
	if _, err := NewSMTPSender("smtp.gmail.com", 587, "", "", "", "", false); err == nil {
		t.Fatalf("expected error for missing from")
	}

	s, err := NewSMTPSender("smtp.gmail.com", 0, "", "", "noreply@greenai.app", "GREENAI Team", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.port != 587 {
		t.Fatalf("expected default port 587, got %d", s.port)
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	msg := buildMessage("noreply@greenai.app", "GREENAI Team", "farmer@x.com", "Your One-Time OTP Code for Verification", "body")

	if !strings.Contains(msg, "From: GREENAI Team <noreply@greenai.app>") {
		t.Fatalf("from header missing name: %q", msg)
	}
	if !strings.Contains(msg, "To: farmer@x.com") {
		t.Fatalf("to header missing: %q", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\nbody") {
		t.Fatalf("body not separated from headers: %q", msg)
	}
}

func TestOTPBodyContainsCode(t *testing.T) {
	body := otpBody("123456", "support@greenai.app")
	if !strings.Contains(body, "Your OTP code: 123456") {
		t.Fatalf("code missing from body")
	}
	if !strings.Contains(body, "support@greenai.app") {
		t.Fatalf("contact missing from body")
	}
}

func TestDisabledSender(t *testing.T) {
	s := NewDisabledSender("email sender not configured")
	if err := s.SendOTP(context.Background(), "farmer@x.com", "123456"); err == nil {
		t.Fatalf("disabled sender must fail")
	}
}
