package service

import (
	"context"
	"errors"
	"testing"

	"greenai-backend/internal/domain"
)

func TestSessionServiceCurrentEmail_EmptyStore(t *testing.T) {
	active := newMockActiveRepo()
	svc := NewSessionService(active, newMockUserRepo(active))

	if _, err := svc.CurrentEmail(context.Background()); !errors.Is(err, domain.ErrActiveNotFound) {
		t.Fatalf("expected ErrActiveNotFound, got %v", err)
	}
}

func TestSessionServiceCurrentEmail_HighestID(t *testing.T) {
	active := newMockActiveRepo()
	svc := NewSessionService(active, newMockUserRepo(active))
	ctx := context.Background()

	for _, email := range []string{"first@x.com", "second@x.com", "third@x.com"} {
		if _, err := active.Create(ctx, email); err != nil {
			t.Fatalf("seed pointer: %v", err)
		}
	}

	email, err := svc.CurrentEmail(ctx)
	if err != nil {
		t.Fatalf("current email failed: %v", err)
	}
	if email != "third@x.com" {
		t.Fatalf("expected most recent pointer, got %q", email)
	}
}

func TestSessionServiceCurrentProfile(t *testing.T) {
	active := newMockActiveRepo()
	users := newMockUserRepo(active)
	svc := NewSessionService(active, users)
	ctx := context.Background()

	if _, err := active.Create(ctx, "ravi@x.com"); err != nil {
		t.Fatalf("seed pointer: %v", err)
	}

	// Puntero sin perfil: la union falla.
	if _, err := svc.CurrentProfile(ctx); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if _, err := users.Create(ctx, domain.UserDetails{Name: "Ravi", Email: "ravi@x.com", Crops: "rice"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	profile, err := svc.CurrentProfile(ctx)
	if err != nil {
		t.Fatalf("current profile failed: %v", err)
	}
	if profile.Name != "Ravi" || profile.Crops != "rice" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}
